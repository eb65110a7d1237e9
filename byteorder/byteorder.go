// SPDX-License-Identifier: EPL-2.0

package byteorder

import "encoding/binary"

// IsBigEndian reports whether the running process is big-endian.
func IsBigEndian() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 0
}

// Swap2 reverses the bytes of n if doit is true, otherwise returns n untouched.
func Swap2(n uint16, doit bool) uint16 {
	if !doit {
		return n
	}
	return n<<8 | n>>8
}

// Swap4 reverses the bytes of n if doit is true, otherwise returns n untouched.
func Swap4(n uint32, doit bool) uint32 {
	if !doit {
		return n
	}
	return n<<24 | (n&0xff00)<<8 | (n>>8)&0xff00 | n>>24
}

// Swap4s reverses the bytes of the signed n if doit is true.
func Swap4s(n int32, doit bool) int32 {
	return int32(Swap4(uint32(n), doit))
}

// Swap8 reverses the bytes of n if doit is true, otherwise returns n untouched.
func Swap8(n uint64, doit bool) uint64 {
	if !doit {
		return n
	}
	n = n>>32 | n<<32
	n = (n&0xffff0000ffff0000)>>16 | (n&0x0000ffff0000ffff)<<16
	n = (n&0xff00ff00ff00ff00)>>8 | (n&0x00ff00ff00ff00ff)<<8
	return n
}

// Swap8s reverses the bytes of the signed n if doit is true.
func Swap8s(n int64, doit bool) int64 {
	return int64(Swap8(uint64(n), doit))
}

// SwapString4 reverses a 4-byte tag in place if doit is true.
// The buffer must be exactly 4 bytes long.
func SwapString4(b []byte, doit bool) {
	if !doit {
		return
	}
	_ = b[3]
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]
}

// SwapString8 reverses an 8-byte tag in place if doit is true.
// The buffer must be exactly 8 bytes long.
func SwapString8(b []byte, doit bool) {
	if !doit {
		return
	}
	_ = b[7]
	for i := 0; i < 4; i++ {
		b[i], b[7-i] = b[7-i], b[i]
	}
}
