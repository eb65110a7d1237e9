// SPDX-License-Identifier: EPL-2.0

package byteorder

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestIsBigEndian_MatchesNativeEndian(t *testing.T) {
	t.Parallel()

	var probe [4]byte
	binary.NativeEndian.PutUint32(probe[:], 0x01020304)

	wantBig := probe[0] == 0x01
	if IsBigEndian() != wantBig {
		t.Errorf("IsBigEndian() = %v, want %v", IsBigEndian(), wantBig)
	}
}

func TestSwap2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   uint16
		doit bool
		want uint16
	}{
		{"NoSwap", 0x1234, false, 0x1234},
		{"Swap", 0x1234, true, 0x3412},
		{"SwapZero", 0, true, 0},
		{"SwapMax", 0xffff, true, 0xffff},
		{"SwapAsymmetric", 0xff00, true, 0x00ff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Swap2(tt.in, tt.doit); got != tt.want {
				t.Errorf("Swap2(%#x, %v) = %#x, want %#x", tt.in, tt.doit, got, tt.want)
			}
		})
	}
}

func TestSwap4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   uint32
		doit bool
		want uint32
	}{
		{"NoSwap", 0x12345678, false, 0x12345678},
		{"Swap", 0x12345678, true, 0x78563412},
		{"SwapZero", 0, true, 0},
		{"SwapHighByte", 0xff000000, true, 0x000000ff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Swap4(tt.in, tt.doit); got != tt.want {
				t.Errorf("Swap4(%#x, %v) = %#x, want %#x", tt.in, tt.doit, got, tt.want)
			}
		})
	}
}

func TestSwap8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   uint64
		doit bool
		want uint64
	}{
		{"NoSwap", 0x0102030405060708, false, 0x0102030405060708},
		{"Swap", 0x0102030405060708, true, 0x0807060504030201},
		{"SwapZero", 0, true, 0},
		{"SwapHighByte", 0xff00000000000000, true, 0x00000000000000ff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Swap8(tt.in, tt.doit); got != tt.want {
				t.Errorf("Swap8(%#x, %v) = %#x, want %#x", tt.in, tt.doit, got, tt.want)
			}
		})
	}
}

func TestSwapSigned(t *testing.T) {
	t.Parallel()

	if got := Swap4s(-2, true); got != Swap4s(Swap4s(-2, true), false) {
		t.Errorf("Swap4s no-op changed value: %#x", got)
	}

	// -1 is all bits set, swapping must be the identity.
	if got := Swap4s(-1, true); got != -1 {
		t.Errorf("Swap4s(-1, true) = %d, want -1", got)
	}
	if got := Swap8s(-1, true); got != -1 {
		t.Errorf("Swap8s(-1, true) = %d, want -1", got)
	}

	// Sign bit travels with its byte.
	if got := Swap4s(int32(-0x80000000), true); got != 0x80 {
		t.Errorf("Swap4s(min int32, true) = %#x, want 0x80", got)
	}
	if got := Swap8s(int64(-0x8000000000000000), true); got != 0x80 {
		t.Errorf("Swap8s(min int64, true) = %#x, want 0x80", got)
	}
}

// Swapping twice restores the original; swapping with doit=false is the
// identity. Holds for every supported width.
func TestSwap_Involution(t *testing.T) {
	t.Parallel()

	values := []uint64{0, 1, 0x80, 0xdeadbeefcafef00d, 0xffffffffffffffff}

	for _, v := range values {
		if got := Swap2(Swap2(uint16(v), true), true); got != uint16(v) {
			t.Errorf("Swap2 twice = %#x, want %#x", got, uint16(v))
		}
		if got := Swap2(uint16(v), false); got != uint16(v) {
			t.Errorf("Swap2 no-op = %#x, want %#x", got, uint16(v))
		}
		if got := Swap4(Swap4(uint32(v), true), true); got != uint32(v) {
			t.Errorf("Swap4 twice = %#x, want %#x", got, uint32(v))
		}
		if got := Swap4(uint32(v), false); got != uint32(v) {
			t.Errorf("Swap4 no-op = %#x, want %#x", got, uint32(v))
		}
		if got := Swap8(Swap8(v, true), true); got != v {
			t.Errorf("Swap8 twice = %#x, want %#x", got, v)
		}
		if got := Swap8(v, false); got != v {
			t.Errorf("Swap8 no-op = %#x, want %#x", got, v)
		}
		if got := Swap4s(Swap4s(int32(v), true), true); got != int32(v) {
			t.Errorf("Swap4s twice = %#x, want %#x", got, int32(v))
		}
		if got := Swap8s(Swap8s(int64(v), true), true); got != int64(v) {
			t.Errorf("Swap8s twice = %#x, want %#x", got, int64(v))
		}
	}
}

func TestSwapString4(t *testing.T) {
	t.Parallel()

	tag := []byte("RIFF")
	SwapString4(tag, false)
	if !bytes.Equal(tag, []byte("RIFF")) {
		t.Errorf("SwapString4 no-op mutated buffer: %q", tag)
	}

	SwapString4(tag, true)
	if !bytes.Equal(tag, []byte("FFIR")) {
		t.Errorf("SwapString4 = %q, want %q", tag, "FFIR")
	}

	SwapString4(tag, true)
	if !bytes.Equal(tag, []byte("RIFF")) {
		t.Errorf("SwapString4 twice = %q, want %q", tag, "RIFF")
	}
}

func TestSwapString8(t *testing.T) {
	t.Parallel()

	tag := []byte("COMMSSND")
	orig := append([]byte(nil), tag...)

	SwapString8(tag, false)
	if !bytes.Equal(tag, orig) {
		t.Errorf("SwapString8 no-op mutated buffer: %q", tag)
	}

	SwapString8(tag, true)
	if !bytes.Equal(tag, []byte("DNSSMMOC")) {
		t.Errorf("SwapString8 = %q, want %q", tag, "DNSSMMOC")
	}

	SwapString8(tag, true)
	if !bytes.Equal(tag, orig) {
		t.Errorf("SwapString8 twice = %q, want %q", tag, orig)
	}
}

func BenchmarkSwap4(b *testing.B) {
	b.ReportAllocs()

	var acc uint32
	for b.Loop() {
		acc = Swap4(acc+1, true)
	}
	_ = acc
}
