// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strings"

	"github.com/ik5/sndfile"
	"github.com/ik5/sndfile/fileio"
)

const (
	formHeadSize = 12 // "FORM" + size + "AIFF"
	commBodySize = 18

	// canonicalHeader is what WriteHeader produces: FORM prologue, COMM
	// chunk, SSND chunk header with zero offset and block size.
	canonicalHeader = formHeadSize + 8 + commBodySize + 8 + 8

	minHeaderSize = canonicalHeader
)

// Codec reads and writes AIFF files: 16- and 24-bit big-endian integer
// interleaved PCM. AIFC variants (float, little-endian) are not handled.
// Streaming uses the framework's raw-PCM defaults.
type Codec struct {
	sndfile.RawPCM
}

// New returns the AIFF codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string       { return "aiff" }
func (*Codec) MinHeaderSize() int { return minHeaderSize }

func (*Codec) IsHeader(buf []byte) bool {
	if len(buf) < formHeadSize {
		return false
	}
	return bytes.HasPrefix(buf, []byte("FORM")) && bytes.Equal(buf[8:12], []byte("AIFF"))
}

func (*Codec) HasExtension(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".aif") || strings.HasSuffix(lower, ".aiff")
}

func (c *Codec) AddExtension(filename string) string {
	if c.HasExtension(filename) {
		return filename
	}
	return filename + ".aif"
}

// Endianness always answers big: AIFF sample data is big-endian regardless
// of what the host requests.
func (*Codec) Endianness(requested int) int { return sndfile.EndianBig }

// headerInfo records where the size-dependent fields live so UpdateHeader
// can rewrite them on files with non-canonical chunk layouts too.
type headerInfo struct {
	commFrames int64 // offset of the COMM numSampleFrames field
	ssndSize   int64 // offset of the SSND chunk size field
}

// ReadHeader walks the FORM chunks up to the SSND chunk, populating the
// format fields and setting the byte limit to the sample byte count. The
// cursor is left at the first sample byte.
func (c *Codec) ReadHeader(f *sndfile.File) error {
	var head [formHeadSize]byte
	n, err := fileio.ReadAt(f.Handle, 0, head[:])
	if err != nil {
		return err
	}
	if n < formHeadSize || !c.IsHeader(head[:n]) {
		return ErrNotAiff
	}

	var (
		off      = int64(formHeadSize)
		info     headerInfo
		haveComm bool
		channels int
		rate     int
		bits     int
	)
	for {
		var chunk [8]byte
		n, err := fileio.ReadAt(f.Handle, off, chunk[:])
		if err != nil {
			return err
		}
		if n < 8 {
			return ErrNoSsnd
		}
		size := int64(binary.BigEndian.Uint32(chunk[4:8]))

		switch string(chunk[:4]) {
		case "COMM":
			if size < commBodySize {
				return ErrCommSize
			}
			var body [commBodySize]byte
			n, err := fileio.ReadAt(f.Handle, off+8, body[:])
			if err != nil {
				return err
			}
			if n < commBodySize {
				return ErrMalformed
			}
			channels = int(binary.BigEndian.Uint16(body[0:2]))
			bits = int(binary.BigEndian.Uint16(body[6:8]))
			rate = int(decodeExtended(body[8:18]))
			info.commFrames = off + 8 + 2
			haveComm = true

		case "SSND":
			if !haveComm {
				return ErrNoComm
			}
			var body [8]byte
			n, err := fileio.ReadAt(f.Handle, off+8, body[:])
			if err != nil {
				return err
			}
			if n < 8 {
				return ErrMalformed
			}
			ssndOffset := int64(binary.BigEndian.Uint32(body[0:4]))

			switch bits {
			case 16:
				f.BytesPerSample = 2
			case 24:
				f.BytesPerSample = 3
			default:
				return sndfile.ErrSampleFormat
			}
			f.SampleRate = rate
			f.Channels = channels
			f.BigEndian = true
			f.BytesPerFrame = f.Channels * f.BytesPerSample
			f.HeaderSize = off + 16 + ssndOffset
			f.ByteLimit = size - 8 - ssndOffset

			if stat, err := f.Handle.Stat(); err == nil {
				if rest := stat.Size() - f.HeaderSize; rest < f.ByteLimit {
					f.ByteLimit = rest
				}
			}

			info.ssndSize = off + 4
			f.Data = &info

			if _, err := f.Handle.Seek(f.HeaderSize, io.SeekStart); err != nil {
				return err
			}
			return nil
		}

		off += 8 + size + (size & 1)
	}
}

// WriteHeader writes the canonical 54-byte header for the current format
// fields and the given frame count hint, leaving the cursor at the first
// sample byte. AIFF carries integer samples only; a 4-byte-per-sample
// session is refused.
func (c *Codec) WriteHeader(f *sndfile.File, frames int64) (int, error) {
	if f.BytesPerSample != 2 && f.BytesPerSample != 3 {
		return 0, sndfile.ErrSampleFormat
	}
	if f.BytesPerFrame <= 0 {
		f.BytesPerFrame = f.Channels * f.BytesPerSample
	}
	dataSize := frames * int64(f.BytesPerFrame)

	header := make([]byte, canonicalHeader)
	copy(header[0:4], "FORM")
	binary.BigEndian.PutUint32(header[4:8], uint32(int64(canonicalHeader-8)+dataSize))
	copy(header[8:12], "AIFF")

	copy(header[12:16], "COMM")
	binary.BigEndian.PutUint32(header[16:20], commBodySize)
	binary.BigEndian.PutUint16(header[20:22], uint16(f.Channels))
	binary.BigEndian.PutUint32(header[22:26], uint32(frames))
	binary.BigEndian.PutUint16(header[26:28], uint16(f.BytesPerSample*8))
	encodeExtended(f.SampleRate, header[28:38])

	copy(header[38:42], "SSND")
	binary.BigEndian.PutUint32(header[42:46], uint32(8+dataSize))
	// offset and block size stay zero

	n, err := fileio.WriteAt(f.Handle, 0, header)
	if err != nil {
		return n, err
	}
	f.HeaderSize = int64(n)
	f.BigEndian = true
	f.Data = &headerInfo{commFrames: 22, ssndSize: 42}
	if _, err := f.Handle.Seek(f.HeaderSize, io.SeekStart); err != nil {
		return n, err
	}
	return n, nil
}

// UpdateHeader rewrites the FORM size, the COMM frame count and the SSND
// chunk size for the final frame count.
func (c *Codec) UpdateHeader(f *sndfile.File, frames int64) error {
	info, ok := f.Data.(*headerInfo)
	if !ok {
		return ErrMalformed
	}
	dataSize := frames * int64(f.BytesPerFrame)

	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(f.HeaderSize-8+dataSize))
	if _, err := fileio.WriteAt(f.Handle, 4, b[:]); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b[:], uint32(frames))
	if _, err := fileio.WriteAt(f.Handle, info.commFrames, b[:]); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b[:], uint32(8+dataSize))
	if _, err := fileio.WriteAt(f.Handle, info.ssndSize, b[:]); err != nil {
		return err
	}
	return nil
}

// decodeExtended reads an 80-bit IEEE 754 extended float, the COMM sample
// rate representation.
func decodeExtended(b []byte) float64 {
	exp := int(binary.BigEndian.Uint16(b[0:2]) & 0x7fff)
	mant := binary.BigEndian.Uint64(b[2:10])
	if mant == 0 {
		return 0
	}
	sign := 1.0
	if b[0]&0x80 != 0 {
		sign = -1
	}
	return sign * float64(mant) * math.Ldexp(1, exp-16383-63)
}

// encodeExtended writes rate as an 80-bit IEEE 754 extended float.
func encodeExtended(rate int, b []byte) {
	for i := range b {
		b[i] = 0
	}
	if rate <= 0 {
		return
	}
	mant := uint64(rate)
	exp := 16383 + 63
	for mant&(1<<63) == 0 {
		mant <<= 1
		exp--
	}
	binary.BigEndian.PutUint16(b[0:2], uint16(exp))
	binary.BigEndian.PutUint64(b[2:10], mant)
}
