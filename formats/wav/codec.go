// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/ik5/sndfile"
	"github.com/ik5/sndfile/byteorder"
	"github.com/ik5/sndfile/fileio"
)

const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xfffe

	// riffHeadSize is the RIFF container prologue: "RIFF" + size + "WAVE".
	riffHeadSize = 12

	// canonicalHeader is what WriteHeader produces: RIFF prologue, a
	// 16-byte fmt chunk and the data chunk header.
	canonicalHeader = 44

	// minHeaderSize is the smallest complete header this codec accepts.
	minHeaderSize = canonicalHeader
)

// Codec reads and writes WAVE files: 16- and 24-bit integer and 32-bit
// float interleaved PCM. Reading accepts both little-endian RIFF and
// big-endian RIFX containers; writing always produces little-endian RIFF.
// Streaming uses the framework's raw-PCM defaults.
type Codec struct {
	sndfile.RawPCM
}

// New returns the WAVE codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string       { return "wave" }
func (*Codec) MinHeaderSize() int { return minHeaderSize }

func (*Codec) IsHeader(buf []byte) bool {
	if len(buf) < riffHeadSize {
		return false
	}
	if !bytes.HasPrefix(buf, []byte("RIFF")) && !bytes.HasPrefix(buf, []byte("RIFX")) {
		return false
	}
	return bytes.Equal(buf[8:12], []byte("WAVE"))
}

func (*Codec) HasExtension(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".wav") || strings.HasSuffix(lower, ".wave")
}

func (c *Codec) AddExtension(filename string) string {
	if c.HasExtension(filename) {
		return filename
	}
	return filename + ".wav"
}

// Endianness always answers little: WAVE sample data is little-endian
// regardless of what the host requests. RIFX is accepted on read only.
func (*Codec) Endianness(requested int) int { return sndfile.EndianLittle }

// ReadHeader walks the RIFF chunks up to the data chunk, populating the
// format fields and setting the byte limit to the data chunk size. The
// cursor is left at the first sample byte.
func (c *Codec) ReadHeader(f *sndfile.File) error {
	var head [riffHeadSize]byte
	n, err := fileio.ReadAt(f.Handle, 0, head[:])
	if err != nil {
		return err
	}
	if n < riffHeadSize || !c.IsHeader(head[:n]) {
		return ErrNotWave
	}

	// Chunk fields are read as little-endian and swapped when the
	// container is big-endian RIFX.
	big := head[3] == 'X'

	var (
		off      = int64(riffHeadSize)
		haveFmt  bool
		format   int
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
			return ErrNoData
		}
		size := int64(byteorder.Swap4(binary.LittleEndian.Uint32(chunk[4:8]), big))

		switch string(chunk[:4]) {
		case "fmt ":
			if size < 16 {
				return ErrFmtSize
			}
			var body [16]byte
			n, err := fileio.ReadAt(f.Handle, off+8, body[:])
			if err != nil {
				return err
			}
			if n < 16 {
				return ErrMalformed
			}
			format = int(byteorder.Swap2(binary.LittleEndian.Uint16(body[0:2]), big))
			channels = int(byteorder.Swap2(binary.LittleEndian.Uint16(body[2:4]), big))
			rate = int(byteorder.Swap4(binary.LittleEndian.Uint32(body[4:8]), big))
			bits = int(byteorder.Swap2(binary.LittleEndian.Uint16(body[14:16]), big))

			if format == formatExtensible {
				// the real format code is the first word of the
				// extensible subformat GUID
				if size < 40 {
					return ErrFmtSize
				}
				var sub [2]byte
				n, err := fileio.ReadAt(f.Handle, off+8+24, sub[:])
				if err != nil {
					return err
				}
				if n < 2 {
					return ErrMalformed
				}
				format = int(byteorder.Swap2(binary.LittleEndian.Uint16(sub[:]), big))
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return ErrNoFmt
			}
			switch {
			case format == formatPCM && bits == 16:
				f.BytesPerSample = 2
			case format == formatPCM && bits == 24:
				f.BytesPerSample = 3
			case format == formatFloat && bits == 32:
				f.BytesPerSample = 4
			default:
				return sndfile.ErrSampleFormat
			}
			f.SampleRate = rate
			f.Channels = channels
			f.BigEndian = big
			f.BytesPerFrame = f.Channels * f.BytesPerSample
			f.HeaderSize = off + 8
			f.ByteLimit = size

			// never trust a data size past the end of the file
			if stat, err := f.Handle.Stat(); err == nil {
				if rest := stat.Size() - f.HeaderSize; rest < f.ByteLimit {
					f.ByteLimit = rest
				}
			}

			if _, err := f.Handle.Seek(f.HeaderSize, io.SeekStart); err != nil {
				return err
			}
			return nil
		}

		// chunks are padded to even sizes
		off += 8 + size + (size & 1)
	}
}

// WriteHeader writes the canonical 44-byte little-endian header for the
// current format fields and the given frame count hint, leaving the cursor
// at the first sample byte.
func (c *Codec) WriteHeader(f *sndfile.File, frames int64) (int, error) {
	if f.BytesPerFrame <= 0 {
		f.BytesPerFrame = f.Channels * f.BytesPerSample
	}
	dataSize := frames * int64(f.BytesPerFrame)

	format := formatPCM
	if f.BytesPerSample == 4 {
		format = formatFloat
	}

	header := make([]byte, canonicalHeader)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(int64(canonicalHeader-8)+dataSize))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], uint16(format))
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.SampleRate*f.BytesPerFrame))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BytesPerFrame))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BytesPerSample*8))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	n, err := fileio.WriteAt(f.Handle, 0, header)
	if err != nil {
		return n, err
	}
	f.HeaderSize = int64(n)
	f.BigEndian = false
	if _, err := f.Handle.Seek(f.HeaderSize, io.SeekStart); err != nil {
		return n, err
	}
	return n, nil
}

// UpdateHeader rewrites the RIFF size and the data chunk size for the final
// frame count, leaving everything else in place.
func (c *Codec) UpdateHeader(f *sndfile.File, frames int64) error {
	dataSize := frames * int64(f.BytesPerFrame)

	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(f.HeaderSize-8+dataSize))
	if _, err := fileio.WriteAt(f.Handle, 4, b[:]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b[:], uint32(dataSize))
	if _, err := fileio.WriteAt(f.Handle, f.HeaderSize-4, b[:]); err != nil {
		return err
	}
	return nil
}
