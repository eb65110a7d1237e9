// SPDX-License-Identifier: EPL-2.0

package next

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/ik5/sndfile"
	"github.com/ik5/sndfile/byteorder"
	"github.com/ik5/sndfile/fileio"
)

// NeXT/Sun data format codes for linear PCM.
const (
	formatLinear16 = 3
	formatLinear24 = 4
	formatFloat    = 6
)

const (
	// fixedHeader is the mandatory field block: magic, data onset, data
	// size, format, sample rate, channels.
	fixedHeader = 24

	// canonicalHeader is what WriteHeader produces: the fixed block plus a
	// four byte annotation pad, matching the historical minimum onset.
	canonicalHeader = 28

	// unknownLength marks an unknown data size in the header; the real
	// size is computed from the file size.
	unknownLength = 0xffffffff
)

// Codec reads and writes NeXT/Sun .snd/.au files: 16- and 24-bit integer
// and 32-bit float interleaved PCM, in either byte order (".snd" big-endian
// or byte-swapped "dns." little-endian). Streaming uses the framework's
// raw-PCM defaults.
type Codec struct {
	sndfile.RawPCM
}

// New returns the NeXT codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string       { return "next" }
func (*Codec) MinHeaderSize() int { return fixedHeader }

func (*Codec) IsHeader(buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	return bytes.HasPrefix(buf, []byte(".snd")) || bytes.HasPrefix(buf, []byte("dns."))
}

func (*Codec) HasExtension(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".snd") || strings.HasSuffix(lower, ".au")
}

func (c *Codec) AddExtension(filename string) string {
	if c.HasExtension(filename) {
		return filename
	}
	return filename + ".snd"
}

// Endianness honors the requested byte order; both are legal for this
// format. Unspecified defaults to big, the native NeXT layout.
func (*Codec) Endianness(requested int) int {
	if requested == sndfile.EndianLittle {
		return sndfile.EndianLittle
	}
	return sndfile.EndianBig
}

// ReadHeader parses the fixed header block, computing the data size from
// the file size when the header declares it unknown. The cursor is left at
// the first sample byte.
func (c *Codec) ReadHeader(f *sndfile.File) error {
	var head [fixedHeader]byte
	n, err := fileio.ReadAt(f.Handle, 0, head[:])
	if err != nil {
		return err
	}
	if n < fixedHeader || !c.IsHeader(head[:n]) {
		return ErrNotNext
	}

	// header fields follow the magic's byte order
	big := head[0] == '.'
	swap := !big

	onset := int64(byteorder.Swap4(binary.BigEndian.Uint32(head[4:8]), swap))
	length := byteorder.Swap4(binary.BigEndian.Uint32(head[8:12]), swap)
	format := byteorder.Swap4(binary.BigEndian.Uint32(head[12:16]), swap)
	rate := byteorder.Swap4(binary.BigEndian.Uint32(head[16:20]), swap)
	channels := byteorder.Swap4(binary.BigEndian.Uint32(head[20:24]), swap)

	if onset < fixedHeader {
		return ErrMalformed
	}

	switch format {
	case formatLinear16:
		f.BytesPerSample = 2
	case formatLinear24:
		f.BytesPerSample = 3
	case formatFloat:
		f.BytesPerSample = 4
	default:
		return ErrFormat
	}

	f.SampleRate = int(rate)
	f.Channels = int(channels)
	f.BigEndian = big
	f.BytesPerFrame = f.Channels * f.BytesPerSample
	f.HeaderSize = onset

	if length == unknownLength {
		stat, err := f.Handle.Stat()
		if err != nil {
			return err
		}
		f.ByteLimit = stat.Size() - onset
	} else {
		f.ByteLimit = int64(length)
		if stat, err := f.Handle.Stat(); err == nil {
			if rest := stat.Size() - onset; rest < f.ByteLimit {
				f.ByteLimit = rest
			}
		}
	}

	if _, err := f.Handle.Seek(f.HeaderSize, io.SeekStart); err != nil {
		return err
	}
	return nil
}

// WriteHeader writes the canonical 28-byte header in the session's byte
// order, leaving the cursor at the first sample byte.
func (c *Codec) WriteHeader(f *sndfile.File, frames int64) (int, error) {
	if f.BytesPerFrame <= 0 {
		f.BytesPerFrame = f.Channels * f.BytesPerSample
	}

	var format uint32
	switch f.BytesPerSample {
	case 2:
		format = formatLinear16
	case 3:
		format = formatLinear24
	case 4:
		format = formatFloat
	default:
		return 0, sndfile.ErrSampleFormat
	}

	swap := !f.BigEndian
	header := make([]byte, canonicalHeader)
	copy(header[0:4], ".snd")
	byteorder.SwapString4(header[0:4], swap)
	binary.BigEndian.PutUint32(header[4:8], byteorder.Swap4(canonicalHeader, swap))
	binary.BigEndian.PutUint32(header[8:12], byteorder.Swap4(uint32(frames*int64(f.BytesPerFrame)), swap))
	binary.BigEndian.PutUint32(header[12:16], byteorder.Swap4(format, swap))
	binary.BigEndian.PutUint32(header[16:20], byteorder.Swap4(uint32(f.SampleRate), swap))
	binary.BigEndian.PutUint32(header[20:24], byteorder.Swap4(uint32(f.Channels), swap))
	// bytes 24..28 stay zero: the empty annotation pad

	n, err := fileio.WriteAt(f.Handle, 0, header)
	if err != nil {
		return n, err
	}
	f.HeaderSize = int64(n)
	if _, err := f.Handle.Seek(f.HeaderSize, io.SeekStart); err != nil {
		return n, err
	}
	return n, nil
}

// UpdateHeader rewrites the data size field for the final frame count.
func (c *Codec) UpdateHeader(f *sndfile.File, frames int64) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], byteorder.Swap4(uint32(frames*int64(f.BytesPerFrame)), !f.BigEndian))
	_, err := fileio.WriteAt(f.Handle, 8, b[:])
	return err
}

// ReadMeta emits the header annotation, the free-form text between the
// fixed header block and the data onset, as a single "comment" message.
func (c *Codec) ReadMeta(f *sndfile.File, out sndfile.MetaSink) error {
	if f.HeaderSize <= fixedHeader {
		return nil
	}
	note := make([]byte, f.HeaderSize-fixedHeader)
	n, err := fileio.ReadAt(f.Handle, fixedHeader, note)
	if err != nil {
		return err
	}
	text := strings.TrimRight(string(note[:n]), "\x00")
	if text != "" {
		out.Send("comment", text)
	}
	return nil
}
