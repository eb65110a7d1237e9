// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sndfile"
	"github.com/ik5/sndfile/byteorder"
)

const (
	bytesPerSample = 4 // decoded samples are 32-bit floats

	// vorbisIDOffset is where the vorbis identification header sits inside
	// the first Ogg page of a typical stream.
	vorbisIDOffset = 28

	minHeaderSize = vorbisIDOffset + 7
)

// Codec reads Ogg Vorbis files, presenting the decoded stream as 32-bit
// float interleaved PCM in host byte order. Writing is not supported.
type Codec struct {
	sndfile.RawPCM
}

// New returns the Vorbis codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string       { return "vorbis" }
func (*Codec) MinHeaderSize() int { return minHeaderSize }

func (*Codec) IsHeader(buf []byte) bool {
	if len(buf) < minHeaderSize {
		return false
	}
	return bytes.HasPrefix(buf, []byte("OggS")) &&
		bytes.Equal(buf[vorbisIDOffset:vorbisIDOffset+7], []byte("\x01vorbis"))
}

func (*Codec) HasExtension(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".ogg") || strings.HasSuffix(lower, ".oga")
}

func (c *Codec) AddExtension(filename string) string {
	if c.HasExtension(filename) {
		return filename
	}
	return filename + ".ogg"
}

// Endianness reports the host byte order: decoded floats are materialized
// in memory, not read off the wire.
func (*Codec) Endianness(requested int) int {
	if byteorder.IsBigEndian() {
		return sndfile.EndianBig
	}
	return sndfile.EndianLittle
}

// ReadHeader sets up the decoder and describes the decoded stream. The Ogg
// framing is hidden: the session reports plain float PCM starting at frame
// zero.
func (c *Codec) ReadHeader(f *sndfile.File) error {
	if _, err := f.Handle.Seek(0, io.SeekStart); err != nil {
		return err
	}
	dec, err := oggvorbis.NewReader(f.Handle)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotVorbis, err)
	}

	f.SampleRate = dec.SampleRate()
	f.Channels = dec.Channels()
	f.BytesPerSample = bytesPerSample
	f.BigEndian = byteorder.IsBigEndian()
	f.BytesPerFrame = f.Channels * bytesPerSample
	f.HeaderSize = 0
	if frames := dec.Length(); frames > 0 {
		f.ByteLimit = frames * int64(f.BytesPerFrame)
	} else {
		f.ByteLimit = sndfile.MaxBytes
	}
	f.Data = dec
	return nil
}

func (*Codec) WriteHeader(f *sndfile.File, frames int64) (int, error) {
	return 0, sndfile.ErrNotSupported
}

func (*Codec) UpdateHeader(f *sndfile.File, frames int64) error {
	return sndfile.ErrNotSupported
}

// SeekToFrame positions the decoder at the given frame of decoded output.
func (c *Codec) SeekToFrame(f *sndfile.File, frame int64) error {
	dec, ok := f.Data.(*oggvorbis.Reader)
	if !ok {
		return sndfile.ErrNoHeader
	}
	return dec.SetPosition(frame)
}

// ReadSamples decodes into dst, truncated to whole frames within the byte
// limit. A partial trailing frame is dropped; an exhausted stream reads as
// io.EOF.
func (c *Codec) ReadSamples(f *sndfile.File, dst []byte) (int64, error) {
	dec, ok := f.Data.(*oggvorbis.Reader)
	if !ok {
		return 0, sndfile.ErrNoHeader
	}
	if f.BytesPerFrame <= 0 {
		return 0, sndfile.ErrNoHeader
	}

	want := int64(len(dst))
	if want > f.ByteLimit {
		want = f.ByteLimit
	}
	want -= want % int64(f.BytesPerFrame)
	if want <= 0 {
		return 0, io.EOF
	}

	samples := make([]float32, want/bytesPerSample)
	read := 0
	for read < len(samples) {
		n, err := dec.Read(samples[read:])
		read += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	got := int64(read) * bytesPerSample
	got -= got % int64(f.BytesPerFrame)
	if got == 0 {
		return 0, io.EOF
	}

	for i := int64(0); i < got/bytesPerSample; i++ {
		binary.NativeEndian.PutUint32(dst[i*4:], math.Float32bits(samples[i]))
	}
	f.ByteLimit -= got
	return got, nil
}

func (*Codec) WriteSamples(f *sndfile.File, src []byte) (int64, error) {
	return 0, sndfile.ErrNotSupported
}
