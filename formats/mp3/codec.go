// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sndfile"
)

// decodedFrameSize is the size of one decoded frame: go-mp3 always yields
// 16-bit little-endian stereo.
const decodedFrameSize = 4

// Codec reads MPEG-1 Layer III files, presenting the decoded stream as
// 16-bit little-endian stereo PCM. Writing is not supported.
//
// Because the MPEG frame sync is weak (any 0xFF byte with three more set
// bits matches), register this codec after the headered formats.
type Codec struct {
	sndfile.RawPCM
}

// New returns the MP3 codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string       { return "mp3" }
func (*Codec) MinHeaderSize() int { return 10 }

func (*Codec) IsHeader(buf []byte) bool {
	if len(buf) < 2 {
		return false
	}
	if bytes.HasPrefix(buf, []byte("ID3")) {
		return true
	}
	return buf[0] == 0xff && buf[1]&0xe0 == 0xe0
}

func (*Codec) HasExtension(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".mp3")
}

func (c *Codec) AddExtension(filename string) string {
	if c.HasExtension(filename) {
		return filename
	}
	return filename + ".mp3"
}

// Endianness always answers little: decoded samples arrive little-endian
// regardless of what the host requests.
func (*Codec) Endianness(requested int) int { return sndfile.EndianLittle }

// ReadHeader sets up the decoder and describes the decoded stream. The
// compressed layout is hidden: the session reports plain 16-bit stereo PCM
// starting at frame zero.
func (c *Codec) ReadHeader(f *sndfile.File) error {
	if _, err := f.Handle.Seek(0, io.SeekStart); err != nil {
		return err
	}
	dec, err := gomp3.NewDecoder(f.Handle)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotMP3, err)
	}

	f.SampleRate = dec.SampleRate()
	f.Channels = 2
	f.BytesPerSample = 2
	f.BigEndian = false
	f.BytesPerFrame = decodedFrameSize
	f.HeaderSize = 0
	if length := dec.Length(); length > 0 {
		f.ByteLimit = length
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
	dec, ok := f.Data.(*gomp3.Decoder)
	if !ok {
		return sndfile.ErrNoHeader
	}
	_, err := dec.Seek(frame*decodedFrameSize, io.SeekStart)
	return err
}

// ReadSamples decodes into dst, truncated to whole frames within the byte
// limit. A partial trailing frame is dropped; an exhausted stream reads as
// io.EOF.
func (c *Codec) ReadSamples(f *sndfile.File, dst []byte) (int64, error) {
	dec, ok := f.Data.(*gomp3.Decoder)
	if !ok {
		return 0, sndfile.ErrNoHeader
	}

	want := int64(len(dst))
	if want > f.ByteLimit {
		want = f.ByteLimit
	}
	want -= want % decodedFrameSize
	if want <= 0 {
		return 0, io.EOF
	}

	n, err := io.ReadFull(dec, dst[:want])
	if err == io.ErrUnexpectedEOF {
		err = nil
	}
	if err == io.EOF && n == 0 {
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}

	got := int64(n - n%decodedFrameSize)
	if got == 0 {
		return 0, io.EOF
	}
	f.ByteLimit -= got
	return got, nil
}

func (*Codec) WriteSamples(f *sndfile.File, src []byte) (int64, error) {
	return 0, sndfile.ErrNotSupported
}
