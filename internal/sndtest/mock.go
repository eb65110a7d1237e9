// SPDX-License-Identifier: EPL-2.0

// Package sndtest provides a scriptable codec and a recording metadata sink
// for exercising the soundfile framework in tests.
package sndtest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ik5/sndfile"
	"github.com/ik5/sndfile/fileio"
)

// Codec error codes resolved by Codec.Strerror.
const (
	ErrBadTag     = -1 // header tag mismatch
	ErrShortFixup = -2 // update-header on a file without a written header
)

// Codec is a minimal soundfile format for tests. Its on-disk layout is a
// 4-byte tag, a little-endian uint32 frame count, zero padding up to
// Info.HeaderSize, then raw interleaved PCM. Streaming goes through the
// framework's RawPCM defaults.
type Codec struct {
	sndfile.RawPCM

	FormatName string
	Tag        string // 4-byte magic at offset 0
	MinSize    int    // minimum header size required for sniffing
	Exts       []string
	BigFiles   bool // endianness the format claims for its samples

	// Info holds the format fields ReadHeader copies onto the session. A
	// negative Info.ByteLimit means "compute from file size".
	Info sndfile.File

	// WroteMeta records WriteMeta calls.
	WroteMeta [][]any
	// Meta is emitted by ReadMeta, one "comment" message per entry.
	Meta []string
}

// New returns a mock codec named name, sniffing for the 4-byte tag and
// requiring at least minSize header bytes.
func New(name, tag string, minSize int, info sndfile.File) *Codec {
	return &Codec{
		FormatName: name,
		Tag:        tag,
		MinSize:    minSize,
		Exts:       []string{"." + name},
		Info:       info,
	}
}

func (c *Codec) Name() string       { return c.FormatName }
func (c *Codec) MinHeaderSize() int { return c.MinSize }

func (c *Codec) IsHeader(buf []byte) bool {
	return bytes.HasPrefix(buf, []byte(c.Tag))
}

func (c *Codec) HasExtension(filename string) bool {
	for _, ext := range c.Exts {
		if len(filename) >= len(ext) && filename[len(filename)-len(ext):] == ext {
			return true
		}
	}
	return false
}

func (c *Codec) AddExtension(filename string) string {
	if c.HasExtension(filename) {
		return filename
	}
	return filename + c.Exts[0]
}

func (c *Codec) Endianness(requested int) int {
	if c.BigFiles {
		return sndfile.EndianBig
	}
	return sndfile.EndianLittle
}

// ReadHeader verifies the tag, copies the scripted format fields onto f and
// leaves the cursor at the start of the sound data.
func (c *Codec) ReadHeader(f *sndfile.File) error {
	header := make([]byte, c.MinSize)
	n, err := fileio.ReadAt(f.Handle, 0, header)
	if err != nil {
		return err
	}
	if n < len(c.Tag) || !c.IsHeader(header[:n]) {
		return &sndfile.Error{Code: ErrBadTag, Msg: fmt.Sprintf("missing %q tag", c.Tag)}
	}

	f.SampleRate = c.Info.SampleRate
	f.Channels = c.Info.Channels
	f.BytesPerSample = c.Info.BytesPerSample
	f.BigEndian = c.BigFiles
	f.BytesPerFrame = f.Channels * f.BytesPerSample
	f.HeaderSize = c.Info.HeaderSize

	f.ByteLimit = c.Info.ByteLimit
	if f.ByteLimit < 0 {
		stat, err := f.Handle.Stat()
		if err != nil {
			return err
		}
		f.ByteLimit = stat.Size() - f.HeaderSize
	}

	if _, err := f.Handle.Seek(f.HeaderSize, 0); err != nil {
		return err
	}
	return nil
}

// WriteHeader writes tag, frame count and zero padding up to
// Info.HeaderSize.
func (c *Codec) WriteHeader(f *sndfile.File, frames int64) (int, error) {
	header := make([]byte, c.Info.HeaderSize)
	copy(header, c.Tag)
	binary.LittleEndian.PutUint32(header[4:8], uint32(frames))

	n, err := fileio.WriteAt(f.Handle, 0, header)
	if err != nil {
		return n, err
	}
	f.HeaderSize = int64(n)
	if _, err := f.Handle.Seek(f.HeaderSize, 0); err != nil {
		return n, err
	}
	return n, nil
}

// UpdateHeader rewrites only the frame count field.
func (c *Codec) UpdateHeader(f *sndfile.File, frames int64) error {
	if f.HeaderSize < 8 {
		return &sndfile.Error{Code: ErrShortFixup, Msg: "no header to update"}
	}
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(frames))
	_, err := fileio.WriteAt(f.Handle, 4, count[:])
	return err
}

// ReadMeta emits one "comment" message per scripted Meta entry.
func (c *Codec) ReadMeta(f *sndfile.File, out sndfile.MetaSink) error {
	for _, m := range c.Meta {
		out.Send("comment", m)
	}
	return nil
}

// WriteMeta records the call.
func (c *Codec) WriteMeta(f *sndfile.File, args []any) error {
	c.WroteMeta = append(c.WroteMeta, args)
	return nil
}

// Strerror resolves the mock's codec-range error codes.
func (c *Codec) Strerror(code int) string {
	switch code {
	case ErrBadTag:
		return fmt.Sprintf("missing %q tag", c.Tag)
	case ErrShortFixup:
		return "no header to update"
	}
	return fmt.Sprintf("unknown %s error %d", c.FormatName, code)
}

// Sink records metadata messages for assertions.
type Sink struct {
	Msgs []Msg
}

// Msg is one recorded metadata message.
type Msg struct {
	Selector string
	Args     []any
}

func (s *Sink) Send(selector string, args ...any) {
	s.Msgs = append(s.Msgs, Msg{Selector: selector, Args: args})
}

// WriteFile creates a mock-format file at path holding the given sample
// bytes behind a freshly written header for frames frames.
func (c *Codec) WriteFile(path string, frames int64, data []byte) error {
	header := make([]byte, c.Info.HeaderSize)
	copy(header, c.Tag)
	binary.LittleEndian.PutUint32(header[4:8], uint32(frames))
	return os.WriteFile(path, append(header, data...), 0o644)
}
