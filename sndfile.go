// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ik5/sndfile/byteorder"
	"github.com/ik5/sndfile/fileio"
)

const (
	// MaxBytes is the default sound data byte limit: effectively unbounded.
	MaxBytes = math.MaxInt64

	// UnknownSize marks a header size that has not been determined yet and
	// must be computed from context. A zero header size is different: it
	// means the sound data starts at byte 0.
	UnknownSize = -1
)

// File is one open (or closed) soundfile and its resolved format state.
// The format fields are populated by the codec's header functions when
// reading, or by the caller before WriteHeader when writing.
//
// A File is either fully closed (nil Handle, nil Data) or fully open; no
// partial state persists across calls. Every operation is synchronous and
// safe to invoke from a background thread, but a single File must never be
// driven by two goroutines at once — the library adds no locking.
type File struct {
	Handle *os.File // open OS file, nil when closed
	Codec  Codec    // resolved format implementation, nil before detection
	Data   any      // codec-private state, owned by the codec

	SampleRate     int   // read: file rate, write: target rate
	Channels       int   // channel count
	BytesPerSample int   // 2, 3 or 4: 16- or 24-bit int, or 32-bit float
	HeaderSize     int64 // sound data byte offset, UnknownSize until known
	BigEndian      bool  // sample endianness
	BytesPerFrame  int   // Channels * BytesPerSample, cached
	ByteLimit      int64 // sound data bytes left to read/write
}

// New returns a File cleared to closed defaults.
func New() *File {
	f := &File{}
	f.Clear()
	return f
}

// Clear resets the soundfile to closed defaults. It does not close the
// handle or release codec state; use Close for that.
func (f *File) Clear() {
	f.Handle = nil
	f.Codec = nil
	f.Data = nil
	f.ClearInfo()
}

// ClearInfo resets only the format fields, leaving handle, codec and codec
// data untouched.
func (f *File) ClearInfo() {
	f.SampleRate = 0
	f.Channels = 0
	f.BytesPerSample = 0
	f.HeaderSize = UnknownSize
	f.BigEndian = false
	f.BytesPerFrame = 0
	f.ByteLimit = MaxBytes
}

// IsOpen reports whether the soundfile currently owns an OS handle.
func (f *File) IsOpen() bool { return f.Handle != nil }

// NeedsByteSwap reports whether sample bytes must be swapped between the
// file's byte order and the host's.
func (f *File) NeedsByteSwap() bool {
	return f.BigEndian != byteorder.IsBigEndian()
}

// Frames returns the number of whole sample frames left in the sound data
// region, or -1 when the byte limit is unbounded or the frame size unset.
func (f *File) Frames() int64 {
	if f.ByteLimit == MaxBytes || f.BytesPerFrame <= 0 {
		return -1
	}
	return f.ByteLimit / int64(f.BytesPerFrame)
}

func (f *File) String() string {
	endian := "little endian"
	if f.BigEndian {
		endian = "big endian"
	}
	header := "unknown header size"
	if f.HeaderSize >= 0 {
		header = fmt.Sprintf("header %d bytes", f.HeaderSize)
	}
	limit := "unbounded"
	if f.ByteLimit != MaxBytes {
		limit = fmt.Sprintf("%d data bytes", f.ByteLimit)
	}
	return fmt.Sprintf("%d Hz, %d channels, %d bit, %s, %s, %s",
		f.SampleRate, f.Channels, f.BytesPerSample*8, endian, header, limit)
}

// Open binds the soundfile to codec c and hands it the already-open handle.
// On failure the File stays closed and the handle remains owned by the
// caller.
func (f *File) Open(handle *os.File, c Codec) error {
	if f.IsOpen() {
		return ErrAlreadyOpen
	}
	if c == nil {
		return fmt.Errorf("%w: nil codec", ErrInvalidCodec)
	}
	f.Codec = c
	if err := c.Open(f, handle); err != nil {
		f.Codec = nil
		return fmt.Errorf("%s: open: %w", c.Name(), err)
	}
	return nil
}

// Close releases codec state and the OS handle. Closing an already-closed
// File is a no-op.
func (f *File) Close() error {
	if !f.IsOpen() {
		return nil
	}
	return f.Codec.Close(f)
}

// ReadHeader parses the file header through the resolved codec, populating
// the format fields and the byte limit. On failure the File stays open and
// unparsed.
func (f *File) ReadHeader() error {
	if !f.IsOpen() {
		return ErrClosed
	}
	return f.Codec.ReadHeader(f)
}

// WriteHeader writes a fresh header reflecting the current format fields
// and the given frame count hint, returning the header byte count. Use a
// hint of 0 when the final length is unknown and fix it up later with
// UpdateHeader.
func (f *File) WriteHeader(frames int64) (int, error) {
	if !f.IsOpen() {
		return 0, ErrClosed
	}
	return f.Codec.WriteHeader(f, frames)
}

// UpdateHeader rewrites the size-dependent header fields for the final
// frame count. Idempotent; valid once a header has been written or read.
func (f *File) UpdateHeader(frames int64) error {
	if !f.IsOpen() {
		return ErrClosed
	}
	if f.HeaderSize < 0 {
		return ErrNoHeader
	}
	return f.Codec.UpdateHeader(f, frames)
}

// SeekToFrame repositions the read/write cursor to the given sample frame.
// Valid only once the header size is known.
func (f *File) SeekToFrame(frame int64) error {
	if !f.IsOpen() {
		return ErrClosed
	}
	if f.HeaderSize < 0 {
		return ErrNoHeader
	}
	return f.Codec.SeekToFrame(f, frame)
}

// ReadSamples reads interleaved sample bytes at the current cursor. The
// transfer honors the byte limit and is always a whole number of frames,
// except at true end-of-data. Sample byte order is the file's; callers
// swap afterwards when NeedsByteSwap reports so.
func (f *File) ReadSamples(dst []byte) (int64, error) {
	if !f.IsOpen() {
		return 0, ErrClosed
	}
	return f.Codec.ReadSamples(f, dst)
}

// WriteSamples writes interleaved sample bytes at the current cursor,
// honoring the byte limit. Callers must pre-swap the payload to the file's
// byte order.
func (f *File) WriteSamples(src []byte) (int64, error) {
	if !f.IsOpen() {
		return 0, ErrClosed
	}
	return f.Codec.WriteSamples(f, src)
}

// ReadMeta emits the file's header metadata to out. Returns ErrNotSupported
// when the resolved codec has no metadata support.
func (f *File) ReadMeta(out MetaSink) error {
	if !f.IsOpen() {
		return ErrClosed
	}
	mr, ok := f.Codec.(MetaReader)
	if !ok {
		return ErrNotSupported
	}
	return mr.ReadMeta(f, out)
}

// WriteMeta writes metadata into the file header. Returns ErrNotSupported
// when the resolved codec has no metadata support.
func (f *File) WriteMeta(args []any) error {
	if !f.IsOpen() {
		return ErrClosed
	}
	mw, ok := f.Codec.(MetaWriter)
	if !ok {
		return ErrNotSupported
	}
	return mw.WriteMeta(f, args)
}

// DetectFile reads a header prefix from the open handle without moving its
// cursor and resolves a codec for it against r.
func DetectFile(r *Registry, handle *os.File) (Codec, error) {
	var buf [HeaderBufSize]byte
	n, err := fileio.ReadAt(handle, 0, buf[:])
	if err != nil {
		return nil, err
	}
	return r.DetectFormat(buf[:n])
}

// Open opens the soundfile at path for reading: it resolves a codec by
// header sniff (falling back to the filename extension), binds a new File
// to it and reads the header. The returned File is ready for SeekToFrame
// and ReadSamples.
func Open(r *Registry, path string) (*File, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open soundfile: %w", err)
	}

	c, err := DetectFile(r, handle)
	if err != nil {
		var ok bool
		if errors.Is(err, ErrUnknownFormat) || errors.Is(err, ErrInsufficientData) {
			c, ok = r.FindByExtension(path)
		}
		if !ok {
			handle.Close()
			return nil, err
		}
	}

	f := New()
	if err := f.Open(handle, c); err != nil {
		// a failed codec open leaves the handle to the caller
		handle.Close()
		return nil, err
	}
	if err := f.ReadHeader(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: read header: %w", c.Name(), err)
	}
	return f, nil
}
