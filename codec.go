// SPDX-License-Identifier: EPL-2.0

package sndfile

import "os"

// Endianness values a host may request when creating a file. A codec's
// Endianness method answers with the endianness the format will actually
// use, EndianLittle or EndianBig.
const (
	EndianUnspecified = -1
	EndianLittle      = 0
	EndianBig         = 1
)

// Codec is one soundfile format implementation. A registry stores codecs in
// registration order and the File dispatches its lifecycle through the one
// that was resolved for it.
//
// All methods may be called from a background thread, as long as a single
// File is never driven by two goroutines at once. Codecs must not carry
// per-file state in the receiver; per-file state belongs in File.Data.
//
// Formats whose sample data is plain interleaved PCM after the header can
// embed RawPCM to inherit the default open, close, seek, read and write
// behavior and only implement header handling themselves.
type Codec interface {
	// Name returns the unique format name, without whitespace.
	Name() string

	// MinHeaderSize returns the smallest number of header bytes IsHeader
	// needs before a match/no-match answer is meaningful.
	MinHeaderSize() int

	// IsHeader reports whether buf starts a supported file header. buf is
	// at least MinHeaderSize bytes long.
	IsHeader(buf []byte) bool

	// Open takes ownership of an already-open handle and allocates any
	// codec-private state on f. On success f.Handle must be set; on
	// failure the handle stays owned by the caller and must not be closed
	// here.
	Open(f *File, handle *os.File) error

	// Close releases codec-private state and the handle, setting f.Handle
	// and f.Data to nil.
	Close(f *File) error

	// ReadHeader parses the file header, populating the format fields and
	// setting f.ByteLimit to the sound data byte count.
	ReadHeader(f *File) error

	// WriteHeader writes a fresh header at the start of the file from the
	// current format fields and a frame count hint, returning the number
	// of header bytes written. It must set f.HeaderSize.
	WriteHeader(f *File, frames int64) (int, error)

	// UpdateHeader rewrites the size-dependent header fields for a final
	// frame count. Idempotent.
	UpdateHeader(f *File, frames int64) error

	// HasExtension reports whether filename carries one of the format's
	// recognized extensions.
	HasExtension(filename string) bool

	// AddExtension appends the format's canonical extension to filename
	// unless it already ends in a recognized one.
	AddExtension(filename string) string

	// Endianness returns the sample endianness the format will use for a
	// requested endianness of EndianUnspecified, EndianLittle or EndianBig.
	Endianness(requested int) int

	// SeekToFrame repositions the stream cursor to the given sample frame.
	SeekToFrame(f *File, frame int64) error

	// ReadSamples reads interleaved sample bytes at the current cursor
	// into dst, honoring f.ByteLimit and never splitting a frame except at
	// true end-of-data. Returns the byte count and io.EOF once the sound
	// data region is exhausted.
	ReadSamples(f *File, dst []byte) (int64, error)

	// WriteSamples writes interleaved sample bytes from src at the current
	// cursor, honoring f.ByteLimit. Returns the byte count.
	WriteSamples(f *File, src []byte) (int64, error)
}

// MetaSink receives metadata parsed from a file header as discrete
// messages. The host supplies one for File.ReadMeta.
type MetaSink interface {
	Send(selector string, args ...any)
}

// MetaReader is implemented by codecs that can read metadata from the file
// header.
type MetaReader interface {
	ReadMeta(f *File, out MetaSink) error
}

// MetaWriter is implemented by codecs that can write metadata into the file
// header, updating f.HeaderSize as needed.
type MetaWriter interface {
	WriteMeta(f *File, args []any) error
}

// ErrorStringer is implemented by codecs that define descriptive error
// codes in the codec-specific range (-1 down to -999).
type ErrorStringer interface {
	Strerror(code int) string
}
