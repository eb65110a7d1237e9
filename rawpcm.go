// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"
	"io"
	"os"
)

// RawPCM provides the default stream behavior for formats whose sample data
// is uninterpreted interleaved PCM immediately following a header of known
// size. Codecs embed it and implement only header parsing, writing and
// detection themselves:
//
//	type codec struct {
//	    sndfile.RawPCM
//	}
//
// The read and write paths move bytes verbatim; swapping sample bytes to or
// from the host order is the caller's job.
type RawPCM struct{}

// Open records the handle on f. No codec-private state is allocated.
func (RawPCM) Open(f *File, handle *os.File) error {
	f.Handle = handle
	return nil
}

// Close closes the handle and clears it to the closed sentinel along with
// any codec data.
func (RawPCM) Close(f *File) error {
	var err error
	if f.Handle != nil {
		err = f.Handle.Close()
	}
	f.Handle = nil
	f.Data = nil
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

// SeekToFrame repositions the stream cursor to
// HeaderSize + frame*BytesPerFrame. Seeking past the current end of file is
// allowed; it matters only for write streams.
func (RawPCM) SeekToFrame(f *File, frame int64) error {
	if f.HeaderSize < 0 {
		return ErrNoHeader
	}
	offset := f.HeaderSize + frame*int64(f.BytesPerFrame)
	if _, err := f.Handle.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to frame %d: %w", frame, err)
	}
	return nil
}

// ReadSamples reads up to len(dst) sample bytes at the current cursor,
// clamped to the remaining byte limit and truncated to whole frames. The
// byte limit is decremented by the transfer. Returns io.EOF once the sound
// data region is exhausted.
func (RawPCM) ReadSamples(f *File, dst []byte) (int64, error) {
	want := int64(len(dst))
	if f.ByteLimit < want {
		want = f.ByteLimit
	}
	if f.BytesPerFrame > 0 {
		want -= want % int64(f.BytesPerFrame)
	}
	if want <= 0 {
		return 0, io.EOF
	}

	n, err := io.ReadFull(f.Handle, dst[:want])
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		// true end of data: drop a trailing partial frame
		if f.BytesPerFrame > 0 {
			n -= n % f.BytesPerFrame
		}
		if n == 0 {
			return 0, io.EOF
		}
	default:
		return int64(n), fmt.Errorf("read samples: %w", err)
	}

	f.ByteLimit -= int64(n)
	return int64(n), nil
}

// WriteSamples writes up to len(src) sample bytes at the current cursor,
// clamped to the remaining byte limit and truncated to whole frames. The
// byte limit is decremented by the transfer. Returns io.EOF once a bounded
// sound data region is full.
func (RawPCM) WriteSamples(f *File, src []byte) (int64, error) {
	want := int64(len(src))
	if f.ByteLimit < want {
		want = f.ByteLimit
	}
	if f.BytesPerFrame > 0 {
		want -= want % int64(f.BytesPerFrame)
	}
	if want <= 0 {
		return 0, io.EOF
	}

	n, err := f.Handle.Write(src[:want])
	f.ByteLimit -= int64(n)
	if err != nil {
		return int64(n), fmt.Errorf("write samples: %w", err)
	}
	return int64(n), nil
}
