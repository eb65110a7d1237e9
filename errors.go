// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"errors"
	"fmt"
	"syscall"
)

// GenericErrOffset is the top of the generic soundfile error range. Generic
// codes count downward from here. Codec-specific codes must stay above it,
// in -1 down to -999, and are resolved by the codec's own Strerror when it
// implements ErrorStringer.
const GenericErrOffset = -1000

// Errno is a generic soundfile error code. Positive values and zero are
// reserved for per-operation success signals and system error numbers.
type Errno int

// ErrSampleFormat reports a sample format no codec or default
// implementation can handle.
const ErrSampleFormat Errno = GenericErrOffset

func (e Errno) Error() string {
	if e == ErrSampleFormat {
		return "unsupported sample format"
	}
	return fmt.Sprintf("unknown soundfile error %d", int(e))
}

// Error is a codec-defined error carrying a numeric code in the
// codec-specific range (-1 down to -999) together with its message.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

var (
	// ErrClosed indicates an operation on a soundfile that is not open.
	ErrClosed = errors.New("soundfile is not open")

	// ErrAlreadyOpen indicates an Open call on a soundfile that already
	// owns a handle.
	ErrAlreadyOpen = errors.New("soundfile is already open")

	// ErrNoHeader indicates the header size is still unknown, so byte
	// offsets into the sound data cannot be computed yet.
	ErrNoHeader = errors.New("header size is unknown")

	// ErrTooManyCodecs indicates the registry reached its fixed capacity.
	ErrTooManyCodecs = errors.New("codec registry is full")

	// ErrInvalidCodec indicates a codec descriptor that fails registration
	// validation.
	ErrInvalidCodec = errors.New("invalid codec descriptor")

	// ErrUnknownFormat indicates no registered codec matched. It is a
	// resolution outcome, not a failure; the caller picks a default.
	ErrUnknownFormat = errors.New("unknown soundfile format")

	// ErrInsufficientData indicates the sniff buffer was too short for at
	// least one registered codec, so "no match" cannot be trusted.
	ErrInsufficientData = errors.New("not enough header bytes to detect format")

	// ErrNotSupported indicates the resolved codec does not implement an
	// optional operation, for example metadata access or writing.
	ErrNotSupported = errors.New("operation not supported by this format")
)

// Strerror returns a human-readable description for a numeric error code.
// Codes in the codec-specific range are delegated to f's codec when it
// implements ErrorStringer; codes at or below GenericErrOffset resolve to
// the fixed generic messages; positive codes are treated as system error
// numbers.
func Strerror(code int, f *File) string {
	switch {
	case code == 0:
		return "no error"
	case code > 0:
		return syscall.Errno(code).Error()
	case code > GenericErrOffset:
		if f != nil && f.Codec != nil {
			if es, ok := f.Codec.(ErrorStringer); ok {
				return es.Strerror(code)
			}
		}
		return fmt.Sprintf("unknown codec error %d", code)
	default:
		return Errno(code).Error()
	}
}

// Code recovers the numeric error code from an error chain: codec errors
// yield their codec-range code, generic errors their Errno value, and
// wrapped system errors their errno. Errors outside the numeric contract
// yield 0.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	var ge Errno
	if errors.As(err, &ge) {
		return int(ge)
	}
	var se syscall.Errno
	if errors.As(err, &se) {
		return int(se)
	}
	return 0
}
