package next

import "github.com/ik5/sndfile"

// Descriptive codec error codes, resolved by Codec.Strerror.
const (
	errCodeMalformed = -1
	errCodeFormat    = -2
)

var (
	// ErrNotNext indicates the file does not start with a .snd magic in
	// either byte order.
	ErrNotNext = &sndfile.Error{Code: errCodeMalformed, Msg: "not a NeXT/Sun file"}

	// ErrMalformed indicates a truncated or inconsistent header.
	ErrMalformed = &sndfile.Error{Code: errCodeMalformed, Msg: "malformed NeXT/Sun header"}

	// ErrFormat indicates a data format code this codec does not stream.
	ErrFormat = &sndfile.Error{Code: errCodeFormat, Msg: "unsupported NeXT/Sun data format"}
)

// Strerror resolves this format's descriptive error codes.
func (*Codec) Strerror(code int) string {
	switch code {
	case errCodeMalformed:
		return ErrMalformed.Msg
	case errCodeFormat:
		return ErrFormat.Msg
	}
	return sndfile.Strerror(code, nil)
}
