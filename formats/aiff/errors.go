package aiff

import "github.com/ik5/sndfile"

// Descriptive codec error codes, resolved by Codec.Strerror.
const (
	errCodeMalformed = -1
	errCodeNoComm    = -2
	errCodeCommSize  = -3
	errCodeNoSsnd    = -4
)

var (
	// ErrNotAiff indicates the file does not start with a FORM/AIFF header.
	ErrNotAiff = &sndfile.Error{Code: errCodeMalformed, Msg: "not an AIFF file"}

	// ErrMalformed indicates a truncated or inconsistent header.
	ErrMalformed = &sndfile.Error{Code: errCodeMalformed, Msg: "malformed AIFF header"}

	// ErrNoComm indicates the SSND chunk appeared before any COMM chunk.
	ErrNoComm = &sndfile.Error{Code: errCodeNoComm, Msg: "missing COMM chunk"}

	// ErrCommSize indicates a COMM chunk too small to hold the format info.
	ErrCommSize = &sndfile.Error{Code: errCodeCommSize, Msg: "COMM chunk too small"}

	// ErrNoSsnd indicates the header ended without an SSND chunk.
	ErrNoSsnd = &sndfile.Error{Code: errCodeNoSsnd, Msg: "missing SSND chunk"}
)

// Strerror resolves this format's descriptive error codes.
func (*Codec) Strerror(code int) string {
	switch code {
	case errCodeMalformed:
		return ErrMalformed.Msg
	case errCodeNoComm:
		return ErrNoComm.Msg
	case errCodeCommSize:
		return ErrCommSize.Msg
	case errCodeNoSsnd:
		return ErrNoSsnd.Msg
	}
	return sndfile.Strerror(code, nil)
}
