package wav

import "github.com/ik5/sndfile"

// Descriptive codec error codes, resolved by Codec.Strerror. They live in
// the codec-specific range above sndfile.GenericErrOffset.
const (
	errCodeMalformed = -1
	errCodeNoFmt     = -2
	errCodeFmtSize   = -3
	errCodeNoData    = -4
)

var (
	// ErrNotWave indicates the file does not start with a RIFF/RIFX WAVE header.
	ErrNotWave = &sndfile.Error{Code: errCodeMalformed, Msg: "not a WAVE file"}

	// ErrMalformed indicates a truncated or inconsistent header.
	ErrMalformed = &sndfile.Error{Code: errCodeMalformed, Msg: "malformed WAVE header"}

	// ErrNoFmt indicates the data chunk appeared before any fmt chunk.
	ErrNoFmt = &sndfile.Error{Code: errCodeNoFmt, Msg: "missing fmt chunk"}

	// ErrFmtSize indicates a fmt chunk too small for its declared format.
	ErrFmtSize = &sndfile.Error{Code: errCodeFmtSize, Msg: "fmt chunk too small"}

	// ErrNoData indicates the header ended without a data chunk.
	ErrNoData = &sndfile.Error{Code: errCodeNoData, Msg: "missing data chunk"}
)

// Strerror resolves this format's descriptive error codes.
func (*Codec) Strerror(code int) string {
	switch code {
	case errCodeMalformed:
		return ErrMalformed.Msg
	case errCodeNoFmt:
		return ErrNoFmt.Msg
	case errCodeFmtSize:
		return ErrFmtSize.Msg
	case errCodeNoData:
		return ErrNoData.Msg
	}
	return sndfile.Strerror(code, nil)
}
