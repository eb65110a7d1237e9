package mp3

import "github.com/ik5/sndfile"

// Descriptive codec error codes, resolved by Codec.Strerror.
const errCodeNotMP3 = -1

// ErrNotMP3 indicates the stream could not be parsed as MPEG audio.
var ErrNotMP3 = &sndfile.Error{Code: errCodeNotMP3, Msg: "not an MPEG audio stream"}

// Strerror resolves this format's descriptive error codes.
func (*Codec) Strerror(code int) string {
	if code == errCodeNotMP3 {
		return ErrNotMP3.Msg
	}
	return sndfile.Strerror(code, nil)
}
