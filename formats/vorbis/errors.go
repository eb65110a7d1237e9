package vorbis

import "github.com/ik5/sndfile"

// Descriptive codec error codes, resolved by Codec.Strerror.
const errCodeNotVorbis = -1

// ErrNotVorbis indicates the stream could not be parsed as Ogg Vorbis.
var ErrNotVorbis = &sndfile.Error{Code: errCodeNotVorbis, Msg: "not an Ogg Vorbis stream"}

// Strerror resolves this format's descriptive error codes.
func (*Codec) Strerror(code int) string {
	if code == errCodeNotVorbis {
		return ErrNotVorbis.Msg
	}
	return sndfile.Strerror(code, nil)
}
