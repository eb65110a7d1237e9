// SPDX-License-Identifier: EPL-2.0

// Package vorbis implements a read-only Ogg Vorbis soundfile codec.
//
// Decoding is delegated to github.com/jfreymuth/oggvorbis. Samples surface
// as 32-bit float interleaved PCM in host byte order, four bytes per
// sample; the Ogg framing is hidden, so header size is zero and seeking and
// the byte limit are expressed in decoded PCM bytes.
//
// All write operations return sndfile.ErrNotSupported.
package vorbis
