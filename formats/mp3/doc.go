// SPDX-License-Identifier: EPL-2.0

// Package mp3 implements a read-only MPEG-1 Layer III soundfile codec.
//
// Decoding is delegated to github.com/hajimehoshi/go-mp3, which always
// yields 16-bit little-endian stereo regardless of the source layout; the
// session therefore reports two channels and two bytes per sample for every
// file. The compressed framing is hidden: header size is zero, seeking and
// the byte limit are expressed in decoded PCM bytes.
//
// All write operations return sndfile.ErrNotSupported.
//
// The MPEG frame sync is a weak signature, so this codec should be
// registered after the headered formats; otherwise DetectFormat may claim
// files that merely start with an 0xFF byte.
package mp3
