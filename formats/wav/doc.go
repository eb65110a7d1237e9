// SPDX-License-Identifier: EPL-2.0

// Package wav implements the WAVE soundfile codec.
//
// # Supported Layouts
//
// Reading:
//   - little-endian RIFF and big-endian RIFX containers
//   - 16- and 24-bit integer PCM (format 1), 32-bit float (format 3)
//   - WAVE_FORMAT_EXTENSIBLE headers wrapping either of the above
//   - arbitrary chunks before the data chunk, skipped with even padding
//
// Writing produces the canonical 44-byte little-endian RIFF header. A
// stream of unknown length is written with a zero frame-count hint and
// fixed up afterwards:
//
//	f.WriteHeader(0)
//	f.WriteSamples(pcm)
//	f.UpdateHeader(frames)
//
// which yields a header byte-identical to writing the correct count up
// front.
//
// # Errors
//
// Header failures carry descriptive codec error codes resolvable through
// sndfile.Strerror; unsupported sample layouts surface the generic
// sndfile.ErrSampleFormat.
package wav
