// SPDX-License-Identifier: EPL-2.0

// Package aiff implements the AIFF soundfile codec.
//
// AIFF carries big-endian integer PCM; this codec reads and writes the 16-
// and 24-bit layouts. The COMM sample rate is an 80-bit IEEE 754 extended
// float, encoded and decoded here without loss for any integer rate. AIFC
// variants (float samples, little-endian "sowt") are rejected with
// sndfile.ErrSampleFormat rather than misread.
//
// Reading tolerates any chunk order and unknown chunks before SSND, as long
// as COMM precedes SSND. UpdateHeader rewrites the FORM size, COMM frame
// count and SSND size in place, using chunk positions recorded at header
// read or write time, so two-phase writes of unknown-length streams work on
// non-canonical layouts too.
package aiff
