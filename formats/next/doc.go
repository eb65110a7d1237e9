// SPDX-License-Identifier: EPL-2.0

// Package next implements the NeXT/Sun .snd/.au soundfile codec.
//
// The format is a fixed 24-byte field block, an optional free-form text
// annotation, then interleaved PCM. Both byte orders are read: the native
// big-endian ".snd" magic and the byte-swapped little-endian "dns." variant.
// Writing honors the session's byte order and produces the canonical
// 28-byte header with an empty annotation.
//
// A header may declare its data size unknown (0xffffffff), the layout
// produced by writers that stream to a pipe and never fix the header up;
// ReadHeader then computes the byte limit from the file size. The
// annotation text, when present, is surfaced through ReadMeta as a single
// "comment" message.
//
// Supported data formats are 16- and 24-bit linear PCM and 32-bit float.
package next
