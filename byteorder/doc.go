// SPDX-License-Identifier: EPL-2.0

// Package byteorder provides conditional byte swapping for soundfile headers.
//
// Every multi-byte numeric or tag field in an audio file header is either in
// a known byte order or must be read in both possible orders and selected by
// format convention. Centralizing the swap logic here keeps the per-format
// header parsers free of duplicated, error-prone inline swaps.
//
// All swappers take a "doit" flag and are no-ops when it is false, so a
// parser can compute the flag once (stored order vs. host order) and apply
// it uniformly:
//
//	swap := byteorder.IsBigEndian() != fileIsBigEndian
//	frames := byteorder.Swap4(rawFrames, swap)
//
// SwapString4 and SwapString8 reverse fixed-length chunk identifiers in
// place; callers must pass buffers of exactly 4 or 8 bytes.
package byteorder
