// SPDX-License-Identifier: EPL-2.0

// Package fileio provides positioned reads and writes on open files.
//
// Positioned I/O decouples header access from the file's implicit cursor:
// a header rewrite at offset 0 can coexist with sequential sample streaming
// on the same handle without cursor races. Both functions map onto the
// operating system's pread/pwrite and never move the seek position used by
// sequential Read and Write calls.
package fileio
