// SPDX-License-Identifier: EPL-2.0

package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadAt reads up to len(dst) bytes from f starting at offset, without
// disturbing the file's implicit cursor. A short count with a nil error
// means end-of-data; the caller decides whether that is fatal.
func ReadAt(f *os.File, offset int64, dst []byte) (int, error) {
	n, err := f.ReadAt(dst, offset)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		return n, fmt.Errorf("read at %d: %w", offset, err)
	}
	return n, nil
}

// WriteAt writes src to f starting at offset, without disturbing the file's
// implicit cursor. Returns the number of bytes written.
func WriteAt(f *os.File, offset int64, src []byte) (int, error) {
	n, err := f.WriteAt(src, offset)
	if err != nil {
		return n, fmt.Errorf("write at %d: %w", offset, err)
	}
	return n, nil
}
