// Package source resolves the byte sources named on a checksum command
// line: regular files, or standard input via the conventional "-" name.
package source

import (
	"io"
	"os"
)

// Stdin is the path name that selects standard input.
const Stdin = "-"

// Open returns a reader for the named file. The name "-" (or an empty
// name) selects standard input, which is returned behind a no-op closer.
func Open(name string) (io.ReadCloser, error) {
	if name == "" || name == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
