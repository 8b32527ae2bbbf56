package checksum

import (
	"errors"
	"fmt"

	"github.com/chksum/go-chksum/digest"
)

// UnrecognizedLineError means a line matched neither the GNU nor the BSD
// checksum layout for any supported algorithm.
type UnrecognizedLineError struct {
	Line string
}

func (e UnrecognizedLineError) Name() string {
	return "UnrecognizedChecksumLine"
}

func (e UnrecognizedLineError) Error() string {
	return fmt.Sprintf("unrecognized checksum line: %q", e.Line)
}

// MismatchError means a file's computed digest differs from the digest a
// checksum entry expects.
type MismatchError struct {
	Path     string
	Expected digest.Digest
	Actual   digest.Digest
}

func (e MismatchError) Name() string {
	return "DigestMismatch"
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: digest mismatch: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// IsMismatch reports whether err is (or wraps) a digest mismatch, as
// opposed to a parse or I/O failure.
func IsMismatch(err error) bool {
	var mismatch MismatchError
	return errors.As(err, &mismatch)
}

// IsUnrecognizedLine reports whether err is (or wraps) an unparseable
// checksum line.
func IsUnrecognizedLine(err error) bool {
	var unrecognized UnrecognizedLineError
	return errors.As(err, &unrecognized)
}
