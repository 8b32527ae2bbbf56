package digest

import "fmt"

// MalformedLengthError means a hex string or raw byte slice does not match
// the algorithm's digest size.
type MalformedLengthError struct {
	Algorithm Algorithm
	// Length is the hex character count that was supplied.
	Length int
}

func (e MalformedLengthError) Name() string {
	return "MalformedDigestLength"
}

func (e MalformedLengthError) Error() string {
	return fmt.Sprintf("%s digest must be %d hex characters, got %d", e.Algorithm, e.Algorithm.HexSize(), e.Length)
}

// InvalidHexDigitError means a character outside [0-9a-fA-F] appeared where
// a hex digit was expected.
type InvalidHexDigitError struct {
	Digit byte
}

func (e InvalidHexDigitError) Name() string {
	return "InvalidHexDigit"
}

func (e InvalidHexDigitError) Error() string {
	return fmt.Sprintf("invalid hex digit %q in digest", e.Digit)
}
