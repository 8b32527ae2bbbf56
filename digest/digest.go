// Package digest models algorithm-tagged message digest values with a
// canonical lowercase hex representation.
package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Algorithm identifies a supported digest algorithm.
type Algorithm int

const (
	MD5 Algorithm = iota + 1
	SHA256
)

func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA256:
		return "SHA256"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Size returns the digest size in bytes.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return 16
	case SHA256:
		return 32
	}
	return 0
}

// HexSize returns the length of the hex rendering of a digest.
func (a Algorithm) HexSize() int {
	return a.Size() * 2
}

// Digest is a fixed-size digest value tagged with its algorithm. String
// renders lowercase hex and Parse inverts it exactly.
type Digest interface {
	Algorithm() Algorithm
	Bytes() []byte
	String() string
}

type value struct {
	algorithm Algorithm
	bytes     []byte
}

func (v value) Algorithm() Algorithm {
	return v.algorithm
}

func (v value) Bytes() []byte {
	b := make([]byte, len(v.bytes))
	copy(b, v.bytes)
	return b
}

func (v value) String() string {
	return hex.EncodeToString(v.bytes)
}

// FromBytes constructs a digest from raw bytes. The length must match the
// algorithm's digest size.
func FromBytes(a Algorithm, raw []byte) (Digest, error) {
	if len(raw) != a.Size() {
		return nil, MalformedLengthError{Algorithm: a, Length: len(raw) * 2}
	}
	b := make([]byte, len(raw))
	copy(b, raw)
	return value{a, b}, nil
}

// Parse decodes a hex digest string. It fails with [MalformedLengthError]
// when the string is not exactly twice the digest size and with
// [InvalidHexDigitError] when a character is not a hex digit. Uppercase
// digits are accepted; rendering is always lowercase.
func Parse(a Algorithm, s string) (Digest, error) {
	if len(s) != a.HexSize() {
		return nil, MalformedLengthError{Algorithm: a, Length: len(s)}
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		if inv, ok := err.(hex.InvalidByteError); ok {
			return nil, InvalidHexDigitError{Digit: byte(inv)}
		}
		return nil, err
	}
	return value{a, raw}, nil
}

// Equal reports whether two digests have the same algorithm and bytes.
func Equal(a, b Digest) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Algorithm() == b.Algorithm() && bytes.Equal(a.Bytes(), b.Bytes())
}
