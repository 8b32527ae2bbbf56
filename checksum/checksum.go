// Package checksum reads and writes GNU and BSD style checksum lines and
// verifies files against them.
package checksum

import (
	"fmt"
	"io"
	"regexp"

	"github.com/chksum/go-chksum/core/hash/md5"
	"github.com/chksum/go-chksum/core/hash/sha256"
	"github.com/chksum/go-chksum/digest"
)

// Style selects the textual layout of a checksum line.
type Style int

const (
	// GNU style: "<hex-digest>  <path>" (two spaces).
	GNU Style = iota
	// BSD style: "<ALGONAME> (<path>) = <hex-digest>".
	BSD
)

// Format renders one checksum line for d and path in the given style.
func Format(d digest.Digest, path string, style Style) string {
	if style == BSD {
		return fmt.Sprintf("%s (%s) = %s", d.Algorithm(), path, d)
	}
	return fmt.Sprintf("%s  %s", d, path)
}

// Entry is one parsed checksum line: the path it names and the digest the
// file is expected to have.
type Entry struct {
	Path   string
	Digest digest.Digest
}

var (
	sha256GNURe = regexp.MustCompile(`^([[:alnum:]]{64})[[:space:]]+(.+)$`)
	sha256BSDRe = regexp.MustCompile(`^SHA256 \((.+)\)[[:space:]]*=[[:space:]]*([[:alnum:]]{64})$`)
	md5GNURe    = regexp.MustCompile(`^([[:alnum:]]{32})[[:space:]]+(.+)$`)
	md5BSDRe    = regexp.MustCompile(`^MD5 \((.+)\)[[:space:]]*=[[:space:]]*([[:alnum:]]{32})$`)
)

// ParseLine recognizes one GNU or BSD style checksum line for either
// algorithm. The algorithm is derived from the pattern that matched: the
// digest length for GNU lines, the tag for BSD lines. Lines matching no
// pattern fail with [UnrecognizedLineError]; a recognized line whose
// digest is not valid hex fails with the digest package's parse errors.
func ParseLine(line string) (Entry, error) {
	var (
		algorithm digest.Algorithm
		hexdigest string
		path      string
	)

	switch {
	case sha256GNURe.MatchString(line):
		caps := sha256GNURe.FindStringSubmatch(line)
		algorithm, hexdigest, path = digest.SHA256, caps[1], caps[2]
	case sha256BSDRe.MatchString(line):
		caps := sha256BSDRe.FindStringSubmatch(line)
		algorithm, path, hexdigest = digest.SHA256, caps[1], caps[2]
	case md5GNURe.MatchString(line):
		caps := md5GNURe.FindStringSubmatch(line)
		algorithm, hexdigest, path = digest.MD5, caps[1], caps[2]
	case md5BSDRe.MatchString(line):
		caps := md5BSDRe.FindStringSubmatch(line)
		algorithm, path, hexdigest = digest.MD5, caps[1], caps[2]
	default:
		return Entry{}, UnrecognizedLineError{Line: line}
	}

	d, err := digest.Parse(algorithm, hexdigest)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Path: path, Digest: d}, nil
}

// Compute streams r through a fresh engine for the given algorithm.
func Compute(r io.Reader, algorithm digest.Algorithm) (digest.Digest, error) {
	switch algorithm {
	case digest.MD5:
		e := md5.New()
		if _, err := io.Copy(e, r); err != nil {
			return nil, err
		}
		return e.Sum(), nil
	case digest.SHA256:
		e := sha256.New()
		if _, err := io.Copy(e, r); err != nil {
			return nil, err
		}
		return e.Sum(), nil
	}
	return nil, fmt.Errorf("unsupported digest algorithm: %s", algorithm)
}
