package checksum

import (
	"bufio"
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/chksum/go-chksum/digest"
	"github.com/chksum/go-chksum/source"
)

// DigestCacheSize is the default number of computed file digests a Checker
// keeps. Checksum lists commonly name the same file more than once.
var DigestCacheSize = 100

// Checker verifies files against checksum entries, caching computed
// digests per path and algorithm.
type Checker struct {
	cache *lru.Cache[string, digest.Digest]
}

// NewChecker creates a Checker. The size parameter controls the maximum
// number of cached digests. Pass a value less than 1 to use the default
// [DigestCacheSize].
func NewChecker(size int) (*Checker, error) {
	if size <= 0 {
		size = DigestCacheSize
	}
	cache, err := lru.New[string, digest.Digest](size)
	if err != nil {
		return nil, fmt.Errorf("creating digest LRU: %w", err)
	}
	return &Checker{cache: cache}, nil
}

// Check recomputes the digest of the file an entry names and compares it
// to the expected one. A differing digest fails with [MismatchError];
// anything else wrong is an I/O failure on the named file.
func (c *Checker) Check(entry Entry) error {
	actual, err := c.digestFile(entry.Path, entry.Digest.Algorithm())
	if err != nil {
		return err
	}
	if !digest.Equal(entry.Digest, actual) {
		return MismatchError{Path: entry.Path, Expected: entry.Digest, Actual: actual}
	}
	return nil
}

// CheckLine parses one checksum line and verifies the file it names. The
// parsed entry is returned alongside the verification result when parsing
// succeeded.
func (c *Checker) CheckLine(line string) (Entry, error) {
	entry, err := ParseLine(line)
	if err != nil {
		return Entry{}, err
	}
	return entry, c.Check(entry)
}

// Result is the outcome of verifying one line of a checksum list. Err is
// nil when the file matched its expected digest.
type Result struct {
	Line  string
	Entry Entry
	Err   error
}

// CheckList reads checksum lines from r and verifies each one, skipping
// blank lines. The error is non-nil only when reading r itself fails;
// per-line failures are reported in the results.
func (c *Checker) CheckList(r io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		entry, err := c.CheckLine(line)
		results = append(results, Result{Line: line, Entry: entry, Err: err})
	}
	if err := scanner.Err(); err != nil {
		return results, errors.Wrap(err, "reading checksum list")
	}
	return results, nil
}

func (c *Checker) digestFile(path string, algorithm digest.Algorithm) (digest.Digest, error) {
	key := fmt.Sprintf("%s:%s", algorithm, path)
	if d, ok := c.cache.Get(key); ok {
		return d, nil
	}

	r, err := source.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer r.Close()

	d, err := Compute(r, algorithm)
	if err != nil {
		return nil, errors.Wrapf(err, "digesting %s", path)
	}

	c.cache.Add(key, d)
	return d, nil
}
