// Package base64 provides streaming base64 encoding with the line
// wrapping expected of checksum tool output.
package base64

import (
	"encoding/base64"
	"io"
)

// DefaultLineWidth is the conventional wrap column for encoded output.
const DefaultLineWidth = 76

var newline = []byte{'\n'}

// LineWriter passes writes through to an underlying writer, inserting a
// newline before any byte that would exceed the configured width. No
// trailing newline is emitted.
type LineWriter struct {
	w     io.Writer
	width int
	col   int
}

// NewLineWriter wraps w at the given column width.
func NewLineWriter(w io.Writer, width int) *LineWriter {
	return &LineWriter{w: w, width: width}
}

func (l *LineWriter) Write(p []byte) (int, error) {
	var n int
	for len(p) > 0 {
		if l.col == l.width {
			if _, err := l.w.Write(newline); err != nil {
				return n, err
			}
			l.col = 0
		}

		chunk := p
		if space := l.width - l.col; len(chunk) > space {
			chunk = chunk[:space]
		}

		written, err := l.w.Write(chunk)
		n += written
		l.col += written
		p = p[written:]
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// NewEncoder returns a writer that base64-encodes into w with standard
// alphabet and padding, wrapping lines at width columns (or not at all
// when width < 1). Close must be called to flush the final quantum and
// its padding.
func NewEncoder(w io.Writer, width int) io.WriteCloser {
	if width > 0 {
		w = NewLineWriter(w, width)
	}
	return base64.NewEncoder(base64.StdEncoding, w)
}
