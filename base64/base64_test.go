package base64_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chksum/go-chksum/base64"
)

func encode(t *testing.T, data string, width int) string {
	t.Helper()
	var out strings.Builder
	enc := base64.NewEncoder(&out, width)
	_, err := enc.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return out.String()
}

func TestEncoder(t *testing.T) {
	vectors := []struct {
		data     string
		expected string
	}{
		{"", ""},
		{"a", "YQ=="},
		{"aa", "YWE="},
		{"aaa", "YWFh"},
		{"aaaa", "YWFhYQ=="},
		{"hello", "aGVsbG8="},
	}
	for _, v := range vectors {
		t.Run(v.data, func(t *testing.T) {
			require.Equal(t, v.expected, encode(t, v.data, base64.DefaultLineWidth))
		})
	}
}

func TestEncoderStreaming(t *testing.T) {
	var out strings.Builder
	enc := base64.NewEncoder(&out, base64.DefaultLineWidth)
	for _, chunk := range []string{"h", "el", "lo"} {
		_, err := enc.Write([]byte(chunk))
		require.NoError(t, err)
	}
	require.NoError(t, enc.Close())
	require.Equal(t, "aGVsbG8=", out.String())
}

func TestEncoderWrapping(t *testing.T) {
	// 78 input bytes encode to 104 characters: a full 76 column line and
	// a 28 character remainder
	data := strings.Repeat("a", 78)
	encoded := encode(t, data, base64.DefaultLineWidth)

	lines := strings.Split(encoded, "\n")
	require.Len(t, lines, 2)
	require.Len(t, lines[0], 76)
	require.Len(t, lines[1], 28)
}

func TestEncoderUnwrapped(t *testing.T) {
	data := strings.Repeat("a", 120)
	encoded := encode(t, data, 0)
	require.NotContains(t, encoded, "\n")
	require.Len(t, encoded, 160)
}

func TestLineWriter(t *testing.T) {
	vectors := []struct {
		name     string
		width    int
		data     string
		expected string
	}{
		{"empty", 1, "", ""},
		{"single", 1, "a", "a"},
		{"wrap each", 1, "aa", "a\na"},
		{"wrap every", 1, "aaa", "a\na\na"},
		{"wrap pairs", 2, "aaa", "aa\na"},
		{"exact fit", 3, "aaa", "aaa"},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			var out strings.Builder
			lw := base64.NewLineWriter(&out, v.width)
			n, err := lw.Write([]byte(v.data))
			require.NoError(t, err)
			require.Equal(t, len(v.data), n)
			require.Equal(t, v.expected, out.String())
		})
	}
}
