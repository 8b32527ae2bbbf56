package source_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chksum/go-chksum/source"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("HELLO"), 0644))

	r, err := source.Open(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "HELLO", string(data))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := source.Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestOpenStdin(t *testing.T) {
	for _, name := range []string{source.Stdin, ""} {
		r, err := source.Open(name)
		require.NoError(t, err)
		// stdin must survive Close so later sources can reuse it
		require.NoError(t, r.Close())
	}
}
