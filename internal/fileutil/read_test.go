package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileToString(t *testing.T) {
	t.Run("reads whole file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "poem.txt")
		want := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."
		require.NoError(t, os.WriteFile(path, []byte(want), 0o644))

		contents, err := ReadFileToString(path)
		require.NoError(t, err)
		assert.Equal(t, want, contents)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		contents, err := ReadFileToString(path)
		require.NoError(t, err)
		assert.Empty(t, contents)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.txt")

		contents, err := ReadFileToString(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), path)
		assert.Empty(t, contents)
	})
}
