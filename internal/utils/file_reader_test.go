package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/acgraph/internal/errors"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestFileReader_ReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	reader := NewFileReader(EncodingUTF8)

	t.Run("reads utf8 content", func(t *testing.T) {
		path := writeFile(t, tmpDir, "Post.php", []byte("<?php class Post {}"))

		text, err := reader.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "<?php class Post {}", text)
	})

	t.Run("decodes with the requested encoding", func(t *testing.T) {
		path := writeFile(t, tmpDir, "Legacy.php", []byte{'/', '/', ' ', 0xe9})

		text, err := reader.ReadFile(path, EncodingLatin1)
		require.NoError(t, err)
		assert.Equal(t, "// é", text)
	})

	t.Run("undecodable bytes are a file read error", func(t *testing.T) {
		path := writeFile(t, tmpDir, "Broken.php", []byte{0xff, 0xfe})

		_, err := reader.ReadFile(path, EncodingASCII)
		require.Error(t, err)

		var readErr *errors.FileReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, path, readErr.Path)
		assert.Equal(t, "ascii", readErr.Encoding)
		assert.Equal(t, errors.FileReadErrorCode, errors.CodeOf(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := reader.Read(filepath.Join(tmpDir, "Missing.php"))

		var readErr *errors.FileReadError
		require.ErrorAs(t, err, &readErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := reader.Read(tmpDir)

		var readErr *errors.FileReadError
		assert.ErrorAs(t, err, &readErr)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := reader.Read("")

		var readErr *errors.FileReadError
		assert.ErrorAs(t, err, &readErr)
	})
}
