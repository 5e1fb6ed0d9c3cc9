package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryScanner_ScanFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"Entity/Post.php":      postEntity,
		"Entity/Comment.php":   commentEntity,
		"Controller/Home.php":  "<?php class Home {}",
		"vendor/acme/Lib.php":  "<?php class Lib {}",
		"templates/index.twig": "{{ post }}",
		".idea/workspace.php":  "<?php",
	})

	abs, err := filepath.Abs(root)
	require.NoError(t, err)

	t.Run("every subdirectory by default", func(t *testing.T) {
		files, err := NewDirectoryScanner().ScanFiles(root, ".php")
		require.NoError(t, err)

		expected := []string{
			filepath.Join(abs, ".idea", "workspace.php"),
			filepath.Join(abs, "Controller", "Home.php"),
			filepath.Join(abs, "Entity", "Comment.php"),
			filepath.Join(abs, "Entity", "Post.php"),
			filepath.Join(abs, "vendor", "acme", "Lib.php"),
		}
		assert.Equal(t, expected, files)
	})

	t.Run("excluded directories", func(t *testing.T) {
		files, err := NewDirectoryScanner().ScanFiles(root, ".php", "vendor", ".*")
		require.NoError(t, err)

		expected := []string{
			filepath.Join(abs, "Controller", "Home.php"),
			filepath.Join(abs, "Entity", "Comment.php"),
			filepath.Join(abs, "Entity", "Post.php"),
		}
		assert.Equal(t, expected, files)
	})
}

func TestDirectoryScanner_ScanFilesMissingRoot(t *testing.T) {
	_, err := NewDirectoryScanner().ScanFiles(filepath.Join(t.TempDir(), "missing"), ".php")
	assert.Error(t, err)
}
