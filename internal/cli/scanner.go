package cli

import (
	"fmt"
	"path/filepath"

	"github.com/toyz/acgraph/internal/errors"
	"github.com/toyz/acgraph/internal/utils"
)

// DirectoryScanner handles recursive directory scanning for source files
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// ScanFiles returns every file under root whose name ends with ext, in
// lexical order. Every subdirectory is visited unless its name matches one
// of the exclude patterns.
func (s *DirectoryScanner) ScanFiles(root, ext string, exclude ...string) ([]string, error) {
	cleanRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.WrapWithOperation("process", fmt.Sprintf("path resolution %s", root), err)
	}

	files, err := s.fileProcessor.WalkFiles(cleanRoot, utils.FileWalkOptions{
		FileFilter:      utils.ExtensionFileFilter(ext),
		DirectoryFilter: utils.ExcludeDirectoryFilter(exclude...),
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", cleanRoot, err)
	}
	return files, nil
}
