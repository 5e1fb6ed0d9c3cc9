package utils

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be descended into
type DirectoryFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// FileProcessor walks directory trees collecting matching files
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// ExtensionFileFilter matches regular files whose name ends with ext.
// The comparison is case-sensitive and tolerates a missing leading dot.
func ExtensionFileFilter(ext string) FileFilter {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return func(path string, info fs.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		return strings.HasSuffix(info.Name(), ext)
	}
}

// ExcludeDirectoryFilter skips directories whose base name matches one of
// the filepath.Match patterns. With no patterns every directory is walked.
func ExcludeDirectoryFilter(patterns ...string) DirectoryFilter {
	return func(path string, info fs.DirEntry) bool {
		if !info.IsDir() {
			return true
		}
		for _, pattern := range patterns {
			if matched, err := filepath.Match(pattern, info.Name()); err == nil && matched {
				return false
			}
		}
		return true
	}
}

// WalkFiles walks rootDir in lexical order and returns the files accepted by
// the filters. The root itself is never filtered out.
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	matchedFiles := []string{}

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matchedFiles = append(matchedFiles, path)
		}
		return nil
	})

	return matchedFiles, err
}
