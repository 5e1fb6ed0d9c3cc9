package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/acgraph/internal/errors"
)

// FileReader reads source files from disk and decodes them to text
type FileReader struct {
	encoding Encoding
}

// NewFileReader creates a reader that decodes with enc
func NewFileReader(enc Encoding) *FileReader {
	return &FileReader{encoding: enc}
}

// Encoding returns the reader's default encoding
func (fr *FileReader) Encoding() Encoding {
	return fr.encoding
}

// Read reads filePath with the reader's default encoding
func (fr *FileReader) Read(filePath string) (string, error) {
	return fr.ReadFile(filePath, fr.encoding)
}

// ReadFile reads filePath and decodes it with enc. Missing files, read
// failures and undecodable bytes all yield a *errors.FileReadError.
func (fr *FileReader) ReadFile(filePath string, enc Encoding) (string, error) {
	cleanPath, err := fr.validateAndCleanPath(filePath)
	if err != nil {
		return "", errors.NewFileReadError(filePath, enc.String(), err)
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", errors.NewFileReadError(cleanPath, enc.String(), err)
	}

	text, err := enc.Decode(content)
	if err != nil {
		return "", errors.NewFileReadError(cleanPath, enc.String(), err)
	}
	return text, nil
}

// validateAndCleanPath validates and cleans a file path
func (fr *FileReader) validateAndCleanPath(filePath string) (string, error) {
	if err := NotEmpty("filePath")(filePath); err != nil {
		return "", fmt.Errorf("file path %w", err)
	}

	cleanPath := filepath.Clean(filePath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("'%s' is a directory", cleanPath)
	}
	return cleanPath, nil
}
