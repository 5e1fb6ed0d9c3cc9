package errors

import "fmt"

// MalformedAnnotationError reports an annotation whose delimiters never balance
type MalformedAnnotationError struct {
	*BaseError
	Marker string // annotation marker or sub-key being scanned
	Open   byte   // opening delimiter
	Close  byte   // closing delimiter
	Depth  int    // nesting depth still open when the input ran out
}

// NewMalformedAnnotationError creates an error for an unbalanced delimiter scan
func NewMalformedAnnotationError(marker string, open, close byte, depth int) *MalformedAnnotationError {
	msg := fmt.Sprintf("unbalanced '%c' after %s: %d unclosed", open, marker, depth)
	err := &MalformedAnnotationError{
		BaseError: New(MalformedAnnotationErrorCode, msg),
		Marker:    marker,
		Open:      open,
		Close:     close,
		Depth:     depth,
	}
	err.WithContext("marker", marker)
	err.WithSuggestion(fmt.Sprintf("Close every '%c' in the %s argument list with a matching '%c'", open, marker, close))
	return err
}

// WithFile records the file the annotation was read from
func (e *MalformedAnnotationError) WithFile(path string) *MalformedAnnotationError {
	e.Loc.File = path
	return e
}

// FileReadError reports a source file that could not be read or decoded
type FileReadError struct {
	*BaseError
	Path     string
	Encoding string
}

// NewFileReadError creates a file read error for path decoded with encoding
func NewFileReadError(path, encoding string, cause error) *FileReadError {
	err := &FileReadError{
		BaseError: Wrap(FileReadErrorCode, fmt.Sprintf("failed to read '%s' as %s", path, encoding), cause),
		Path:      path,
		Encoding:  encoding,
	}
	err.WithContext("path", path)
	err.WithContext("encoding", encoding)
	err.WithSuggestion("Check the file permissions or pass a different --encoding")
	return err
}

// RenderWriteError reports an output image that could not be produced
type RenderWriteError struct {
	*BaseError
	Path string
}

// NewRenderWriteError creates a render error for the output path
func NewRenderWriteError(path string, cause error) *RenderWriteError {
	err := &RenderWriteError{
		BaseError: Wrap(RenderWriteErrorCode, fmt.Sprintf("failed to write graph image '%s'", path), cause),
		Path:      path,
	}
	err.WithContext("path", path)
	err.WithSuggestion("Make sure the parent directory exists and is writable")
	err.WithSuggestion("Use a supported extension: .png, .jpg, .jpeg, .svg, .pdf, .eps, .tif, .tiff")
	return err
}

// ConfigurationError reports invalid or missing run configuration
type ConfigurationError struct {
	*BaseError
	Field string
}

// NewConfigurationError creates a configuration error for field
func NewConfigurationError(field, message string) *ConfigurationError {
	err := &ConfigurationError{
		BaseError: New(ConfigurationErrorCode, message),
		Field:     field,
	}
	err.WithContext("field", field)
	return err
}
