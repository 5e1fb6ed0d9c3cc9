package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/toyz/acgraph/internal/errors"
)

func TestDiagnosticReporter_ReportError(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		verbose  bool
		err      error
		contains []string
		excludes []string
	}{
		{
			name: "malformed annotation",
			err: errors.NewMalformedAnnotationError("@AccessControl", '(', ')', 1).
				WithFile("src/Post.php"),
			contains: []string{
				"ERROR: Malformed Annotation",
				"Location: src/Post.php",
				"Suggestions:",
				"1. Close every '(' in the @AccessControl argument list",
			},
			excludes: []string{"Context:"},
		},
		{
			name:    "file read error in verbose mode",
			verbose: true,
			err:     fmt.Errorf("collect: %w", errors.NewFileReadError("Legacy.php", "utf8", os.ErrPermission)),
			contains: []string{
				"ERROR: File Read Error",
				"Message: collect: failed to read 'Legacy.php' as utf8",
				"Context:",
				"   Encoding: utf8",
				"   Path: Legacy.php",
				"Error Chain:",
				"permission denied",
			},
		},
		{
			name: "render write error",
			err:  errors.NewRenderWriteError("out/graph.bmp", stderrors.New("unsupported format")),
			contains: []string{
				"ERROR: Render Write Error",
				"2. Use a supported extension",
			},
		},
		{
			name: "configuration error",
			err:  errors.NewConfigurationError("output", "output is required"),
			contains: []string{
				"ERROR: Configuration Error",
				"Message: output is required",
			},
		},
		{
			name: "plain error",
			err:  stderrors.New("boom"),
			contains: []string{
				"ERROR: Unexpected Error",
				"Message: boom",
			},
			excludes: []string{"Suggestions:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewDiagnosticReporterWithWriter(tt.verbose, &out).ReportError(tt.err)

			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out.String(), unwanted)
			}
		})
	}
}

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	NewDiagnosticReporterWithWriter(false, &out).ReportWarning("no annotated classes found")
	assert.Equal(t, "! no annotated classes found\n", out.String())
}

func TestFormatContextKey(t *testing.T) {
	assert.Equal(t, "Config Type", formatContextKey("config_type"))
	assert.Equal(t, "Path", formatContextKey("path"))
}
