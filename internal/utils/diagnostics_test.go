package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticSystem_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     DiagnosticLevel
		wantInfo  bool
		wantVerb  bool
		wantError bool
	}{
		{"silent", DiagnosticSilent, false, false, false},
		{"error", DiagnosticError, false, false, true},
		{"info", DiagnosticInfo, true, false, true},
		{"verbose", DiagnosticVerbose, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			d := NewDiagnosticSystemWithWriters(tt.level, &out, &errOut)

			d.Info("scanning %s", "src")
			d.Verbose("found %d files", 3)
			d.Error("boom")

			assert.Equal(t, tt.wantInfo, bytes.Contains(out.Bytes(), []byte("[INFO] scanning src")))
			assert.Equal(t, tt.wantVerb, bytes.Contains(out.Bytes(), []byte("[VERBOSE] found 3 files")))
			assert.Equal(t, tt.wantError, bytes.Contains(errOut.Bytes(), []byte("[ERROR] boom")))
		})
	}
}

func TestDiagnosticSystem_Formatting(t *testing.T) {
	var out bytes.Buffer
	d := NewDiagnosticSystemWithWriters(DiagnosticInfo, &out, &out)

	d.Header("drawing access control graph")
	d.Section("Files")
	d.Indent()
	d.List("Post.php")
	d.Unindent()
	d.Unindent()
	d.Println("File generated at %s", "graph.png")
	d.Summary("Summary", map[string]interface{}{"nodes": 3, "edges": 2})

	expected := "acgraph: drawing access control graph\n" +
		"Files:\n" +
		"  - Post.php\n" +
		"File generated at graph.png\n" +
		"\nSummary\n" +
		"   edges: 2\n" +
		"   nodes: 3\n\n"
	assert.Equal(t, expected, out.String())
	assert.False(t, d.UseColors())
}
