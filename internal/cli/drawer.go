package cli

import (
	"time"

	"github.com/toyz/acgraph/internal/annotations"
	"github.com/toyz/acgraph/internal/errors"
	"github.com/toyz/acgraph/internal/graph"
	"github.com/toyz/acgraph/internal/utils"
)

// Drawer coordinates scanning, extraction and rendering
type Drawer struct {
	scanner     *DirectoryScanner
	extractor   *annotations.Extractor
	diagnostics *utils.DiagnosticSystem
	summary     DrawSummary
}

// NewDrawer creates a drawer that reports through diagnostics
func NewDrawer(diagnostics *utils.DiagnosticSystem) *Drawer {
	return NewDrawerWithExtractor(diagnostics, annotations.NewExtractor())
}

// NewDrawerWithExtractor creates a drawer with a custom annotation extractor
func NewDrawerWithExtractor(diagnostics *utils.DiagnosticSystem, extractor *annotations.Extractor) *Drawer {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Drawer{
		scanner:     NewDirectoryScanner(),
		extractor:   extractor,
		diagnostics: diagnostics,
	}
}

// Summary returns information about the last run
func (d *Drawer) Summary() DrawSummary {
	return d.summary
}

// Collect folds files into a fresh relationship graph. Each file is decoded
// with enc and its annotation resolved; files without an annotated class
// leave the graph unchanged. A later file annotating the same class replaces
// the earlier entry. The first error aborts the fold.
func (d *Drawer) Collect(files []string, enc utils.Encoding) (*graph.RelationshipGraph, error) {
	reader := utils.NewFileReader(enc)
	rg := graph.NewRelationshipGraph()

	for _, file := range files {
		text, err := reader.Read(file)
		if err != nil {
			return nil, err
		}

		result, err := d.extractor.Resolve(text)
		if err != nil {
			if malformed, ok := err.(*errors.MalformedAnnotationError); ok {
				return nil, malformed.WithFile(file)
			}
			return nil, err
		}
		if result.ClassName == "" {
			d.diagnostics.Debug("No annotated class in %s", file)
			continue
		}

		d.summary.AnnotatedFiles++
		if replaced := rg.Set(result.ClassName, graph.Relations{
			Incoming: result.Incoming,
			Outgoing: result.Outgoing,
		}); replaced {
			d.diagnostics.Warn("Class %s annotated again in %s, keeping the latest", result.ClassName, file)
		}
		d.diagnostics.Verbose("%s: %d incoming, %d outgoing", result.ClassName, len(result.Incoming), len(result.Outgoing))
	}

	return rg, nil
}

// Run scans cfg.Root, collects the relationship graph and renders it to
// cfg.Output
func (d *Drawer) Run(cfg Config) error {
	start := time.Now()
	d.summary = DrawSummary{Output: cfg.Output}

	if err := cfg.Validate(); err != nil {
		return err
	}

	d.diagnostics.Header("drawing access control graph")
	d.diagnostics.Info("Scanning %s for *%s files", cfg.Root, cfg.Extension)

	files, err := d.scanner.ScanFiles(cfg.Root, cfg.Extension, cfg.Exclude...)
	if err != nil {
		return err
	}
	d.summary.FilesScanned = len(files)
	d.diagnostics.Verbose("Found %d files", len(files))

	rg, err := d.Collect(files, cfg.Encoding)
	if err != nil {
		return err
	}
	d.summary.Classes = rg.Len()

	if cfg.Verbose {
		d.printRelationships(rg)
	}

	g, err := graph.BuildAndRenderWith(graph.NewRenderer(d.renderOptions(cfg)), rg, cfg.Output)
	d.summary.Nodes = len(g.Nodes())
	d.summary.Edges = len(g.Edges())
	if err != nil {
		return err
	}

	d.summary.Duration = time.Since(start)
	d.ReportSuccess()
	return nil
}

func (d *Drawer) renderOptions(cfg Config) graph.RenderOptions {
	opts := graph.DefaultRenderOptions()
	opts.Title = cfg.Title
	return opts
}

// printRelationships writes the relationship map one class per line
func (d *Drawer) printRelationships(rg *graph.RelationshipGraph) {
	d.diagnostics.Section("Relationships")
	d.diagnostics.Indent()
	for _, class := range rg.Classes() {
		rel, _ := rg.Get(class)
		d.diagnostics.List("%s: in=%v out=%v", class, rel.Incoming, rel.Outgoing)
	}
	d.diagnostics.Unindent()
}

// ReportSuccess prints the output path as given and the run statistics
func (d *Drawer) ReportSuccess() {
	d.diagnostics.Success("File generated at %s", d.summary.Output)
	if d.diagnostics.Level() >= utils.DiagnosticVerbose {
		d.diagnostics.Summary("Summary", map[string]interface{}{
			"files scanned":   d.summary.FilesScanned,
			"annotated files": d.summary.AnnotatedFiles,
			"classes":         d.summary.Classes,
			"nodes":           d.summary.Nodes,
			"edges":           d.summary.Edges,
			"duration":        d.summary.Duration.Round(time.Millisecond),
		})
	}
	d.diagnostics.Println("Have a nice day! :)")
}

// DrawSummary contains information about a drawing run
type DrawSummary struct {
	FilesScanned   int
	AnnotatedFiles int
	Classes        int
	Nodes          int
	Edges          int
	Output         string
	Duration       time.Duration
}
