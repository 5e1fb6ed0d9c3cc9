package graph

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/toyz/acgraph/internal/errors"
)

// RenderOptions configures image rendering
type RenderOptions struct {
	// Width and Height of the image.
	// Default: 8in x 8in
	Width  vg.Length
	Height vg.Length

	// Title drawn above the graph. Empty means no title.
	Title string

	// NodeRadius is the radius of each node glyph.
	// Default: 12pt
	NodeRadius vg.Length

	// ArrowSize is the length of an edge arrow head.
	// Default: 8pt
	ArrowSize vg.Length

	NodeColor color.Color
	EdgeColor color.Color
}

// DefaultRenderOptions returns the options used by BuildAndRender
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:      8 * vg.Inch,
		Height:     8 * vg.Inch,
		NodeRadius: vg.Points(12),
		ArrowSize:  vg.Points(8),
		NodeColor:  color.RGBA{R: 0x1f, G: 0x78, B: 0xb4, A: 0xff},
		EdgeColor:  color.Black,
	}
}

// supportedFormats lists the extensions gonum/plot can encode
var supportedFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// Renderer draws a Directed graph with gonum/plot
type Renderer struct {
	options RenderOptions
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{options: opts}
}

// Render lays out d on a circle and writes the image to path.
// The image is encoded in memory before the file is written.
func (r *Renderer) Render(d *Directed, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supportedFormats[format] {
		return errors.NewRenderWriteError(path, errors.Newf(errors.RenderWriteErrorCode, "unsupported image format %q", format))
	}

	p, err := r.plot(d)
	if err != nil {
		return errors.NewRenderWriteError(path, err)
	}

	writer, err := p.WriterTo(r.options.Width, r.options.Height, format)
	if err != nil {
		return errors.NewRenderWriteError(path, err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return errors.NewRenderWriteError(path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.NewRenderWriteError(path, err)
	}
	return nil
}

// plot assembles the plot for d
func (r *Renderer) plot(d *Directed) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.options.Title
	p.HideAxes()
	p.X.Min, p.X.Max = -1.25, 1.25
	p.Y.Min, p.Y.Max = -1.25, 1.25

	names := d.Nodes()
	if len(names) == 0 {
		return p, nil
	}

	positions := CircularLayout(len(names))
	index := make(map[string]int, len(names))
	xys := make(plotter.XYs, len(names))
	for i, name := range names {
		index[name] = i
		xys[i] = plotter.XY{X: positions[i].X, Y: positions[i].Y}
	}

	edges := &edgePlotter{
		style:     draw.LineStyle{Color: r.options.EdgeColor, Width: vg.Points(1)},
		arrowSize: r.options.ArrowSize,
		gap:       r.options.NodeRadius,
	}
	for _, e := range d.Edges() {
		edges.segments = append(edges.segments, [2]Point{positions[index[e.From]], positions[index[e.To]]})
	}
	p.Add(edges)

	nodes, labels, err := r.nodePlotters(xys, names)
	if err != nil {
		return nil, err
	}
	p.Add(nodes, labels)

	return p, nil
}

// nodePlotters builds the node glyphs and their centered labels
func (r *Renderer) nodePlotters(xys plotter.XYs, names []string) (*plotter.Scatter, *plotter.Labels, error) {
	nodes, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, nil, fmt.Errorf("node glyphs: %w", err)
	}
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	nodes.GlyphStyle.Radius = r.options.NodeRadius
	nodes.GlyphStyle.Color = r.options.NodeColor

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return nil, nil, fmt.Errorf("node labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return nodes, labels, nil
}

// edgePlotter draws directed edges with arrow heads that stop at the target
// node's border. Self loops are drawn as a small circle beside the node.
type edgePlotter struct {
	segments  [][2]Point
	style     draw.LineStyle
	arrowSize vg.Length
	gap       vg.Length
}

// Plot implements plot.Plotter
func (e *edgePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, s := range e.segments {
		from := vg.Point{X: trX(s[0].X), Y: trY(s[0].Y)}
		to := vg.Point{X: trX(s[1].X), Y: trY(s[1].Y)}

		if from == to {
			e.plotLoop(c, from)
			continue
		}

		dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
		length := math.Hypot(dx, dy)
		if length <= float64(2*e.gap) {
			continue
		}
		ux, uy := dx/length, dy/length

		tip := vg.Point{X: to.X - vg.Length(ux)*e.gap, Y: to.Y - vg.Length(uy)*e.gap}
		start := vg.Point{X: from.X + vg.Length(ux)*e.gap, Y: from.Y + vg.Length(uy)*e.gap}
		c.StrokeLine2(e.style, start.X, start.Y, tip.X, tip.Y)

		back := vg.Point{X: tip.X - vg.Length(ux)*e.arrowSize, Y: tip.Y - vg.Length(uy)*e.arrowSize}
		half := e.arrowSize / 2
		left := vg.Point{X: back.X - vg.Length(uy)*half, Y: back.Y + vg.Length(ux)*half}
		right := vg.Point{X: back.X + vg.Length(uy)*half, Y: back.Y - vg.Length(ux)*half}
		c.FillPolygon(e.style.Color, []vg.Point{tip, left, right})
	}
}

func (e *edgePlotter) plotLoop(c draw.Canvas, at vg.Point) {
	center := vg.Point{X: at.X + e.gap, Y: at.Y + e.gap}
	var path vg.Path
	path.Move(vg.Point{X: center.X + e.gap, Y: center.Y})
	path.Arc(center, e.gap, 0, 2*math.Pi)
	c.SetLineStyle(e.style)
	c.Stroke(path)
}
