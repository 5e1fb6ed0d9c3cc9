package graph

// Graph is the minimal directed graph a renderer backend must provide
type Graph interface {
	// AddNode registers a node; adding an existing node is a no-op
	AddNode(name string)
	// AddEdge adds a directed edge, creating missing endpoints
	AddEdge(from, to string)
	// RenderCircularLayout draws the graph on a circle and writes it to path
	RenderCircularLayout(path string) error
}

// Build adds every class of rg as a node, then its edges: each incoming type
// points at the class and the class points at each outgoing type.
func Build(g Graph, rg *RelationshipGraph) {
	classes := rg.Classes()
	for _, class := range classes {
		g.AddNode(class)
	}

	for _, class := range classes {
		rel, _ := rg.Get(class)
		for _, from := range rel.Incoming {
			g.AddEdge(from, class)
		}
		for _, to := range rel.Outgoing {
			g.AddEdge(class, to)
		}
	}
}

// BuildAndRender builds a Directed graph from rg and writes it to outputPath.
// The image format follows the path's extension.
func BuildAndRender(rg *RelationshipGraph, outputPath string) error {
	_, err := BuildAndRenderWith(NewRenderer(DefaultRenderOptions()), rg, outputPath)
	return err
}

// BuildAndRenderWith is BuildAndRender with a custom renderer. The built
// graph is returned even when rendering fails.
func BuildAndRenderWith(r *Renderer, rg *RelationshipGraph, outputPath string) (*Directed, error) {
	g := NewDirectedWithRenderer(r)
	Build(g, rg)
	return g, g.RenderCircularLayout(outputPath)
}
