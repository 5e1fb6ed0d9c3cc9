package graph

import (
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// Edge is a directed edge between two named nodes
type Edge struct {
	From string
	To   string
}

// Directed is a Graph backed by a gonum directed multigraph.
// Parallel edges and self loops are kept.
type Directed struct {
	g        *multi.DirectedGraph
	ids      map[string]int64
	names    []string
	edges    []Edge
	renderer *Renderer
}

// NewDirected creates an empty graph that renders with the default options
func NewDirected() *Directed {
	return NewDirectedWithRenderer(NewRenderer(DefaultRenderOptions()))
}

// NewDirectedWithRenderer creates an empty graph that renders with r
func NewDirectedWithRenderer(r *Renderer) *Directed {
	return &Directed{
		g:        multi.NewDirectedGraph(),
		ids:      make(map[string]int64),
		names:    make([]string, 0),
		edges:    make([]Edge, 0),
		renderer: r,
	}
}

// AddNode registers name as a node if it is not already present
func (d *Directed) AddNode(name string) {
	d.node(name)
}

// AddEdge adds an edge from -> to, creating either endpoint on demand
func (d *Directed) AddEdge(from, to string) {
	u, v := d.node(from), d.node(to)
	d.g.SetLine(d.g.NewLine(u, v))
	d.edges = append(d.edges, Edge{From: from, To: to})
}

// RenderCircularLayout renders the graph to path
func (d *Directed) RenderCircularLayout(path string) error {
	return d.renderer.Render(d, path)
}

// Nodes returns node names in insertion order
func (d *Directed) Nodes() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Edges returns edges in insertion order, duplicates included
func (d *Directed) Edges() []Edge {
	edges := make([]Edge, len(d.edges))
	copy(edges, d.edges)
	return edges
}

// HasNode reports whether name is a node
func (d *Directed) HasNode(name string) bool {
	_, ok := d.ids[name]
	return ok
}

// LineCount returns how many parallel edges run from -> to
func (d *Directed) LineCount(from, to string) int {
	u, ok := d.ids[from]
	if !ok {
		return 0
	}
	v, ok := d.ids[to]
	if !ok {
		return 0
	}
	return d.g.Lines(u, v).Len()
}

// OutDegree returns the number of distinct successors of name
func (d *Directed) OutDegree(name string) int {
	id, ok := d.ids[name]
	if !ok {
		return 0
	}
	return d.g.From(id).Len()
}

func (d *Directed) node(name string) gonum.Node {
	if id, ok := d.ids[name]; ok {
		return d.g.Node(id)
	}
	n := d.g.NewNode()
	d.g.AddNode(n)
	d.ids[name] = n.ID()
	d.names = append(d.names, name)
	return n
}
