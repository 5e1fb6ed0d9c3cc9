// Package graph builds the directed class relationship graph and renders it
// as an image.
package graph

import (
	"fmt"
	"strings"
)

// Relations holds the resolved types related to one class
type Relations struct {
	Incoming []string // types with an edge into the class
	Outgoing []string // types the class has an edge to
}

// RelationshipGraph maps class names to their relations.
//
// Set replaces any earlier entry for the same class: the last write wins and
// lists are never merged. Classes keeps first-seen order so rendering is
// deterministic for a given traversal order.
type RelationshipGraph struct {
	order   []string
	entries map[string]Relations
}

// NewRelationshipGraph creates an empty relationship graph
func NewRelationshipGraph() *RelationshipGraph {
	return &RelationshipGraph{
		order:   make([]string, 0),
		entries: make(map[string]Relations),
	}
}

// Set stores rel for class and reports whether an earlier entry was replaced
func (g *RelationshipGraph) Set(class string, rel Relations) bool {
	_, replaced := g.entries[class]
	if !replaced {
		g.order = append(g.order, class)
	}
	g.entries[class] = rel
	return replaced
}

// Get returns the relations stored for class
func (g *RelationshipGraph) Get(class string) (Relations, bool) {
	rel, ok := g.entries[class]
	return rel, ok
}

// Classes returns the class names in first-seen order
func (g *RelationshipGraph) Classes() []string {
	classes := make([]string, len(g.order))
	copy(classes, g.order)
	return classes
}

// Len returns the number of classes
func (g *RelationshipGraph) Len() int {
	return len(g.order)
}

// String renders the mapping one class per line
func (g *RelationshipGraph) String() string {
	var b strings.Builder
	for _, class := range g.order {
		rel := g.entries[class]
		fmt.Fprintf(&b, "%s: in=[%s] out=[%s]\n", class,
			strings.Join(rel.Incoming, ", "), strings.Join(rel.Outgoing, ", "))
	}
	return b.String()
}
