package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationshipGraph_LastWriteWins(t *testing.T) {
	rg := NewRelationshipGraph()

	replaced := rg.Set("A", Relations{Incoming: []string{"B"}, Outgoing: []string{"C"}})
	assert.False(t, replaced)
	rg.Set("D", Relations{})
	replaced = rg.Set("A", Relations{Incoming: []string{"E"}})
	assert.True(t, replaced)

	rel, ok := rg.Get("A")
	assert.True(t, ok)
	assert.Equal(t, []string{"E"}, rel.Incoming)
	assert.Empty(t, rel.Outgoing)

	assert.Equal(t, 2, rg.Len())
	assert.Equal(t, []string{"A", "D"}, rg.Classes())

	_, ok = rg.Get("missing")
	assert.False(t, ok)
}

func TestRelationshipGraph_ClassesIsCopy(t *testing.T) {
	rg := NewRelationshipGraph()
	rg.Set("A", Relations{})

	classes := rg.Classes()
	classes[0] = "mutated"
	assert.Equal(t, []string{"A"}, rg.Classes())
}

func TestRelationshipGraph_String(t *testing.T) {
	rg := NewRelationshipGraph()
	rg.Set("Post", Relations{Incoming: []string{"User", "Team"}, Outgoing: []string{"Comment"}})
	rg.Set("Tag", Relations{})

	assert.Equal(t, "Post: in=[User, Team] out=[Comment]\nTag: in=[] out=[]\n", rg.String())
}
