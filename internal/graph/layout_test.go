package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularLayout(t *testing.T) {
	assert.Empty(t, CircularLayout(0))
	assert.Equal(t, []Point{{0, 0}}, CircularLayout(1))

	points := CircularLayout(4)
	expected := []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, p := range points {
		assert.InDelta(t, expected[i].X, p.X, 1e-9)
		assert.InDelta(t, expected[i].Y, p.Y, 1e-9)
	}

	for _, p := range CircularLayout(7) {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-9)
	}
}
