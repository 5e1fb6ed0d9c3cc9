package graph

import "math"

// Point is a position in layout space
type Point struct {
	X, Y float64
}

// CircularLayout places n nodes evenly on the unit circle in index order,
// starting at angle zero. A single node sits at the origin.
func CircularLayout(n int) []Point {
	points := make([]Point, n)
	if n == 1 {
		return points
	}
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return points
}
