package editor

import (
	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/shape"
)

// PointHit identifies a point of a shape
type PointHit struct {
	Shape int
	Point int
}

// EdgeHit identifies an edge of a shape and the cursor distance to it
type EdgeHit struct {
	Shape    int
	Edge     int
	Distance float64
}

// Hover is the combined hit-test result. Point and Edge are never both set.
type Hover struct {
	Shape int
	Point int
	Edge  int
}

// NoHover is the result when the cursor is over nothing
var NoHover = Hover{Shape: None, Point: None, Edge: None}

// FindPointUnderCursor returns the first point, in collection then point
// order, lying closer than radius to position. Earlier shapes win over
// nearer points in later shapes.
func FindPointUnderCursor(shapes *shape.Collection, position geometry.Vector3, radius float64) (PointHit, bool) {
	for si, s := range shapes.Shapes() {
		for pi, p := range s.Points {
			if position.Distance(p) < radius {
				return PointHit{Shape: si, Point: pi}, true
			}
		}
	}
	return PointHit{Shape: None, Point: None}, false
}

// FindEdgeUnderCursor returns the edge nearest to position, measured in the
// ground plane, among all edges closer than radius. A candidate replaces the
// current best only when strictly closer, so ties go to the earlier edge.
// With skipDegenerate the self-edge of single-point shapes is ignored.
func FindEdgeUnderCursor(shapes *shape.Collection, position geometry.Vector3, radius float64, skipDegenerate bool) (EdgeHit, bool) {
	best := EdgeHit{Shape: None, Edge: None, Distance: radius}
	found := false

	for si, s := range shapes.Shapes() {
		n := s.Len()
		if n == 1 && skipDegenerate {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := s.Edge(i)
			d := geometry.PointToSegmentDistance2D(position, a, b)
			if d < best.Distance {
				best = EdgeHit{Shape: si, Edge: i, Distance: d}
				found = true
			}
		}
	}

	return best, found
}

// findEdge is swapped out by tests to observe when the edge scan runs
var findEdge = FindEdgeUnderCursor

// HitTest resolves what the cursor is over. The edge scan only runs when no
// point is within radius.
func HitTest(shapes *shape.Collection, position geometry.Vector3, radius float64, skipDegenerate bool) Hover {
	if p, ok := FindPointUnderCursor(shapes, position, radius); ok {
		return Hover{Shape: p.Shape, Point: p.Point, Edge: None}
	}
	if e, ok := findEdge(shapes, position, radius, skipDegenerate); ok {
		return Hover{Shape: e.Shape, Point: None, Edge: e.Edge}
	}
	return NoHover
}
