package editor

import (
	"testing"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/stretchr/testify/assert"
)

func pt(x, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, 0, z)
}

func square(x, z, size float64) *shape.Shape {
	return shape.New(pt(x, z), pt(x+size, z), pt(x+size, z+size), pt(x, z+size))
}

func TestFindPointUnderCursorFirstMatchWins(t *testing.T) {
	shapes := shape.NewCollection(
		shape.New(pt(0.4, 0)),
		shape.New(pt(0.05, 0)),
	)

	hit, ok := FindPointUnderCursor(shapes, pt(0, 0), 0.5)
	assert.True(t, ok)
	assert.Equal(t, PointHit{Shape: 0, Point: 0}, hit, "earlier shape wins over the nearer point")
}

func TestFindPointUnderCursorStrictRadius(t *testing.T) {
	shapes := shape.NewCollection(shape.New(pt(0.5, 0)))

	_, ok := FindPointUnderCursor(shapes, pt(0, 0), 0.5)
	assert.False(t, ok)
}

func TestFindEdgeUnderCursorNearestWins(t *testing.T) {
	shapes := shape.NewCollection(
		shape.New(pt(-5, 0.3), pt(5, 0.3)),
		shape.New(pt(-5, -0.1), pt(5, -0.1)),
	)

	hit, ok := FindEdgeUnderCursor(shapes, pt(0, 0), 0.5, false)
	assert.True(t, ok)
	assert.Equal(t, 1, hit.Shape)
	assert.Equal(t, 0, hit.Edge)
	assert.InDelta(t, 0.1, hit.Distance, 1e-12)
}

func TestFindEdgeUnderCursorTieKeepsFirst(t *testing.T) {
	// A two-point shape has the same segment twice (0->1 and 1->0)
	shapes := shape.NewCollection(shape.New(pt(-5, 0.2), pt(5, 0.2)))

	hit, ok := FindEdgeUnderCursor(shapes, pt(0, 0), 0.5, false)
	assert.True(t, ok)
	assert.Equal(t, 0, hit.Edge)
}

func TestFindEdgeUnderCursorNothingInRange(t *testing.T) {
	_, ok := FindEdgeUnderCursor(shape.NewCollection(square(0, 0, 4)), pt(2, 2), 0.5, false)
	assert.False(t, ok)

	_, ok = FindEdgeUnderCursor(shape.NewCollection(), pt(0, 0), 0.5, false)
	assert.False(t, ok)
}

func TestSingleVertexSelfEdge(t *testing.T) {
	// Off-plane point: too far in 3D for a point hit, close in the plane
	shapes := shape.NewCollection(shape.New(geometry.NewVector3(0, 5, 0)))

	h := HitTest(shapes, pt(0.1, 0), 0.5, false)
	assert.Equal(t, Hover{Shape: 0, Point: None, Edge: 0}, h)

	h = HitTest(shapes, pt(0.1, 0), 0.5, true)
	assert.Equal(t, NoHover, h)
}

func TestHitTestPointSuppressesEdgeScan(t *testing.T) {
	calls := 0
	original := findEdge
	findEdge = func(s *shape.Collection, p geometry.Vector3, r float64, skip bool) (EdgeHit, bool) {
		calls++
		return original(s, p, r, skip)
	}
	t.Cleanup(func() { findEdge = original })

	shapes := shape.NewCollection(square(0, 0, 4))

	// Within tolerance of point 0 and of edges 0 and 3
	h := HitTest(shapes, pt(0.1, 0.1), 0.5, false)
	assert.Equal(t, Hover{Shape: 0, Point: 0, Edge: None}, h)
	assert.Equal(t, 0, calls)

	h = HitTest(shapes, pt(2, 0.1), 0.5, false)
	assert.Equal(t, Hover{Shape: 0, Point: None, Edge: 0}, h)
	assert.Equal(t, 1, calls)
}

func TestHitTestEmptyShapesAreInvisible(t *testing.T) {
	shapes := shape.NewCollection(shape.New(), shape.New())
	assert.Equal(t, NoHover, HitTest(shapes, pt(0, 0), 0.5, false))
}
