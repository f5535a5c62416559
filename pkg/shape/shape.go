// Package shape holds the authored content: closed polygons on the ground
// plane and the document they are persisted in.
package shape

import (
	"github.com/google/uuid"
	"github.com/philipparndt/goshapes/pkg/geometry"
)

// Shape is a closed polygon. Edge i joins point i and point (i+1) mod N, so a
// shape with a single point has one degenerate edge onto itself.
type Shape struct {
	ID     string
	Points []geometry.Vector3
}

// New creates an empty shape with a fresh identifier
func New(points ...geometry.Vector3) *Shape {
	s := &Shape{
		ID:     uuid.NewString(),
		Points: make([]geometry.Vector3, 0, len(points)),
	}
	s.Points = append(s.Points, points...)
	return s
}

// Len returns the number of points (and edges)
func (s *Shape) Len() int {
	return len(s.Points)
}

// Edge returns the endpoints of edge i
func (s *Shape) Edge(i int) (geometry.Vector3, geometry.Vector3) {
	n := len(s.Points)
	return s.Points[i], s.Points[(i+1)%n]
}

// InsertPoint inserts p so that it ends up at index i. Indices past the end
// append.
func (s *Shape) InsertPoint(i int, p geometry.Vector3) int {
	if i < 0 {
		i = 0
	}
	if i >= len(s.Points) {
		s.Points = append(s.Points, p)
		return len(s.Points) - 1
	}

	s.Points = append(s.Points, geometry.Vector3{})
	copy(s.Points[i+1:], s.Points[i:])
	s.Points[i] = p
	return i
}

// RemovePoint deletes point i and reports whether it existed
func (s *Shape) RemovePoint(i int) bool {
	if i < 0 || i >= len(s.Points) {
		return false
	}
	s.Points = append(s.Points[:i], s.Points[i+1:]...)
	return true
}

// SetPoint overwrites point i and reports whether it existed
func (s *Shape) SetPoint(i int, p geometry.Vector3) bool {
	if i < 0 || i >= len(s.Points) {
		return false
	}
	s.Points[i] = p
	return true
}

// Point returns point i
func (s *Shape) Point(i int) (geometry.Vector3, bool) {
	if i < 0 || i >= len(s.Points) {
		return geometry.Vector3{}, false
	}
	return s.Points[i], true
}

// Clone returns a deep copy that keeps the identifier
func (s *Shape) Clone() *Shape {
	c := &Shape{ID: s.ID, Points: make([]geometry.Vector3, len(s.Points))}
	copy(c.Points, s.Points)
	return c
}

// Area returns the unsigned polygon area in the ground plane
func (s *Shape) Area() float64 {
	a := geometry.SignedAreaXZ(s.Points)
	if a < 0 {
		return -a
	}
	return a
}

// Perimeter returns the outline length including the closing edge
func (s *Shape) Perimeter() float64 {
	return geometry.PerimeterXZ(s.Points)
}
