package viewer

import (
	"math"

	"github.com/philipparndt/goshapes/pkg/geometry"
)

// Camera is an orthographic camera looking straight down onto the drawing
// plane. Screen X follows world X and screen Y follows world Z.
type Camera struct {
	Center      geometry.Vector3 // World point shown in the middle of the view
	Scale       float64          // Pixels per world unit
	PlaneHeight float64
}

// NewCamera creates a camera showing the given XZ bounds in a view of the
// given size with some margin.
func NewCamera(min, max geometry.Vector3, width, height float64) *Camera {
	c := &Camera{Scale: 20}
	c.Fit(min, max, width, height)
	return c
}

// Fit centers the bounds and picks the largest scale showing them entirely
func (c *Camera) Fit(min, max geometry.Vector3, width, height float64) {
	c.Center = geometry.NewVector3((min.X+max.X)/2, c.PlaneHeight, (min.Z+max.Z)/2)

	spanX := math.Max(max.X-min.X, 1)
	spanZ := math.Max(max.Z-min.Z, 1)
	if width <= 0 || height <= 0 {
		return
	}
	// 20% margin around the shapes
	c.Scale = math.Min(width/(spanX*1.2), height/(spanZ*1.2))
}

// Zoom changes the scale, keeping the center fixed
func (c *Camera) Zoom(delta float64) {
	c.Scale *= 1.0 + delta
	if c.Scale < 0.01 {
		c.Scale = 0.01
	}
}

// Project projects a world point to screen coordinates
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64) {
	x := (point.X-c.Center.X)*c.Scale + width/2
	y := (point.Z-c.Center.Z)*c.Scale + height/2
	return x, y
}

// Unproject converts screen coordinates back to a point on the drawing plane
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Vector3 {
	return geometry.NewVector3(
		c.Center.X+(screenX-width/2)/c.Scale,
		c.PlaneHeight,
		c.Center.Z+(screenY-height/2)/c.Scale,
	)
}
