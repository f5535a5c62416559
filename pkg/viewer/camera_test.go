package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/goshapes/pkg/geometry"
)

func TestProjectUnprojectRoundTrip(t *testing.T) {
	c := NewCamera(geometry.NewVector3(-5, 0, 0), geometry.NewVector3(5, 0, 10), 400, 300)

	p := geometry.NewVector3(2.5, 0, 7)
	x, y := c.Project(p, 400, 300)
	got := c.Unproject(x, y, 400, 300)

	if got.Distance(p) > 1e-9 {
		t.Errorf("Unproject(Project(%v)) = %v", p, got)
	}
}

func TestFitKeepsBoundsVisible(t *testing.T) {
	min := geometry.NewVector3(0, 0, 0)
	max := geometry.NewVector3(100, 0, 10)
	c := NewCamera(min, max, 400, 400)

	for _, p := range []geometry.Vector3{min, max} {
		x, y := c.Project(p, 400, 400)
		if x < 0 || x > 400 || y < 0 || y > 400 {
			t.Errorf("point %v projected outside the view: (%v, %v)", p, x, y)
		}
	}

	x, y := c.Project(geometry.NewVector3(50, 0, 5), 400, 400)
	if math.Abs(x-200) > 1e-9 || math.Abs(y-200) > 1e-9 {
		t.Errorf("center projected to (%v, %v), want (200, 200)", x, y)
	}
}

func TestZoomClamps(t *testing.T) {
	c := &Camera{Scale: 1}
	c.Zoom(-0.999)
	c.Zoom(-0.999)
	if c.Scale < 0.01 {
		t.Errorf("Scale = %v, want >= 0.01", c.Scale)
	}
}
