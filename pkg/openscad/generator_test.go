package openscad

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, 0, z)
}

func TestWriteFlatPolygons(t *testing.T) {
	tri := shape.New(pt(0, 0), pt(4, 0), pt(0, 2.5))
	tri.ID = "tri"
	single := shape.New(pt(1, 1))
	single.ID = "dot"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, shape.NewCollection(tri, single), Options{}))
	out := buf.String()

	assert.Contains(t, out, "polygon(points = [[0, 0], [4, 0], [0, -2.5]]);")
	assert.Contains(t, out, "// shape 2 (dot) skipped: 1 points")
	assert.NotContains(t, out, "linear_extrude")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWriteExtruded(t *testing.T) {
	sq := shape.New(pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, shape.NewCollection(sq), Options{Extrude: 2, PlaneHeight: 0.5}))
	out := buf.String()

	assert.Contains(t, out, "translate([0, 0, 0.5]) {")
	assert.Contains(t, out, "linear_extrude(height = 2)\n    polygon(")
}
