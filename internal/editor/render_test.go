package editor

import (
	"testing"

	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMarksHoveredPoint(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4), square(10, 0, 4)), nil)
	feed(ed, move(4, 4))

	frame := ed.Frame()
	require.Len(t, frame.Shapes, 2)
	assert.False(t, frame.Shapes[0].Selected)
	assert.True(t, frame.Shapes[1].Selected)
	assert.Equal(t, PointHovered, frame.Shapes[0].Points[2].State)

	p, ok := frame.Hovered()
	require.True(t, ok)
	assert.Equal(t, pt(4, 4), p.Position)
	for _, e := range frame.Shapes[0].Edges {
		assert.False(t, e.Hovered)
	}
}

func TestFrameMarksHoveredEdge(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), nil)
	feed(ed, move(4.1, 2))

	frame := ed.Frame()
	edges := frame.Shapes[0].Edges
	require.Len(t, edges, 4)
	assert.True(t, edges[1].Hovered)
	assert.Equal(t, pt(4, 0), edges[1].From)
	assert.Equal(t, pt(4, 4), edges[1].To)

	_, ok := frame.Hovered()
	assert.False(t, ok)
}

func TestFrameMarksDraggedPoint(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), nil)
	feed(ed, move(0, 0), down(0, 0), dragTo(1, 1))

	frame := ed.Frame()
	assert.Equal(t, PointDragged, frame.Shapes[0].Points[0].State)
	assert.Equal(t, pt(1, 1), frame.Shapes[0].Points[0].Position)
	for _, e := range frame.Shapes[0].Edges {
		assert.False(t, e.Hovered, "edges are not highlighted during a drag")
	}
}

func TestFrameSinglePointSelfEdge(t *testing.T) {
	ed := newEditor(shape.NewCollection(shape.New(pt(2, 3))), nil)

	frame := ed.Frame()
	require.Len(t, frame.Shapes[0].Edges, 1)
	e := frame.Shapes[0].Edges[0]
	assert.Equal(t, e.From, e.To)
}

func TestFrameCarriesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.HandleRadius = 1.5
	opts.PlaneHeight = -2
	ed := New(nil, Services{}, opts)

	frame := ed.Frame()
	assert.Equal(t, 1.5, frame.HandleRadius)
	assert.Equal(t, -2.0, frame.PlaneHeight)
	assert.Empty(t, frame.Shapes)
}
