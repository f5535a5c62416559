package editor

import "github.com/philipparndt/goshapes/pkg/geometry"

// PointState tells the renderer how to draw a point handle
type PointState int

const (
	PointIdle PointState = iota
	PointHovered
	PointDragged
)

// PointView is a point handle to draw
type PointView struct {
	Index    int
	Position geometry.Vector3
	State    PointState
}

// EdgeView is an outline segment to draw. For a single-point shape From and
// To coincide.
type EdgeView struct {
	Index    int
	From, To geometry.Vector3
	Hovered  bool
}

// ShapeView is one shape as the renderer should present it
type ShapeView struct {
	Index    int
	ID       string
	Selected bool
	Points   []PointView
	Edges    []EdgeView
}

// Frame describes everything that has to be visually distinguished in the
// next frame.
type Frame struct {
	HandleRadius float64
	PlaneHeight  float64
	Shapes       []ShapeView
}

// Frame builds the render description from the current collection and state
func (e *Editor) Frame() Frame {
	selected := e.SelectedIndex()
	st := e.state

	frame := Frame{
		HandleRadius: e.opts.HandleRadius,
		PlaneHeight:  e.opts.PlaneHeight,
		Shapes:       make([]ShapeView, 0, e.shapes.Len()),
	}

	for si, s := range e.shapes.Shapes() {
		view := ShapeView{
			Index:    si,
			ID:       s.ID,
			Selected: si == selected,
			Points:   make([]PointView, s.Len()),
			Edges:    make([]EdgeView, s.Len()),
		}

		for i := range s.Points {
			from, to := s.Edge(i)
			view.Edges[i] = EdgeView{
				Index:   i,
				From:    from,
				To:      to,
				Hovered: !st.Dragging && si == st.HoverShape && i == st.HoverEdge,
			}

			state := PointIdle
			switch {
			case st.Dragging && si == st.DragShape && i == st.DragPoint:
				state = PointDragged
			case !st.Dragging && si == st.HoverShape && i == st.HoverPoint:
				state = PointHovered
			}
			view.Points[i] = PointView{Index: i, Position: s.Points[i], State: state}
		}

		frame.Shapes = append(frame.Shapes, view)
	}

	return frame
}

// Hovered returns the hovered point of the frame, if any
func (f Frame) Hovered() (PointView, bool) {
	for _, s := range f.Shapes {
		for _, p := range s.Points {
			if p.State == PointHovered {
				return p, true
			}
		}
	}
	return PointView{}, false
}
