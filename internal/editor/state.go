package editor

import "github.com/philipparndt/goshapes/pkg/geometry"

// None marks an unset index
const None = -1

// State is the transient selection, hover and drag state. Point hover and
// edge hover are mutually exclusive.
type State struct {
	SelectedShape int

	HoverShape int
	HoverPoint int
	HoverEdge  int

	Dragging  bool
	DragShape int
	DragPoint int
	// DragStart is the dragged point's position when the drag began
	DragStart geometry.Vector3
}

func newState() State {
	return State{
		SelectedShape: None,
		HoverShape:    None,
		HoverPoint:    None,
		HoverEdge:     None,
		DragShape:     None,
		DragPoint:     None,
	}
}

// HoveringPoint reports whether the cursor is over a point
func (s State) HoveringPoint() bool {
	return s.HoverPoint != None
}

// HoveringEdge reports whether the cursor is over an edge
func (s State) HoveringEdge() bool {
	return s.HoverEdge != None
}

func (s *State) clearHover() {
	s.HoverShape = None
	s.HoverPoint = None
	s.HoverEdge = None
}

func (s *State) clearDrag() {
	s.Dragging = false
	s.DragShape = None
	s.DragPoint = None
	s.DragStart = geometry.Vector3{}
}
