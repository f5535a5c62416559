package editor

import (
	"fmt"

	"github.com/philipparndt/goshapes/pkg/geometry"
)

// EventKind is the kind of pointer event
type EventKind int

const (
	PointerMove EventKind = iota
	PointerDown
	PointerUp
	PointerDrag
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerDrag:
		return "drag"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Button identifies a pointer button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Modifiers is a set of held modifier keys
type Modifiers uint8

const (
	// ModAlternate is the shape/delete modifier (shift in the viewer)
	ModAlternate Modifiers = 1 << iota
	ModControl
)

// ModNone means no modifier is held
const ModNone Modifiers = 0

// Event is a pointer event in screen coordinates
type Event struct {
	Kind      EventKind
	Button    Button
	Modifiers Modifiers
	Screen    geometry.Vector2
}

// HandleEvent projects the event onto the drawing plane and applies it.
// Events whose ray does not hit the plane are dropped.
func (e *Editor) HandleEvent(ev Event) {
	ray := e.svc.Viewport.ScreenToWorldRay(ev.Screen)
	position, ok := geometry.ProjectToPlane(ray, e.opts.PlaneHeight)
	if !ok {
		e.logger.Debug("event dropped, ray misses the drawing plane", "kind", ev.Kind)
		return
	}
	e.HandleWorldEvent(ev, position)
}

// HandleWorldEvent applies an event at an already projected position.
//
// Order matters: a press on an empty collection creates a shape before shape
// selection runs, and hover is not recomputed while a point is dragged so the
// highlight does not jump to whatever passes under the cursor.
func (e *Editor) HandleWorldEvent(ev Event, position geometry.Vector3) {
	primary := ev.Button == ButtonPrimary

	if ev.Kind == PointerDown && primary {
		// A release that never arrived still ends the previous gesture
		e.finishDrag()
		// A press may arrive without a preceding move at the same position
		e.UpdateHover(position)
	}

	switch {
	case ev.Kind == PointerDown && primary && ev.Modifiers == ModAlternate:
		e.handleAlternateDown(position)
	case ev.Kind == PointerDown && primary && ev.Modifiers == ModNone:
		e.handleDown(position)
	case ev.Kind == PointerUp && primary:
		e.EndDrag(position)
	case ev.Kind == PointerDrag && primary:
		e.UpdateDrag(position)
	}

	if !e.state.Dragging {
		e.UpdateHover(position)
	}
}

func (e *Editor) handleAlternateDown(position geometry.Vector3) {
	if e.opts.PointDeletion && e.state.HoveringPoint() {
		e.DeletePoint(e.state.HoverShape, e.state.HoverPoint)
		return
	}

	e.CreateShape()
	e.InsertPoint(position)
}

func (e *Editor) handleDown(position geometry.Vector3) {
	if e.shapes.Len() == 0 {
		e.CreateShape()
	}

	e.SelectShapeUnderCursor()
	if _, ok := e.SelectedShape(); !ok {
		e.CreateShape()
	}

	if e.state.HoveringPoint() && e.state.HoverShape == e.state.SelectedShape {
		e.BeginDrag(e.state.HoverPoint)
		return
	}
	e.InsertPoint(position)
}
