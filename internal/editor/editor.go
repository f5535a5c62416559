// Package editor is the shape editing engine: it turns pointer events into
// point insertion, dragging and deletion, shape creation and selection, and
// describes what the renderer has to highlight.
//
// The editor is not safe for concurrent use. All calls are expected to come
// from the single thread driving the event loop.
package editor

import (
	"log/slog"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/shape"
)

// Editor owns the selection and hover state for a shape collection
type Editor struct {
	opts   Options
	svc    Services
	logger *slog.Logger
	shapes *shape.Collection

	state  State
	cursor geometry.Vector3

	// repaint is raised by any visible change, rebuild only by changes to
	// points or shapes. Flush consumes both.
	repaint bool
	rebuild bool

	active      bool
	unsubscribe func()
}

// New creates an editor for shapes. A nil collection starts empty.
func New(shapes *shape.Collection, svc Services, opts Options) *Editor {
	if shapes == nil {
		shapes = shape.NewCollection()
	}
	if svc.Viewport == nil {
		svc.Viewport = TopDownViewport{}
	}
	if opts.HandleRadius <= 0 {
		opts.HandleRadius = DefaultHandleRadius
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Editor{
		opts:   opts,
		svc:    svc,
		logger: logger.With("component", "editor"),
		shapes: shapes,
		state:  newState(),
	}
	e.state.SelectedShape = shapes.Len() - 1
	return e
}

// Enter activates the editor: the host hides its own handles, undo
// notifications are subscribed and selection restarts at the last shape.
func (e *Editor) Enter() {
	if e.active {
		return
	}
	e.active = true

	if e.svc.Host != nil {
		e.svc.Host.OnEnter()
	}
	if n, ok := e.svc.Undo.(UndoNotifier); ok {
		e.unsubscribe = n.Subscribe(e.OnUndoRedo)
	}

	e.state = newState()
	e.state.SelectedShape = e.shapes.Len() - 1
	e.markGeometry()
	e.logger.Debug("editor entered", "shapes", e.shapes.Len())
}

// Exit deactivates the editor and drops all transient state
func (e *Editor) Exit() {
	if !e.active {
		return
	}
	e.active = false

	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	if e.svc.Host != nil {
		e.svc.Host.OnExit()
	}

	e.state = newState()
	e.repaint = true
	e.logger.Debug("editor exited")
}

// Active reports whether Enter was called without a matching Exit
func (e *Editor) Active() bool {
	return e.active
}

// Shapes returns the edited collection
func (e *Editor) Shapes() *shape.Collection {
	return e.shapes
}

// Options returns the effective options
func (e *Editor) Options() Options {
	return e.opts
}

// State returns a copy of the selection, hover and drag state
func (e *Editor) State() State {
	e.SelectedIndex()
	return e.state
}

// Cursor returns the last projected cursor position
func (e *Editor) Cursor() geometry.Vector3 {
	return e.cursor
}

// SelectedIndex returns the selected shape index, clamped into the current
// collection, or None.
func (e *Editor) SelectedIndex() int {
	n := e.shapes.Len()
	if e.state.SelectedShape >= n {
		e.state.SelectedShape = n - 1
	}
	if e.state.SelectedShape < None {
		e.state.SelectedShape = None
	}
	return e.state.SelectedShape
}

// SelectedShape returns the selected shape, or false when nothing valid is
// selected.
func (e *Editor) SelectedShape() (*shape.Shape, bool) {
	return e.shapes.At(e.SelectedIndex())
}

// CreateShape appends an empty shape and selects it. In single-shape mode an
// existing shape is selected instead.
func (e *Editor) CreateShape() int {
	if !e.opts.MultiShape && e.shapes.Len() > 0 {
		e.setSelected(0)
		return 0
	}

	e.checkpoint(LabelCreateShape)
	index := e.shapes.Append(shape.New())
	e.state.SelectedShape = index
	e.markGeometry()

	e.logger.Debug("shape created", "shape", index)
	return index
}

// InsertPoint adds position to the selected shape and starts dragging it.
// When the cursor is over an edge of the selected shape the point is spliced
// into that edge, otherwise it is appended.
func (e *Editor) InsertPoint(position geometry.Vector3) (int, bool) {
	s, ok := e.SelectedShape()
	if !ok {
		return None, false
	}

	index := s.Len()
	if e.state.HoveringEdge() && e.state.HoverShape == e.state.SelectedShape {
		index = e.state.HoverEdge + 1
	}

	e.checkpoint(LabelAddPoint)
	index = s.InsertPoint(index, position)

	e.state.HoverShape = e.state.SelectedShape
	e.state.HoverPoint = index
	e.state.HoverEdge = None
	e.markGeometry()

	e.logger.Debug("point inserted", "shape", e.state.SelectedShape, "point", index)
	e.BeginDrag(index)
	return index, true
}

// DeletePoint removes a point. Empty shapes are kept unless
// RemoveEmptyShapes is set.
func (e *Editor) DeletePoint(shapeIndex, pointIndex int) bool {
	if !e.opts.PointDeletion {
		return false
	}
	s, ok := e.shapes.At(shapeIndex)
	if !ok || pointIndex < 0 || pointIndex >= s.Len() {
		return false
	}

	e.checkpoint(LabelDeletePoint)
	s.RemovePoint(pointIndex)
	e.state.clearHover()
	e.markGeometry()
	e.logger.Debug("point deleted", "shape", shapeIndex, "point", pointIndex)

	if s.Len() == 0 && e.opts.RemoveEmptyShapes {
		e.removeShape(shapeIndex)
	}
	return true
}

// BeginDrag starts moving a point of the selected shape
func (e *Editor) BeginDrag(pointIndex int) bool {
	s, ok := e.SelectedShape()
	if !ok {
		return false
	}
	p, ok := s.Point(pointIndex)
	if !ok {
		return false
	}

	e.state.Dragging = true
	e.state.DragShape = e.state.SelectedShape
	e.state.DragPoint = pointIndex
	e.state.DragStart = p
	e.state.HoverEdge = None
	e.repaint = true
	return true
}

// UpdateDrag moves the dragged point. No checkpoint is recorded here.
func (e *Editor) UpdateDrag(position geometry.Vector3) {
	if !e.state.Dragging {
		return
	}
	s, ok := e.shapes.At(e.state.DragShape)
	if !ok || !s.SetPoint(e.state.DragPoint, position) {
		e.state.clearDrag()
		return
	}
	e.markGeometry()
}

// EndDrag finishes the drag. The point is first put back at DragStart so the
// single "Move Point" checkpoint captures the pre-drag position, then the
// final position is written.
func (e *Editor) EndDrag(position geometry.Vector3) {
	if !e.state.Dragging {
		return
	}

	if s, ok := e.shapes.At(e.state.DragShape); ok && s.SetPoint(e.state.DragPoint, e.state.DragStart) {
		e.checkpoint(LabelMovePoint)
		s.SetPoint(e.state.DragPoint, position)
		e.markGeometry()
		e.logger.Debug("point moved", "shape", e.state.DragShape, "point", e.state.DragPoint)
	}

	e.state.clearDrag()
	e.state.HoverPoint = None
	e.repaint = true
}

// finishDrag ends an open drag where the point currently is
func (e *Editor) finishDrag() {
	if !e.state.Dragging {
		return
	}
	s, ok := e.shapes.At(e.state.DragShape)
	if !ok {
		e.state.clearDrag()
		return
	}
	p, ok := s.Point(e.state.DragPoint)
	if !ok {
		e.state.clearDrag()
		return
	}
	e.EndDrag(p)
}

// SelectShapeUnderCursor selects the hovered shape. Hovering nothing keeps
// the current selection.
func (e *Editor) SelectShapeUnderCursor() {
	if e.state.HoverShape == None {
		return
	}
	e.setSelected(e.state.HoverShape)
}

// SelectShape selects shape index, as requested by a shape list
func (e *Editor) SelectShape(index int) bool {
	if _, ok := e.shapes.At(index); !ok {
		return false
	}
	e.setSelected(index)
	return true
}

// DeleteShape removes a shape and keeps the selection inside the collection
func (e *Editor) DeleteShape(index int) bool {
	if _, ok := e.shapes.At(index); !ok {
		return false
	}
	e.checkpoint(LabelDeleteShape)
	e.removeShape(index)
	return true
}

// OnUndoRedo re-validates the state after the undo service replaced the
// collection contents. It is also the hook for external reloads.
func (e *Editor) OnUndoRedo() {
	e.SelectedIndex()
	e.state.clearHover()
	e.state.clearDrag()
	e.markGeometry()
	e.logger.Debug("state reconciled", "shapes", e.shapes.Len(), "selected", e.state.SelectedShape)
}

// UpdateHover recomputes what the cursor is over. Only a change raises the
// repaint flag.
func (e *Editor) UpdateHover(position geometry.Vector3) {
	e.cursor = position
	h := HitTest(e.shapes, position, e.opts.HandleRadius, e.opts.SkipDegenerateEdges)

	if h.Shape != e.state.HoverShape || h.Point != e.state.HoverPoint || h.Edge != e.state.HoverEdge {
		e.state.HoverShape = h.Shape
		e.state.HoverPoint = h.Point
		e.state.HoverEdge = h.Edge
		e.repaint = true
	}
}

// NeedsRepaint reports whether anything visible changed since the last Flush
func (e *Editor) NeedsRepaint() bool {
	return e.repaint
}

// GeometryChanged reports whether shapes changed since the last Flush
func (e *Editor) GeometryChanged() bool {
	return e.rebuild
}

// Flush triggers a mesh rebuild when geometry changed and reports whether a
// repaint is due. Both flags are cleared.
func (e *Editor) Flush() bool {
	if e.rebuild {
		e.rebuild = false
		if e.opts.MeshRebuild && e.svc.Mesh != nil {
			e.svc.Mesh.RebuildMesh(e.shapes)
		}
	}

	repaint := e.repaint
	e.repaint = false
	return repaint
}

func (e *Editor) removeShape(index int) {
	e.shapes.Remove(index)

	selected := e.state.SelectedShape
	if selected > index {
		selected--
	}
	if n := e.shapes.Len(); selected >= n {
		selected = n - 1
	}
	e.state.SelectedShape = selected

	e.state.clearHover()
	e.state.clearDrag()
	e.markGeometry()
	e.logger.Debug("shape deleted", "shape", index, "selected", selected)
}

func (e *Editor) setSelected(index int) {
	if e.state.SelectedShape != index {
		e.state.SelectedShape = index
		e.repaint = true
	}
}

func (e *Editor) checkpoint(label string) {
	if e.svc.Undo != nil {
		e.svc.Undo.RecordCheckpoint(e.shapes, label)
	}
}

func (e *Editor) markGeometry() {
	e.rebuild = true
	e.repaint = true
}
