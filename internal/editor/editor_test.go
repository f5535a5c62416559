package editor

import (
	"testing"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/history"
	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	labels []string
}

func (r *recorder) RecordCheckpoint(_ *shape.Collection, label string) {
	r.labels = append(r.labels, label)
}

type meshCounter struct {
	calls int
}

func (m *meshCounter) RebuildMesh(*shape.Collection) {
	m.calls++
}

type hostSpy struct {
	enter, exit int
}

func (h *hostSpy) OnEnter() { h.enter++ }
func (h *hostSpy) OnExit()  { h.exit++ }

type parallelViewport struct{}

func (parallelViewport) ScreenToWorldRay(geometry.Vector2) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(0, 1, 0), geometry.NewVector3(1, 0, 0))
}

func event(kind EventKind, mods Modifiers, x, z float64) Event {
	return Event{Kind: kind, Button: ButtonPrimary, Modifiers: mods, Screen: geometry.NewVector2(x, z)}
}

func move(x, z float64) Event { return event(PointerMove, ModNone, x, z) }
func down(x, z float64) Event { return event(PointerDown, ModNone, x, z) }
func altDown(x, z float64) Event { return event(PointerDown, ModAlternate, x, z) }
func up(x, z float64) Event { return event(PointerUp, ModNone, x, z) }
func dragTo(x, z float64) Event { return event(PointerDrag, ModNone, x, z) }

func newEditor(shapes *shape.Collection, undo Checkpointer) *Editor {
	return New(shapes, Services{Undo: undo}, DefaultOptions())
}

func feed(e *Editor, events ...Event) {
	for _, ev := range events {
		e.HandleEvent(ev)
	}
}

func points(e *Editor, index int) []geometry.Vector3 {
	s, ok := e.Shapes().At(index)
	if !ok {
		return nil
	}
	return s.Points
}

func TestEmptyCollectionScenario(t *testing.T) {
	rec := &recorder{}
	ed := newEditor(nil, rec)

	feed(ed, altDown(1, 1), up(1, 1))
	require.Equal(t, 1, ed.Shapes().Len())
	assert.Equal(t, []geometry.Vector3{pt(1, 1)}, points(ed, 0))
	assert.Equal(t, 0, ed.SelectedIndex())

	feed(ed, move(2, 2), down(2, 2), up(2, 2))
	require.Equal(t, 1, ed.Shapes().Len())
	assert.Equal(t, []geometry.Vector3{pt(1, 1), pt(2, 2)}, points(ed, 0))

	assert.Equal(t, []string{
		LabelCreateShape, LabelAddPoint, LabelMovePoint,
		LabelAddPoint, LabelMovePoint,
	}, rec.labels)
}

func TestPlainDownOnEmptyCollectionCreatesShape(t *testing.T) {
	ed := newEditor(nil, nil)

	feed(ed, down(3, 4))
	assert.Equal(t, 1, ed.Shapes().Len())
	assert.Equal(t, 0, ed.SelectedIndex())
	assert.True(t, ed.State().Dragging, "a new point is dragged right away")
}

func TestHoverIsIdempotent(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), nil)

	ed.UpdateHover(pt(2, 0.1))
	first := ed.State()
	require.True(t, ed.Flush())

	ed.UpdateHover(pt(2, 0.1))
	assert.Equal(t, first, ed.State())
	assert.False(t, ed.NeedsRepaint())
}

func TestHoverPointBeatsEdge(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), nil)

	feed(ed, move(0.1, 0.1))
	st := ed.State()
	assert.Equal(t, 0, st.HoverShape)
	assert.Equal(t, 0, st.HoverPoint)
	assert.Equal(t, None, st.HoverEdge)
}

func TestInsertOnHoveredEdgeSplices(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), nil)

	feed(ed, move(2, 0.1))
	require.Equal(t, 0, ed.State().HoverEdge)

	feed(ed, down(2, 0.1), up(2, 0.1))
	got := points(ed, 0)
	require.Len(t, got, 5)
	assert.Equal(t, pt(2, 0.1), got[1])
	assert.Equal(t, pt(4, 0), got[2], "the old point 1 moves to index 2")
}

func TestInsertOnEdgeOfOtherShapeSelectsItFirst(t *testing.T) {
	shapes := shape.NewCollection(square(0, 0, 4), square(10, 0, 4))
	ed := newEditor(shapes, nil)
	require.Equal(t, 1, ed.SelectedIndex())

	feed(ed, move(2, 0.1), down(2, 0.1), up(2, 0.1))
	assert.Equal(t, 0, ed.SelectedIndex())
	assert.Len(t, points(ed, 0), 5)
	assert.Len(t, points(ed, 1), 4)
}

func TestSelectionIsSticky(t *testing.T) {
	shapes := shape.NewCollection(square(0, 0, 4), square(10, 0, 4))
	ed := newEditor(shapes, nil)

	feed(ed, move(2, 0.1), down(2, 0.1), up(2, 0.1))
	require.Equal(t, 0, ed.SelectedIndex())

	feed(ed, move(50, 50), down(50, 50), up(50, 50))
	assert.Equal(t, 0, ed.SelectedIndex())
	got := points(ed, 0)
	require.Len(t, got, 6)
	assert.Equal(t, pt(50, 50), got[5])
}

func TestDragRecordsSingleCheckpoint(t *testing.T) {
	rec := &recorder{}
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), rec)

	feed(ed, move(4, 4), down(4, 4))
	for i := 0; i < 10; i++ {
		feed(ed, dragTo(4+float64(i), 4))
	}
	assert.Empty(t, rec.labels, "no checkpoint while dragging")

	feed(ed, up(20, 20))
	assert.Equal(t, []string{LabelMovePoint}, rec.labels)
	assert.Equal(t, pt(20, 20), points(ed, 0)[2])
}

func TestDragUndoRestoresPreDragPosition(t *testing.T) {
	log := history.NewLog(0)
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), log)

	feed(ed, move(4, 4), down(4, 4), dragTo(5, 5), dragTo(6, 6), up(7, 7))
	require.Equal(t, pt(7, 7), points(ed, 0)[2])
	assert.Equal(t, []string{LabelMovePoint}, log.Labels())

	_, err := log.Undo(ed.Shapes())
	require.NoError(t, err)
	assert.Equal(t, pt(4, 4), points(ed, 0)[2])
}

func TestDragStaysOnShapeWhenSelectionChanges(t *testing.T) {
	log := history.NewLog(0)
	ed := newEditor(shape.NewCollection(square(0, 0, 4), square(10, 0, 4)), log)

	feed(ed, move(4, 4), down(4, 4))
	require.True(t, ed.SelectShape(1))
	feed(ed, dragTo(30, 30))

	frame := ed.Frame()
	assert.Equal(t, PointDragged, frame.Shapes[0].Points[2].State)
	assert.Equal(t, PointIdle, frame.Shapes[1].Points[2].State)

	feed(ed, up(30, 30))
	assert.Equal(t, pt(30, 30), points(ed, 0)[2])
	assert.Equal(t, pt(14, 4), points(ed, 1)[2])
	assert.Equal(t, []string{LabelMovePoint}, log.Labels())

	_, err := log.Undo(ed.Shapes())
	require.NoError(t, err)
	assert.Equal(t, pt(4, 4), points(ed, 0)[2])
	assert.Equal(t, pt(14, 4), points(ed, 1)[2])
}

func TestPressDuringDragFinishesPreviousDrag(t *testing.T) {
	log := history.NewLog(0)
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), log)

	// The release of the first gesture is lost
	feed(ed, move(4, 4), down(4, 4), dragTo(6, 6), down(30, 30), up(30, 30))

	require.Len(t, points(ed, 0), 5)
	assert.Equal(t, pt(6, 6), points(ed, 0)[2])
	assert.Equal(t, pt(30, 30), points(ed, 0)[4])
	assert.Equal(t, []string{LabelMovePoint, LabelAddPoint, LabelMovePoint}, log.Labels())
	assert.False(t, ed.State().Dragging)

	for log.CanUndo() {
		_, err := log.Undo(ed.Shapes())
		require.NoError(t, err)
	}
	assert.Equal(t, []geometry.Vector3{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}, points(ed, 0))
}

func TestDraggingSuppressesHover(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4), square(10, 0, 4)), nil)

	feed(ed, move(0, 0), down(0, 0))
	// Drag the point across a vertex of the other shape
	feed(ed, dragTo(10, 0))
	st := ed.State()
	assert.True(t, st.Dragging)
	assert.Equal(t, 0, st.HoverShape)
	assert.Equal(t, 0, st.HoverPoint)
}

func TestAlternateDownDeletesHoveredPoint(t *testing.T) {
	rec := &recorder{}
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), rec)

	feed(ed, move(4, 0), altDown(4, 0), up(4, 0))
	assert.Equal(t, []geometry.Vector3{pt(0, 0), pt(4, 4), pt(0, 4)}, points(ed, 0))
	assert.Equal(t, []string{LabelDeletePoint}, rec.labels)
	assert.Equal(t, 1, ed.Shapes().Len())
}

func TestAlternateDownOnEmptySpaceStartsNewShape(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 4)), nil)

	feed(ed, move(20, 20), altDown(20, 20), up(20, 20))
	require.Equal(t, 2, ed.Shapes().Len())
	assert.Equal(t, 1, ed.SelectedIndex())
	assert.Equal(t, []geometry.Vector3{pt(20, 20)}, points(ed, 1))
}

func TestEmptyShapePersistsByDefault(t *testing.T) {
	ed := newEditor(shape.NewCollection(shape.New(pt(1, 1))), nil)

	feed(ed, move(1, 1), altDown(1, 1), up(1, 1))
	require.Equal(t, 1, ed.Shapes().Len())
	assert.Empty(t, points(ed, 0))
	assert.Equal(t, 0, ed.SelectedIndex())

	feed(ed, move(1, 1))
	assert.Equal(t, None, ed.State().HoverShape, "empty shapes are not hit")
}

func TestRemoveEmptyShapes(t *testing.T) {
	rec := &recorder{}
	opts := DefaultOptions()
	opts.RemoveEmptyShapes = true
	ed := New(shape.NewCollection(shape.New(pt(1, 1))), Services{Undo: rec}, opts)

	feed(ed, move(1, 1), altDown(1, 1), up(1, 1))
	assert.Equal(t, 0, ed.Shapes().Len())
	assert.Equal(t, None, ed.SelectedIndex())
	assert.Equal(t, []string{LabelDeletePoint}, rec.labels, "one undo step for the whole gesture")
}

func TestPointDeletionDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.PointDeletion = false
	ed := New(shape.NewCollection(square(0, 0, 4)), Services{}, opts)

	feed(ed, move(4, 0), altDown(4, 0), up(4, 0))
	assert.Len(t, points(ed, 0), 4)
	assert.Equal(t, 2, ed.Shapes().Len(), "the gesture falls back to starting a shape")
	assert.False(t, ed.DeletePoint(0, 0))
}

func TestSingleShapeMode(t *testing.T) {
	opts := DefaultOptions()
	opts.MultiShape = false
	ed := New(nil, Services{}, opts)

	feed(ed, altDown(0, 0), up(0, 0))
	feed(ed, move(10, 10), altDown(10, 10), up(10, 10))

	require.Equal(t, 1, ed.Shapes().Len())
	assert.Equal(t, []geometry.Vector3{pt(0, 0), pt(10, 10)}, points(ed, 0))
}

func TestDeleteShapeClampsSelection(t *testing.T) {
	for deleted := 0; deleted < 3; deleted++ {
		shapes := shape.NewCollection(square(0, 0, 1), square(5, 0, 1), square(10, 0, 1))
		ed := newEditor(shapes, nil)
		require.Equal(t, 2, ed.SelectedIndex())

		require.True(t, ed.DeleteShape(deleted))
		sel := ed.SelectedIndex()
		assert.GreaterOrEqual(t, sel, 0)
		assert.LessOrEqual(t, sel, 1)
	}
}

func TestDeleteShapeKeepsSelectedShape(t *testing.T) {
	a, b, c := square(0, 0, 1), square(5, 0, 1), square(10, 0, 1)
	ed := newEditor(shape.NewCollection(a, b, c), nil)
	require.True(t, ed.SelectShape(2))

	require.True(t, ed.DeleteShape(0))
	s, ok := ed.SelectedShape()
	require.True(t, ok)
	assert.Same(t, c, s)
}

func TestDeleteLastShapeClearsSelection(t *testing.T) {
	rec := &recorder{}
	ed := newEditor(shape.NewCollection(square(0, 0, 1)), rec)

	require.True(t, ed.DeleteShape(0))
	assert.Equal(t, None, ed.SelectedIndex())
	_, ok := ed.SelectedShape()
	assert.False(t, ok)
	assert.Equal(t, []string{LabelDeleteShape}, rec.labels)

	assert.False(t, ed.DeleteShape(0))
}

func TestSelectShapeOutOfRange(t *testing.T) {
	ed := newEditor(shape.NewCollection(square(0, 0, 1)), nil)
	assert.False(t, ed.SelectShape(1))
	assert.False(t, ed.SelectShape(-1))
	assert.Equal(t, 0, ed.SelectedIndex())
}

func TestSelectedIndexClampsAfterExternalRemoval(t *testing.T) {
	shapes := shape.NewCollection(square(0, 0, 1), square(5, 0, 1))
	ed := newEditor(shapes, nil)
	require.Equal(t, 1, ed.SelectedIndex())

	shapes.Remove(1)
	assert.Equal(t, 0, ed.SelectedIndex())
}

func TestUndoNotificationRevalidatesSelection(t *testing.T) {
	log := history.NewLog(0)
	ed := newEditor(nil, log)
	ed.Enter()
	defer ed.Exit()

	feed(ed, down(0, 0), up(0, 0))
	feed(ed, move(20, 20), altDown(20, 20), up(20, 20))
	require.Equal(t, 2, ed.Shapes().Len())
	require.Equal(t, 1, ed.state.SelectedShape)

	for i := 0; i < 3; i++ {
		_, err := log.Undo(ed.Shapes())
		require.NoError(t, err)
	}
	require.Equal(t, 1, ed.Shapes().Len())
	assert.Equal(t, 0, ed.state.SelectedShape, "stored index is reconciled, not only clamped on read")
	assert.True(t, ed.GeometryChanged())
}

func TestEnterExitLifecycle(t *testing.T) {
	host := &hostSpy{}
	log := history.NewLog(0)
	shapes := shape.NewCollection(square(0, 0, 1), square(5, 0, 1))
	ed := New(shapes, Services{Undo: log, Host: host}, DefaultOptions())

	ed.Enter()
	ed.Enter()
	assert.Equal(t, 1, host.enter)
	assert.True(t, ed.Active())
	assert.Equal(t, 1, ed.SelectedIndex())

	ed.Exit()
	assert.Equal(t, 1, host.exit)
	assert.False(t, ed.Active())
	ed.Flush()

	log.RecordCheckpoint(shapes, "external")
	_, err := log.Undo(shapes)
	require.NoError(t, err)
	assert.False(t, ed.GeometryChanged(), "no notifications after Exit")
}

func TestMeshRebuildOnlyOnGeometryChange(t *testing.T) {
	mesh := &meshCounter{}
	ed := New(nil, Services{Mesh: mesh}, DefaultOptions())

	feed(ed, move(1, 1), move(2, 2))
	ed.Flush()
	assert.Equal(t, 0, mesh.calls)

	feed(ed, down(0, 0), dragTo(1, 0), dragTo(2, 0), up(2, 0))
	ed.Flush()
	assert.Equal(t, 1, mesh.calls, "several mutations collapse into one rebuild")

	feed(ed, move(2, 0))
	feed(ed, move(30, 30))
	assert.True(t, ed.Flush(), "hover change still repaints")
	assert.Equal(t, 1, mesh.calls)
}

func TestMeshRebuildDisabled(t *testing.T) {
	mesh := &meshCounter{}
	opts := DefaultOptions()
	opts.MeshRebuild = false
	ed := New(nil, Services{Mesh: mesh}, opts)

	feed(ed, down(0, 0), up(0, 0))
	ed.Flush()
	assert.Equal(t, 0, mesh.calls)
}

func TestRayParallelToPlaneIsDropped(t *testing.T) {
	ed := New(nil, Services{Viewport: parallelViewport{}}, DefaultOptions())

	feed(ed, down(1, 1), up(1, 1))
	assert.Equal(t, 0, ed.Shapes().Len())
	assert.False(t, ed.NeedsRepaint())
}

func TestPlaneHeight(t *testing.T) {
	opts := DefaultOptions()
	opts.PlaneHeight = 2
	ed := New(nil, Services{}, opts)

	feed(ed, down(1, 1), up(1, 1))
	assert.Equal(t, []geometry.Vector3{geometry.NewVector3(1, 2, 1)}, points(ed, 0))
}

func TestSecondaryButtonOnlyHovers(t *testing.T) {
	ed := newEditor(nil, nil)

	ed.HandleEvent(Event{Kind: PointerDown, Button: ButtonSecondary, Screen: geometry.NewVector2(1, 1)})
	assert.Equal(t, 0, ed.Shapes().Len())
	assert.Equal(t, pt(1, 1), ed.Cursor())
}
