// Package viewer is a fyne widget showing shapes from above.
package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goshapes/pkg/geometry"
)

// Highlight is how an outline point is drawn
type Highlight int

const (
	Idle Highlight = iota
	Hovered
	Dragged
)

// Outline is one shape to draw
type Outline struct {
	Points      []geometry.Vector3
	Highlights  []Highlight // per point, may be shorter than Points
	HoveredEdge int         // -1 for none
	Selected    bool
}

// PointerKind is the kind of a pointer event on the view
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerDrag
	PointerUp
)

// PointerEvent is a pointer event already projected onto the drawing plane
type PointerEvent struct {
	Kind      PointerKind
	World     geometry.Vector3
	Alternate bool // shift held
}

var (
	colorIdle     = color.RGBA{128, 128, 128, 255}
	colorSelected = color.RGBA{255, 255, 255, 255}
	colorHovered  = color.RGBA{255, 0, 0, 255}
	colorDragged  = color.RGBA{0, 0, 0, 255}
)

// ShapeView renders outlines from above and reports pointer events
type ShapeView struct {
	widget.BaseWidget
	camera    *Camera
	outlines  []Outline
	lines     []*canvas.Line
	markers   []*canvas.Circle
	width     float64
	height    float64
	pressed   bool
	fitted    bool
	onPointer func(PointerEvent)
}

var (
	_ desktop.Mouseable = (*ShapeView)(nil)
	_ desktop.Hoverable = (*ShapeView)(nil)
	_ fyne.Draggable    = (*ShapeView)(nil)
	_ fyne.Scrollable   = (*ShapeView)(nil)
)

// NewShapeView creates a view for shapes on the plane at planeHeight
func NewShapeView(planeHeight float64) *ShapeView {
	v := &ShapeView{
		camera: &Camera{Scale: 20, PlaneHeight: planeHeight},
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnPointer sets the callback for pointer events
func (v *ShapeView) SetOnPointer(callback func(PointerEvent)) {
	v.onPointer = callback
}

// SetOutlines replaces what is drawn. The camera is fitted to the first
// non-empty set of outlines.
func (v *ShapeView) SetOutlines(outlines []Outline) {
	v.outlines = outlines
	if !v.fitted && v.width > 0 {
		v.FitAll()
	}
	v.Render(v.width, v.height)
}

// FitAll fits the camera to all outline points
func (v *ShapeView) FitAll() {
	min, max, ok := bounds(v.outlines)
	if !ok {
		return
	}
	v.camera.Fit(min, max, v.width, v.height)
	v.fitted = true
}

// CreateRenderer creates the renderer for the widget
func (v *ShapeView) CreateRenderer() fyne.WidgetRenderer {
	return &shapeWidgetRenderer{view: v}
}

// Render rebuilds the canvas objects for a view of the given size
func (v *ShapeView) Render(width, height float64) {
	v.width = width
	v.height = height
	v.lines = v.lines[:0]
	v.markers = v.markers[:0]

	const markerSize = float32(10)

	for _, o := range v.outlines {
		n := len(o.Points)
		for i := 0; i < n; i++ {
			x1, y1 := v.camera.Project(o.Points[i], width, height)
			x2, y2 := v.camera.Project(o.Points[(i+1)%n], width, height)

			col := colorIdle
			stroke := float32(1)
			switch {
			case i == o.HoveredEdge:
				col, stroke = colorHovered, 3
			case o.Selected:
				col = colorSelected
			}

			line := canvas.NewLine(col)
			line.StrokeWidth = stroke
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			v.lines = append(v.lines, line)
		}

		for i, p := range o.Points {
			h := Idle
			if i < len(o.Highlights) {
				h = o.Highlights[i]
			}
			x, y := v.camera.Project(p, width, height)

			marker := canvas.NewCircle(markerColor(h, o.Selected))
			marker.StrokeColor = color.Black
			marker.StrokeWidth = 1
			marker.Resize(fyne.NewSize(markerSize, markerSize))
			marker.Move(fyne.NewPos(float32(x)-markerSize/2, float32(y)-markerSize/2))
			v.markers = append(v.markers, marker)
		}
	}

	v.Refresh()
}

func markerColor(h Highlight, selected bool) color.Color {
	switch {
	case h == Hovered:
		return colorHovered
	case h == Dragged:
		return colorDragged
	case selected:
		return colorSelected
	default:
		return colorIdle
	}
}

func (v *ShapeView) emit(kind PointerKind, pos fyne.Position, alternate bool) {
	if v.onPointer == nil {
		return
	}
	world := v.camera.Unproject(float64(pos.X), float64(pos.Y), v.width, v.height)
	v.onPointer(PointerEvent{Kind: kind, World: world, Alternate: alternate})
}

// MouseDown implements desktop.Mouseable
func (v *ShapeView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	v.pressed = true
	v.emit(PointerDown, ev.Position, ev.Modifier&fyne.KeyModifierShift != 0)
}

// MouseUp implements desktop.Mouseable
func (v *ShapeView) MouseUp(ev *desktop.MouseEvent) {
	if !v.pressed {
		return
	}
	v.pressed = false
	v.emit(PointerUp, ev.Position, false)
}

// MouseIn implements desktop.Hoverable
func (v *ShapeView) MouseIn(ev *desktop.MouseEvent) {
	v.emit(PointerMove, ev.Position, false)
}

// MouseMoved implements desktop.Hoverable
func (v *ShapeView) MouseMoved(ev *desktop.MouseEvent) {
	if v.pressed {
		return
	}
	v.emit(PointerMove, ev.Position, false)
}

// MouseOut implements desktop.Hoverable
func (v *ShapeView) MouseOut() {}

// Dragged handles mouse drag events
func (v *ShapeView) Dragged(ev *fyne.DragEvent) {
	if v.pressed {
		v.emit(PointerDrag, ev.Position, false)
	}
}

// DragEnd handles the end of a drag event
func (v *ShapeView) DragEnd() {}

// Scrolled handles scroll events for zooming
func (v *ShapeView) Scrolled(ev *fyne.ScrollEvent) {
	v.camera.Zoom(float64(ev.Scrolled.DY) * 0.001)
	v.Render(v.width, v.height)
}

func bounds(outlines []Outline) (geometry.Vector3, geometry.Vector3, bool) {
	var min, max geometry.Vector3
	found := false
	for _, o := range outlines {
		for _, p := range o.Points {
			if !found {
				min, max, found = p, p, true
				continue
			}
			min, max = min.Min(p), max.Max(p)
		}
	}
	return min, max, found
}

// shapeWidgetRenderer implements fyne.WidgetRenderer
type shapeWidgetRenderer struct {
	view    *ShapeView
	objects []fyne.CanvasObject
}

func (r *shapeWidgetRenderer) Layout(size fyne.Size) {
	v := r.view
	v.width, v.height = float64(size.Width), float64(size.Height)
	if !v.fitted {
		v.FitAll()
	}
	v.Render(v.width, v.height)
}

func (r *shapeWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *shapeWidgetRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	for _, marker := range r.view.markers {
		r.objects = append(r.objects, marker)
	}
	canvas.Refresh(r.view)
}

func (r *shapeWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *shapeWidgetRenderer) Destroy() {}
