package editor

import (
	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/shape"
)

// Checkpoint labels recorded with the undo service
const (
	LabelCreateShape = "Create Shape"
	LabelDeleteShape = "Delete Shape"
	LabelAddPoint    = "Add Point"
	LabelDeletePoint = "Delete Point"
	LabelMovePoint   = "Move Point"
)

// Viewport turns a screen position into a world-space ray
type Viewport interface {
	ScreenToWorldRay(screen geometry.Vector2) geometry.Ray
}

// Checkpointer records an undo step. It is called immediately before the
// mutation it protects, so the snapshot holds the pre-mutation state.
type Checkpointer interface {
	RecordCheckpoint(target *shape.Collection, label string)
}

// UndoNotifier is implemented by checkpoint services that can restore the
// collection on their own and announce it.
type UndoNotifier interface {
	Subscribe(fn func()) (cancel func())
}

// MeshRebuilder rebuilds the drawable mesh from the collection
type MeshRebuilder interface {
	RebuildMesh(shapes *shape.Collection)
}

// Host is notified when the editor becomes active or inactive, e.g. to hide
// the host's own manipulation handles while shapes are being edited.
type Host interface {
	OnEnter()
	OnExit()
}

// Services bundles the collaborators. Only Viewport is required; a nil
// Viewport falls back to TopDownViewport.
type Services struct {
	Viewport Viewport
	Undo     Checkpointer
	Mesh     MeshRebuilder
	Host     Host
}

// TopDownViewport looks straight down the Y axis. Screen X maps to world X
// and screen Y to world Z, both multiplied by Scale (1 when zero) and
// shifted by Origin.
type TopDownViewport struct {
	Scale  float64
	Origin geometry.Vector3
}

// eyeHeight places the ray origin well above any sensible drawing plane
const eyeHeight = 1e6

// ScreenToWorldRay implements Viewport
func (v TopDownViewport) ScreenToWorldRay(screen geometry.Vector2) geometry.Ray {
	scale := v.Scale
	if scale == 0 {
		scale = 1
	}
	origin := geometry.NewVector3(
		v.Origin.X+screen.X*scale,
		eyeHeight,
		v.Origin.Z+screen.Y*scale,
	)
	return geometry.NewRay(origin, geometry.NewVector3(0, -1, 0))
}
