package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshapes/pkg/mesh"
	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/philipparndt/goshapes/pkg/stl"
	"github.com/philipparndt/goshapes/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	home          rl.Vector3 // Target used by reset
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// DocumentState holds the edited document and its save state
type DocumentState struct {
	path  string
	doc   *shape.Document
	dirty bool
}

// MeshData holds the triangulated shapes and their GPU copy
type MeshData struct {
	builder  *mesh.Builder
	model    *stl.Model
	mesh     rl.Mesh
	material rl.Material
	uploaded bool
}

// ViewSettings holds display settings
type ViewSettings struct {
	showFilled    bool
	showWireframe bool
	showGrid      bool
	showHelp      bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	leftDown     bool // primary button went down inside the viewport
	orbiting     bool
	panning      bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
	debounce    time.Duration
	needsReload atomic.Bool // set from the watcher goroutine
}

// UIState holds HUD state
type UIState struct {
	font       rl.Font
	listBounds rl.Rectangle
	rows       []rl.Rectangle
	hoveredRow int
	status     string
	statusTime time.Time
}
