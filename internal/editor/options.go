package editor

import "log/slog"

// DefaultHandleRadius is the hit-test tolerance used when none is configured
const DefaultHandleRadius = 0.5

// Options configures the editor. The capability flags replace the separate
// single-shape, no-delete and no-mesh editor variants.
type Options struct {
	// HandleRadius is the hit-test tolerance for points and edges
	HandleRadius float64
	// PlaneHeight is the Y coordinate of the drawing plane
	PlaneHeight float64

	// MultiShape allows more than one shape; when false every edit goes to
	// shape 0.
	MultiShape bool
	// PointDeletion enables the alternate-click point removal gesture
	PointDeletion bool
	// MeshRebuild asks the mesh service for a rebuild after geometry changes
	MeshRebuild bool

	// RemoveEmptyShapes deletes a shape once its last point is removed.
	// Otherwise empty shapes stay in the collection, invisible to hit tests.
	RemoveEmptyShapes bool
	// SkipDegenerateEdges leaves the self-edge of single-point shapes out of
	// edge hit testing.
	SkipDegenerateEdges bool

	Logger *slog.Logger
}

// DefaultOptions returns the full-featured configuration
func DefaultOptions() Options {
	return Options{
		HandleRadius:  DefaultHandleRadius,
		MultiShape:    true,
		PointDeletion: true,
		MeshRebuild:   true,
	}
}
