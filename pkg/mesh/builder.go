package mesh

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/philipparndt/goshapes/pkg/stl"
)

var up = geometry.NewVector3(0, 1, 0)

// Build triangulates every shape with at least three points into one model.
// Shapes that cannot be triangulated are skipped; their errors are joined
// into the returned error while the model still holds everything else.
func Build(name string, shapes *shape.Collection) (*stl.Model, error) {
	model := stl.NewModel(name)
	var errs []error

	for i, s := range shapes.Shapes() {
		tris, err := Triangulate(s.Points)
		if err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
			continue
		}
		for _, t := range tris {
			// Swap the last two corners so the facet faces +Y
			model.AddTriangle(geometry.NewTriangle(up, s.Points[t[0]], s.Points[t[2]], s.Points[t[1]]))
		}
	}

	return model, errors.Join(errs...)
}

// Builder rebuilds the mesh whenever the editor reports changed geometry
type Builder struct {
	name    string
	logger  *slog.Logger
	model   *stl.Model
	onBuild func(*stl.Model)
}

// NewBuilder creates a builder. onBuild, if not nil, receives every rebuilt
// model (the viewer uploads it to the GPU there).
func NewBuilder(name string, logger *slog.Logger, onBuild func(*stl.Model)) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		name:    name,
		logger:  logger,
		model:   stl.NewModel(name),
		onBuild: onBuild,
	}
}

// RebuildMesh triangulates the collection and publishes the result
func (b *Builder) RebuildMesh(shapes *shape.Collection) {
	model, err := Build(b.name, shapes)
	if err != nil {
		b.logger.Warn("some shapes were left out of the mesh", "error", err)
	}
	b.logger.Debug("mesh rebuilt", "shapes", shapes.Len(), "triangles", model.TriangleCount())

	b.model = model
	if b.onBuild != nil {
		b.onBuild(model)
	}
}

// Model returns the most recently built model
func (b *Builder) Model() *stl.Model {
	return b.model
}
