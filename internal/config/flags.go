package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the command line overrides. Only flags the user actually set
// are applied.
type Flags struct {
	ConfigPath string

	radius      float64
	planeHeight float64
	singleShape bool
	noDelete    bool
	noMesh      bool
	removeEmpty bool
	logLevel    string
	logFormat   string

	set *pflag.FlagSet
}

// Register adds the config flags to fs
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.set = fs
	fs.StringVar(&f.ConfigPath, "config", "", "config file (default: goshapes.toml next to the document)")
	fs.Float64Var(&f.radius, "radius", 0, "handle radius for point and edge picking")
	fs.Float64Var(&f.planeHeight, "plane-height", 0, "height of the drawing plane")
	fs.BoolVar(&f.singleShape, "single-shape", false, "edit a single shape only")
	fs.BoolVar(&f.noDelete, "no-delete", false, "disable point deletion")
	fs.BoolVar(&f.noMesh, "no-mesh", false, "disable mesh rebuilding")
	fs.BoolVar(&f.removeEmpty, "remove-empty", false, "delete shapes whose last point was removed")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", "", "log format (text, json)")
}

// RadiusSet reports whether --radius was given
func (f *Flags) RadiusSet() bool {
	return f.changed("radius")
}

// Apply overrides cfg with the flags that were set and validates the result
func (f *Flags) Apply(cfg Config) (Config, error) {
	if f.changed("radius") {
		cfg.Editor.HandleRadius = f.radius
	}
	if f.changed("plane-height") {
		cfg.Editor.PlaneHeight = f.planeHeight
	}
	if f.changed("single-shape") {
		cfg.Editor.MultiShape = !f.singleShape
	}
	if f.changed("no-delete") {
		cfg.Editor.PointDeletion = !f.noDelete
	}
	if f.changed("no-mesh") {
		cfg.Editor.MeshRebuild = !f.noMesh
	}
	if f.changed("remove-empty") {
		cfg.Editor.RemoveEmptyShapes = f.removeEmpty
	}
	if f.changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if f.changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (f *Flags) changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}

// HandleRadius picks the radius for a document: an explicit flag wins over
// the document's own radius, which wins over the config file.
func (f *Flags) HandleRadius(cfg Config, document float64) float64 {
	if f.RadiusSet() {
		return cfg.Editor.HandleRadius
	}
	if document > 0 {
		return document
	}
	return cfg.Editor.HandleRadius
}
