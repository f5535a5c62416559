// Package config loads editor settings from defaults, an optional TOML file
// and command line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/goshapes/internal/editor"
)

// FileName is the config file looked up next to a document
const FileName = "goshapes.toml"

// Config is the complete set of settings
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Log     LogConfig     `toml:"log"`
	Watcher WatcherConfig `toml:"watcher"`

	// File is the config file that was read, empty for the defaults
	File string `toml:"-"`
	// UnknownKeys lists keys in File that no setting uses
	UnknownKeys []string `toml:"-"`
}

// EditorConfig mirrors editor.Options
type EditorConfig struct {
	HandleRadius        float64 `toml:"handle_radius"`
	PlaneHeight         float64 `toml:"plane_height"`
	MultiShape          bool    `toml:"multi_shape"`
	PointDeletion       bool    `toml:"point_deletion"`
	MeshRebuild         bool    `toml:"mesh_rebuild"`
	RemoveEmptyShapes   bool    `toml:"remove_empty_shapes"`
	SkipDegenerateEdges bool    `toml:"skip_degenerate_edges"`
}

// LogConfig selects the slog level and handler
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// WatcherConfig controls document reloading
type WatcherConfig struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Editor: EditorConfig{
			HandleRadius:  editor.DefaultHandleRadius,
			MultiShape:    true,
			PointDeletion: true,
			MeshRebuild:   true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Watcher: WatcherConfig{
			Enabled:    true,
			DebounceMS: 200,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg.File = path
	for _, key := range md.Undecoded() {
		cfg.UnknownKeys = append(cfg.UnknownKeys, key.String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the explicitly given file, or goshapes.toml next to the
// document when it exists, or the defaults.
func Resolve(explicit, document string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if document == "" {
		return Default(), nil
	}

	candidate := filepath.Join(filepath.Dir(document), FileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to stat %s: %w", candidate, err)
	}
	return Load(candidate)
}

// WarnUnknown logs the ignored keys. It is called once logging is set up, so
// the warning honours the configured level and format.
func (c Config) WarnUnknown(logger *slog.Logger) {
	if len(c.UnknownKeys) > 0 {
		logger.Warn("unknown config keys ignored", "file", c.File, "keys", c.UnknownKeys)
	}
}

// Validate rejects settings the editor cannot work with
func (c Config) Validate() error {
	if !(c.Editor.HandleRadius > 0) || math.IsInf(c.Editor.HandleRadius, 0) {
		return fmt.Errorf("handle_radius must be positive, got %v", c.Editor.HandleRadius)
	}
	if math.IsNaN(c.Editor.PlaneHeight) || math.IsInf(c.Editor.PlaneHeight, 0) {
		return fmt.Errorf("plane_height must be finite, got %v", c.Editor.PlaneHeight)
	}
	if c.Watcher.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must not be negative, got %d", c.Watcher.DebounceMS)
	}
	return nil
}

// EditorOptions converts the editor section
func (c Config) EditorOptions(logger *slog.Logger) editor.Options {
	return editor.Options{
		HandleRadius:        c.Editor.HandleRadius,
		PlaneHeight:         c.Editor.PlaneHeight,
		MultiShape:          c.Editor.MultiShape,
		PointDeletion:       c.Editor.PointDeletion,
		MeshRebuild:         c.Editor.MeshRebuild,
		RemoveEmptyShapes:   c.Editor.RemoveEmptyShapes,
		SkipDegenerateEdges: c.Editor.SkipDegenerateEdges,
		Logger:              logger,
	}
}
