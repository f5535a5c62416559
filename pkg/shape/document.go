package shape

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the document version written by Save
const FormatVersion = 1

// ErrUnsupportedVersion is returned when a document was written by a newer
// format version.
var ErrUnsupportedVersion = errors.New("unsupported document version")

// Document is the persisted form of a shape collection together with the
// handle radius it was authored with. A zero HandleRadius means "not set".
type Document struct {
	HandleRadius float64
	Shapes       *Collection
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{Shapes: NewCollection()}
}

type documentFile struct {
	Version      int         `yaml:"version"`
	HandleRadius float64     `yaml:"handle_radius,omitempty"`
	Shapes       []shapeFile `yaml:"shapes"`
}

type shapeFile struct {
	ID     string       `yaml:"id"`
	Points [][3]float64 `yaml:"points,flow"`
}

// Marshal encodes the document as YAML
func (d *Document) Marshal() ([]byte, error) {
	file := documentFile{
		Version:      FormatVersion,
		HandleRadius: d.HandleRadius,
		Shapes:       make([]shapeFile, 0, d.Shapes.Len()),
	}

	for _, s := range d.Shapes.Shapes() {
		sf := shapeFile{ID: s.ID, Points: make([][3]float64, len(s.Points))}
		for i, p := range s.Points {
			sf.Points[i] = [3]float64{p.X, p.Y, p.Z}
		}
		file.Shapes = append(file.Shapes, sf)
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a YAML document. Shapes without an identifier get a
// fresh one.
func Unmarshal(data []byte) (*Document, error) {
	var file documentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	if file.Version > FormatVersion {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, file.Version, FormatVersion)
	}
	if file.HandleRadius < 0 || math.IsNaN(file.HandleRadius) || math.IsInf(file.HandleRadius, 0) {
		return nil, fmt.Errorf("invalid handle radius: %v", file.HandleRadius)
	}

	doc := &Document{HandleRadius: file.HandleRadius, Shapes: NewCollection()}
	for i, sf := range file.Shapes {
		s := New()
		if sf.ID != "" {
			s.ID = sf.ID
		}
		for j, p := range sf.Points {
			v := geometry.NewVector3(p[0], p[1], p[2])
			if !v.IsFinite() {
				return nil, fmt.Errorf("shape %d point %d is not finite", i, j)
			}
			s.Points = append(s.Points, v)
		}
		doc.Shapes.Append(s)
	}

	return doc, nil
}

// Load reads a document from disk
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document to path through a temporary file in the same
// directory, so watchers never observe a partially written file.
func Save(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".goshapes-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
