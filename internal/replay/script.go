// Package replay drives the editor from a scripted list of events, without a
// window. It is used by the replay command and in tests.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/goshapes/internal/editor"
	"github.com/philipparndt/goshapes/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Step is one scripted action. Pointer steps use X and Y as screen
// coordinates; Index is used by select and delete-shape.
type Step struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Alt    bool    `yaml:"alt,omitempty"`
	Button string  `yaml:"button,omitempty"`
	Index  int     `yaml:"index,omitempty"`
}

// Viewport configures the top-down projection used for the script
type Viewport struct {
	Scale  float64    `yaml:"scale"`
	Origin [3]float64 `yaml:"origin,flow"`
}

// Script is a replayable session
type Script struct {
	Viewport Viewport `yaml:"viewport"`
	Steps    []Step   `yaml:"steps"`
}

// Actions understood by Step
const (
	ActionMove        = "move"
	ActionDown        = "down"
	ActionUp          = "up"
	ActionDrag        = "drag"
	ActionClick       = "click"
	ActionUndo        = "undo"
	ActionRedo        = "redo"
	ActionSelect      = "select"
	ActionDeleteShape = "delete-shape"
)

// ErrUnknownAction is returned for steps with an unsupported action
var ErrUnknownAction = errors.New("unknown action")

// Parse decodes a script
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// ParseFile reads and decodes a script file
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// TopDown returns the viewport the script asks for
func (s *Script) TopDown() editor.TopDownViewport {
	o := s.Viewport.Origin
	return editor.TopDownViewport{
		Scale:  s.Viewport.Scale,
		Origin: geometry.NewVector3(o[0], o[1], o[2]),
	}
}

func (s Step) validate() error {
	switch strings.ToLower(s.Action) {
	case ActionMove, ActionDown, ActionUp, ActionDrag, ActionClick, ActionUndo, ActionRedo:
	case ActionSelect, ActionDeleteShape:
		if s.Index < 0 {
			return fmt.Errorf("%s needs a non-negative index", s.Action)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, s.Action)
	}

	if _, err := parseButton(s.Button); err != nil {
		return err
	}
	return nil
}

func parseButton(name string) (editor.Button, error) {
	switch strings.ToLower(name) {
	case "", "primary", "left":
		return editor.ButtonPrimary, nil
	case "secondary", "right":
		return editor.ButtonSecondary, nil
	case "middle":
		return editor.ButtonMiddle, nil
	default:
		return editor.ButtonPrimary, fmt.Errorf("unknown button %q", name)
	}
}
