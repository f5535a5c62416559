package replay

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/philipparndt/goshapes/internal/editor"
	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/history"
	"github.com/philipparndt/goshapes/pkg/shape"
)

// Result summarizes a replay
type Result struct {
	Steps       int
	Checkpoints []string
	Selected    int
	Rebuilds    int
}

// Runner owns the editor and undo log a script is applied to
type Runner struct {
	Editor  *editor.Editor
	History *history.Log
	logger  *slog.Logger
}

// NewRunner wires an editor for headless use. Mesh may be nil.
func NewRunner(shapes *shape.Collection, opts editor.Options, viewport editor.Viewport, mesh editor.MeshRebuilder) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	log := history.NewLog(0)
	e := editor.New(shapes, editor.Services{Viewport: viewport, Undo: log, Mesh: mesh}, opts)
	return &Runner{Editor: e, History: log, logger: logger.With("component", "replay")}
}

// Run applies every step of the script and flushes after each one, like a
// frame loop would.
func (r *Runner) Run(s *Script) (Result, error) {
	r.Editor.Enter()
	defer r.Editor.Exit()

	var res Result
	for i, step := range s.Steps {
		if err := r.apply(step); err != nil {
			return res, err
		}
		if r.Editor.GeometryChanged() {
			res.Rebuilds++
		}
		r.Editor.Flush()
		res.Steps = i + 1
	}

	res.Checkpoints = r.History.Labels()
	res.Selected = r.Editor.SelectedIndex()
	r.logger.Debug("replay finished", "steps", res.Steps, "shapes", r.Editor.Shapes().Len())
	return res, nil
}

func (r *Runner) apply(step Step) error {
	button, err := parseButton(step.Button)
	if err != nil {
		return err
	}
	mods := editor.ModNone
	if step.Alt {
		mods = editor.ModAlternate
	}
	pointer := func(kind editor.EventKind) {
		r.Editor.HandleEvent(editor.Event{
			Kind:      kind,
			Button:    button,
			Modifiers: mods,
			Screen:    geometry.NewVector2(step.X, step.Y),
		})
	}

	switch strings.ToLower(step.Action) {
	case ActionMove:
		pointer(editor.PointerMove)
	case ActionDown:
		pointer(editor.PointerDown)
	case ActionUp:
		pointer(editor.PointerUp)
	case ActionDrag:
		pointer(editor.PointerDrag)
	case ActionClick:
		pointer(editor.PointerMove)
		pointer(editor.PointerDown)
		pointer(editor.PointerUp)
	case ActionUndo:
		if _, err := r.History.Undo(r.Editor.Shapes()); err != nil && !errors.Is(err, history.ErrNothingToUndo) {
			return err
		}
	case ActionRedo:
		if _, err := r.History.Redo(r.Editor.Shapes()); err != nil && !errors.Is(err, history.ErrNothingToRedo) {
			return err
		}
	case ActionSelect:
		r.Editor.SelectShape(step.Index)
	case ActionDeleteShape:
		r.Editor.DeleteShape(step.Index)
	default:
		return ErrUnknownAction
	}
	return nil
}
