package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goshapes/internal/config"
	"github.com/philipparndt/goshapes/internal/editor"
	"github.com/philipparndt/goshapes/internal/logging"
	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/history"
	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/philipparndt/goshapes/pkg/viewer"
	"github.com/philipparndt/goshapes/pkg/watcher"
)

// App is a lightweight editing panel for a document: a shape list next to a
// top-down preview that runs the same editor as the 3D window.
type App struct {
	window  fyne.Window
	path    string
	doc     *shape.Document
	editor  *editor.Editor
	history *history.Log
	watcher *watcher.FileWatcher
	logger  *slog.Logger

	list    *widget.List
	preview *viewer.ShapeView
	details *widget.Label
	status  *widget.Label
	undoBtn *widget.Button
	redoBtn *widget.Button
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: goshapes-list <document.yaml>")
		os.Exit(1)
	}
	path := os.Args[1]

	cfg, err := config.Resolve("", path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.WarnUnknown(logger)

	doc, err := shape.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("GoShapes - " + filepath.Base(path))

	panel := &App{
		window:  w,
		path:    path,
		doc:     doc,
		history: history.NewLog(0),
		logger:  logger,
	}
	options := cfg.EditorOptions(logger)
	if doc.HandleRadius > 0 {
		options.HandleRadius = doc.HandleRadius
	}
	panel.editor = editor.New(doc.Shapes, editor.Services{Undo: panel.history}, options)
	panel.editor.Enter()
	defer panel.editor.Exit()

	panel.setupMainUI()

	if cfg.Watcher.Enabled {
		if err := panel.watch(time.Duration(cfg.Watcher.DebounceMS) * time.Millisecond); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		} else {
			defer panel.watcher.Close()
		}
	}

	w.Resize(fyne.NewSize(900, 640))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.details = widget.NewLabel("")
	a.status = widget.NewLabel("")

	a.list = widget.NewList(
		func() int { return a.doc.Shapes.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("Shape") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			s, ok := a.doc.Shapes.At(id)
			if !ok {
				return
			}
			obj.(*widget.Label).SetText(fmt.Sprintf("Shape %d  (%d points)", id+1, s.Len()))
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		a.editor.SelectShape(id)
		a.updateDetails()
		a.updatePreview()
	}

	a.preview = viewer.NewShapeView(a.editor.Options().PlaneHeight)
	a.preview.SetOnPointer(a.handlePointer)

	deleteButton := widget.NewButton("Delete Shape", func() {
		index := a.editor.SelectedIndex()
		if index == editor.None {
			return
		}
		dialog.ShowConfirm("Delete Shape", fmt.Sprintf("Delete shape %d?", index+1), func(ok bool) {
			if ok && a.editor.DeleteShape(index) {
				a.setStatus(fmt.Sprintf("Deleted shape %d", index+1))
				a.refresh()
			}
		}, a.window)
	})

	a.undoBtn = widget.NewButton("Undo", func() {
		label, err := a.history.Undo(a.doc.Shapes)
		a.afterHistory("Undo", label, err, history.ErrNothingToUndo)
	})
	a.redoBtn = widget.NewButton("Redo", func() {
		label, err := a.history.Redo(a.doc.Shapes)
		a.afterHistory("Redo", label, err, history.ErrNothingToRedo)
	})

	saveButton := widget.NewButton("Save", func() {
		if a.watcher != nil {
			a.watcher.Suppress(a.path, time.Second)
		}
		if err := shape.Save(a.path, a.doc); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.setStatus("Saved " + filepath.Base(a.path))
	})

	buttons := container.NewGridWithColumns(2, deleteButton, saveButton, a.undoBtn, a.redoBtn)
	bottom := container.NewVBox(
		widget.NewSeparator(),
		a.details,
		buttons,
		a.status,
	)

	split := container.NewHSplit(a.list, a.preview)
	split.Offset = 0.35

	content := container.NewBorder(
		widget.NewLabel(a.path), // top
		bottom,                  // bottom
		nil,                     // left
		nil,                     // right
		split,                   // center
	)
	a.window.SetContent(content)
	a.refresh()
}

func (a *App) afterHistory(action, label string, err, empty error) {
	switch {
	case errors.Is(err, empty):
		a.setStatus("Nothing to " + action)
	case err != nil:
		dialog.ShowError(err, a.window)
	default:
		a.setStatus(action + " " + label)
	}
	a.refresh()
}

var pointerKinds = map[viewer.PointerKind]editor.EventKind{
	viewer.PointerMove: editor.PointerMove,
	viewer.PointerDown: editor.PointerDown,
	viewer.PointerDrag: editor.PointerDrag,
	viewer.PointerUp:   editor.PointerUp,
}

// handlePointer feeds pointer events from the preview into the editor
func (a *App) handlePointer(ev viewer.PointerEvent) {
	mods := editor.ModNone
	if ev.Alternate {
		mods = editor.ModAlternate
	}

	a.editor.HandleWorldEvent(editor.Event{Kind: pointerKinds[ev.Kind], Button: editor.ButtonPrimary, Modifiers: mods}, ev.World)

	changed := a.editor.GeometryChanged()
	if !a.editor.Flush() {
		return
	}
	if changed || ev.Kind == viewer.PointerDown {
		a.refresh()
		return
	}
	a.updatePreview()
}

// updatePreview redraws the preview from the editor's current frame
func (a *App) updatePreview() {
	frame := a.editor.Frame()
	outlines := make([]viewer.Outline, len(frame.Shapes))
	for i, s := range frame.Shapes {
		o := viewer.Outline{HoveredEdge: -1, Selected: s.Selected}
		for _, p := range s.Points {
			o.Points = append(o.Points, p.Position)
			o.Highlights = append(o.Highlights, highlight(p.State))
		}
		for _, e := range s.Edges {
			if e.Hovered {
				o.HoveredEdge = e.Index
			}
		}
		outlines[i] = o
	}
	a.preview.SetOutlines(outlines)
}

func highlight(state editor.PointState) viewer.Highlight {
	switch state {
	case editor.PointHovered:
		return viewer.Hovered
	case editor.PointDragged:
		return viewer.Dragged
	default:
		return viewer.Idle
	}
}

// refresh redraws the list after the collection changed and re-applies the
// editor's selection.
func (a *App) refresh() {
	a.list.Refresh()
	a.updatePreview()
	if index := a.editor.SelectedIndex(); index != editor.None {
		a.list.Select(index)
	} else {
		a.list.UnselectAll()
	}
	a.updateDetails()

	if a.history.CanUndo() {
		a.undoBtn.Enable()
	} else {
		a.undoBtn.Disable()
	}
	if a.history.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

func (a *App) updateDetails() {
	s, ok := a.editor.SelectedShape()
	if !ok {
		a.details.SetText("No shape selected")
		return
	}
	text := fmt.Sprintf("ID: %s\nPoints: %d\nArea: %.4f\nPerimeter: %.4f",
		s.ID, s.Len(), s.Area(), s.Perimeter())
	if c, ok := geometry.CentroidXZ(s.Points); ok {
		text += fmt.Sprintf("\nCentroid: (%.3f, %.3f)", c.X, c.Y)
	}
	a.details.SetText(text)
}

func (a *App) setStatus(msg string) {
	a.status.SetText(msg)
	a.logger.Info(msg)
}

// watch reloads the list when the editor window or anything else saves the
// document. Callbacks arrive on the watcher goroutine and are handed to the
// UI thread with fyne.Do.
func (a *App) watch(debounce time.Duration) error {
	fw, err := watcher.NewFileWatcher(debounce, a.logger)
	if err != nil {
		return err
	}
	err = fw.Watch([]string{a.path}, func(string) {
		fyne.Do(a.reload)
	})
	if err != nil {
		fw.Close()
		return err
	}
	fw.Start()
	a.watcher = fw
	return nil
}

func (a *App) reload() {
	doc, err := shape.Load(a.path)
	if err != nil {
		a.setStatus(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	a.history.RecordCheckpoint(a.doc.Shapes, "Reload")
	a.doc.Shapes.Restore(doc.Shapes)
	a.editor.OnUndoRedo()
	a.setStatus("Reloaded " + filepath.Base(a.path))
	a.refresh()
}
