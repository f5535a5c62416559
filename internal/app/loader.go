package app

import (
	"fmt"
	"path/filepath"

	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/philipparndt/goshapes/pkg/watcher"
)

// reloadLabel is the undo label of an external change to the document
const reloadLabel = "Reload"

// setupFileWatcher reports external changes of the document. The callback
// runs on the watcher's timer goroutine and only raises a flag; the frame
// loop does the reload.
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(app.FileWatch.debounce, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch([]string{app.Document.path}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	fmt.Printf("Watching file for changes: %s\n", app.Document.path)

	return nil
}

// reloadDocument replaces the shapes with the document on disk. The previous
// state is recorded so the reload can be undone.
func (app *App) reloadDocument() {
	doc, err := shape.Load(app.Document.path)
	if err != nil {
		app.setStatus(fmt.Sprintf("Reload failed: %v", err))
		app.logger.Warn("reload failed", "file", app.Document.path, "error", err)
		return
	}

	shapes := app.editor.Shapes()
	app.history.RecordCheckpoint(shapes, reloadLabel)
	shapes.Restore(doc.Shapes)
	app.editor.OnUndoRedo()
	app.editor.Flush()

	app.Document.dirty = false
	app.setStatus(fmt.Sprintf("Reloaded %s (%d shapes)", filepath.Base(app.Document.path), shapes.Len()))
}

// save writes the document and keeps the watcher from reporting the write
func (app *App) save() error {
	if app.FileWatch.fileWatcher != nil {
		app.FileWatch.fileWatcher.Suppress(app.Document.path, app.FileWatch.debounce*4)
	}
	if err := shape.Save(app.Document.path, app.Document.doc); err != nil {
		return err
	}
	app.Document.dirty = false
	app.setStatus("Saved " + filepath.Base(app.Document.path))
	return nil
}
