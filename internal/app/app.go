// Package app is the interactive shape editor window built on raylib.
package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshapes/internal/editor"
	"github.com/philipparndt/goshapes/pkg/history"
	"github.com/philipparndt/goshapes/pkg/mesh"
	"github.com/philipparndt/goshapes/pkg/shape"
)

// Options configures the editor window
type Options struct {
	Path     string
	Document *shape.Document
	Editor   editor.Options
	// Watch reloads the document when it changes on disk
	Watch    bool
	Debounce time.Duration
	Logger   *slog.Logger
}

type App struct {
	Camera      CameraState
	Document    DocumentState
	Mesh        MeshData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState

	editor  *editor.Editor
	history *history.Log
	logger  *slog.Logger
}

// Run opens the window and edits the document until the window is closed
func Run(opts Options) error {
	if opts.Document == nil {
		return fmt.Errorf("no document to edit")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		Document: DocumentState{
			path: opts.Path,
			doc:  opts.Document,
		},
		View: ViewSettings{
			showFilled: true,
			showGrid:   true,
			showHelp:   true,
		},
		FileWatch: FileWatchState{
			debounce: opts.Debounce,
		},
		UI:      UIState{hoveredRow: -1},
		history: history.NewLog(0),
		logger:  logger.With("component", "app"),
	}

	// Initialize window
	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "GoShapes - "+filepath.Base(opts.Path))
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	app.UI.font = rl.GetFontDefault()
	app.Mesh.material = rl.LoadMaterialDefault()
	app.initCamera(opts.Document.Shapes, opts.Editor.PlaneHeight)

	app.Mesh.builder = mesh.NewBuilder(filepath.Base(opts.Path), logger, app.uploadModel)
	app.editor = editor.New(opts.Document.Shapes, editor.Services{
		Viewport: cameraViewport{camera: &app.Camera.camera},
		Undo:     app.history,
		Mesh:     app.Mesh.builder,
		Host:     app,
	}, opts.Editor)

	if opts.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.editor.Enter()
	defer app.editor.Exit()
	app.editor.Flush()

	for !rl.WindowShouldClose() {
		if app.FileWatch.needsReload.CompareAndSwap(true, false) {
			app.reloadDocument()
		}

		app.layoutShapeList()
		app.handleInput()
		app.updateCamera()

		if app.editor.GeometryChanged() {
			app.Document.dirty = true
		}
		// The mesh upload happens inside Flush, on this thread. The window is
		// redrawn every frame anyway, so the repaint hint is not needed.
		app.editor.Flush()

		app.draw()
	}

	if app.Mesh.uploaded {
		rl.UnloadMesh(&app.Mesh.mesh)
	}
	if app.Document.dirty {
		fmt.Println("Warning: unsaved changes were discarded (Ctrl+S saves)")
	}
	return nil
}

func (app *App) draw() {
	frame := app.editor.Frame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

	rl.BeginMode3D(app.Camera.camera)

	if app.View.showGrid {
		drawGrid(frame.PlaneHeight)
	}
	if app.View.showFilled && app.Mesh.uploaded {
		rl.DrawMesh(app.Mesh.mesh, app.Mesh.material, rl.MatrixIdentity())
	}
	if app.View.showWireframe {
		app.drawWireframe()
	}
	drawShapes(frame)

	rl.EndMode3D()

	app.drawUI()

	rl.EndDrawing()
}
