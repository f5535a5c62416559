package app

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshapes/internal/editor"
	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/history"
)

// handleInput processes user input
func (app *App) handleInput() {
	mousePos := rl.GetMousePosition()
	moved := mousePos != app.Interaction.lastMousePos
	app.Interaction.lastMousePos = mousePos

	app.handleKeys()

	// Camera orbit with right drag, pan with middle drag
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		app.Interaction.orbiting = true
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		app.Interaction.orbiting = false
	}
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		app.Interaction.panning = true
	}
	if rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		app.Interaction.panning = false
	}
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		if app.Interaction.orbiting {
			app.orbit(delta)
		}
		if app.Interaction.panning {
			app.doPan(delta)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoom(wheel)
	}

	overList := rl.CheckCollisionPointRec(mousePos, app.UI.listBounds)
	app.UI.hoveredRow = app.rowAt(mousePos)

	// Clicks on the shape list never reach the editor, but a drag that started
	// in the viewport keeps going when the cursor crosses the list.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && overList {
		if app.UI.hoveredRow >= 0 {
			app.editor.SelectShape(app.UI.hoveredRow)
		}
		return
	}

	if !app.editor.Active() {
		app.Interaction.leftDown = false
		return
	}

	screen := geometry.NewVector2(float64(mousePos.X), float64(mousePos.Y))
	ev := editor.Event{Button: editor.ButtonPrimary, Modifiers: modifiers(), Screen: screen}

	// A release ends the drag even while the camera moves
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && app.Interaction.leftDown {
		app.Interaction.leftDown = false
		ev.Kind = editor.PointerUp
		app.editor.HandleEvent(ev)
		return
	}
	if app.Interaction.orbiting || app.Interaction.panning {
		return
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		app.Interaction.leftDown = true
		ev.Kind = editor.PointerDown
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.leftDown && moved:
		ev.Kind = editor.PointerDrag
	case moved && !overList:
		ev.Kind = editor.PointerMove
	default:
		return
	}

	app.editor.HandleEvent(ev)
}

// modifiers maps held keys to editor modifiers. Shift is the alternate
// modifier, like shift-click in most editors.
func modifiers() editor.Modifiers {
	mods := editor.ModNone
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		mods |= editor.ModAlternate
	}
	if ctrlDown() {
		mods |= editor.ModControl
	}
	return mods
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

func (app *App) handleKeys() {
	ctrl := ctrlDown()
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	switch {
	case ctrl && shift && rl.IsKeyPressed(rl.KeyZ), ctrl && rl.IsKeyPressed(rl.KeyY):
		app.redo()
	case ctrl && rl.IsKeyPressed(rl.KeyZ):
		app.undo()
	case ctrl && rl.IsKeyPressed(rl.KeyS):
		if err := app.save(); err != nil {
			app.setStatus(fmt.Sprintf("Save failed: %v", err))
			app.logger.Error("save failed", "error", err)
		}
	}
	if ctrl {
		return
	}

	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		if index := app.editor.SelectedIndex(); index != editor.None {
			app.editor.DeleteShape(index)
			app.setStatus(fmt.Sprintf("Deleted shape %d", index+1))
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.cycleSelection(shift)
	}
	if rl.IsKeyPressed(rl.KeyE) {
		if app.editor.Active() {
			app.editor.Exit()
		} else {
			app.editor.Enter()
		}
	}

	// View toggles
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
}

func (app *App) undo() {
	label, err := app.history.Undo(app.editor.Shapes())
	if errors.Is(err, history.ErrNothingToUndo) {
		app.setStatus("Nothing to undo")
		return
	}
	app.setStatus("Undo " + label)
}

func (app *App) redo() {
	label, err := app.history.Redo(app.editor.Shapes())
	if errors.Is(err, history.ErrNothingToRedo) {
		app.setStatus("Nothing to redo")
		return
	}
	app.setStatus("Redo " + label)
}

func (app *App) cycleSelection(backwards bool) {
	n := app.editor.Shapes().Len()
	if n == 0 {
		return
	}
	step := 1
	if backwards {
		step = n - 1
	}
	next := (app.editor.SelectedIndex() + step) % n
	if next < 0 {
		next = 0
	}
	app.editor.SelectShape(next)
}
