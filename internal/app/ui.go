package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshapes/internal/editor"
	"github.com/philipparndt/goshapes/version"
)

const (
	listWidth  = float32(220)
	rowHeight  = float32(22)
	listMargin = float32(10)
	statusTTL  = 3 * time.Second
)

// layoutShapeList computes the shape list rectangles for this frame
func (app *App) layoutShapeList() {
	n := app.editor.Shapes().Len()
	x := float32(rl.GetScreenWidth()) - listWidth - listMargin
	y := listMargin + rowHeight

	app.UI.listBounds = rl.Rectangle{X: x, Y: listMargin, Width: listWidth, Height: rowHeight * float32(n+1)}
	app.UI.rows = app.UI.rows[:0]
	for i := 0; i < n; i++ {
		app.UI.rows = append(app.UI.rows, rl.Rectangle{X: x, Y: y + float32(i)*rowHeight, Width: listWidth, Height: rowHeight})
	}
}

// rowAt returns the shape list row under pos, or -1
func (app *App) rowAt(pos rl.Vector2) int {
	for i, r := range app.UI.rows {
		if rl.CheckCollisionPointRec(pos, r) {
			return i
		}
	}
	return -1
}

// drawUI draws the user interface
func (app *App) drawUI() {
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	// === SHAPES ===
	list := app.UI.listBounds
	rl.DrawRectangleRec(list, rl.NewColor(0, 0, 0, 160))
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("Shapes (%d)", len(app.UI.rows)), rl.Vector2{X: list.X + 6, Y: list.Y + 3}, fontSize16, 1, rl.Yellow)

	selected := app.editor.SelectedIndex()
	for i, row := range app.UI.rows {
		s, ok := app.editor.Shapes().At(i)
		if !ok {
			continue
		}
		switch {
		case i == selected:
			rl.DrawRectangleRec(row, rl.NewColor(60, 90, 140, 220))
		case i == app.UI.hoveredRow:
			rl.DrawRectangleRec(row, rl.NewColor(60, 60, 60, 200))
		}
		label := fmt.Sprintf("Shape %d  %d pts  %.2f", i+1, s.Len(), s.Area())
		rl.DrawTextEx(app.UI.font, label, rl.Vector2{X: row.X + 6, Y: row.Y + 4}, fontSize14, 1, rl.White)
	}

	// === DOCUMENT ===
	y := float32(10)
	lineHeight := float32(20)
	title := app.Document.path
	if app.Document.dirty {
		title += " *"
	}
	rl.DrawTextEx(app.UI.font, title, rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight

	mode := "Editing"
	if !app.editor.Active() {
		mode = "Viewing (E to edit)"
	}
	rl.DrawTextEx(app.UI.font, fmt.Sprintf("  %s | Points: %d | Triangles: %d", mode, app.editor.Shapes().TotalPoints(), app.triangleCount()), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight

	if hovered, ok := app.editor.Frame().Hovered(); ok {
		p := hovered.Position
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Point %d: (%.2f, %.2f, %.2f)", hovered.Index+1, p.X, p.Y, p.Z), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.Green)
	} else {
		c := app.editor.Cursor()
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Cursor: (%.2f, %.2f)", c.X, c.Z), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	}
	y += lineHeight * 2

	if app.View.showHelp {
		y = app.drawHelp(y, lineHeight, fontSize16, fontSize14)
	}

	if app.UI.status != "" && time.Since(app.UI.statusTime) < statusTTL {
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.Orange)
	}

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

func (app *App) drawHelp(y, lineHeight, title, text float32) float32 {
	sections := []struct {
		name  string
		lines []string
	}{
		{"Edit:", []string{
			"  Click: Add point / drag point",
			"  Shift+Click: New shape / delete point",
			"  Delete: Delete shape | Tab: Next shape",
			"  Ctrl+Z / Ctrl+Y: Undo / Redo | Ctrl+S: Save",
			"  E: Toggle editing",
		}},
		{"Navigate:", []string{
			"  Right Drag: Rotate | Middle Drag: Pan",
			"  Mouse Wheel: Zoom | Home: Reset | T: Top",
			"  W: Wireframe | F: Fill | G: Grid | H: Help",
		}},
	}

	for _, s := range sections {
		rl.DrawTextEx(app.UI.font, s.name, rl.Vector2{X: 10, Y: y}, title, 1, rl.Yellow)
		y += lineHeight
		for _, line := range s.lines {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, text, 1, rl.LightGray)
			y += lineHeight
		}
		y += lineHeight
	}
	return y
}

func (app *App) setStatus(msg string) {
	app.UI.status = msg
	app.UI.statusTime = time.Now()
	app.logger.Info(msg)
}

func (app *App) triangleCount() int {
	if app.Mesh.model == nil {
		return 0
	}
	return app.Mesh.model.TriangleCount()
}

// OnEnter implements editor.Host
func (app *App) OnEnter() {
	rl.SetMouseCursor(rl.MouseCursorCrosshair)
}

// OnExit implements editor.Host
func (app *App) OnExit() {
	rl.SetMouseCursor(rl.MouseCursorDefault)
	app.Interaction.leftDown = false
}

var _ editor.Host = (*App)(nil)
