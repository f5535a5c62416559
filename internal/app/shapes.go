package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshapes/internal/editor"
)

var (
	colorHovered  = rl.Red
	colorDragged  = rl.Black
	colorSelected = rl.White
	colorIdle     = rl.Gray
)

// drawShapes draws outlines and point handles as described by the editor.
// The hovered edge is solid red, edges of the selected shape are dotted
// black and other shapes are grey.
func drawShapes(frame editor.Frame) {
	handle := float32(frame.HandleRadius) * 0.3
	edgeWidth := float32(frame.HandleRadius) * 0.04

	for _, s := range frame.Shapes {
		for _, e := range s.Edges {
			from, to := toRaylib(e.From), toRaylib(e.To)
			switch {
			case e.Hovered:
				rl.DrawCylinderEx(from, to, edgeWidth*2, edgeWidth*2, 8, colorHovered)
			case s.Selected:
				drawDotted(from, to, handle, rl.Black)
			default:
				rl.DrawLine3D(from, to, colorIdle)
			}
		}

		for _, p := range s.Points {
			rl.DrawSphere(toRaylib(p.Position), handle, pointColor(p.State, s.Selected))
		}
	}
}

func pointColor(state editor.PointState, selected bool) rl.Color {
	switch {
	case state == editor.PointHovered:
		return colorHovered
	case state == editor.PointDragged:
		return colorDragged
	case selected:
		return colorSelected
	default:
		return colorIdle
	}
}

// drawDotted draws a line as dashes of the given length
func drawDotted(from, to rl.Vector3, dash float32, color rl.Color) {
	length := rl.Vector3Distance(from, to)
	if length == 0 || dash <= 0 {
		return
	}
	dir := rl.Vector3Scale(rl.Vector3Subtract(to, from), 1/length)

	for d := float32(0); d < length; d += dash * 2 {
		end := d + dash
		if end > length {
			end = length
		}
		rl.DrawLine3D(
			rl.Vector3Add(from, rl.Vector3Scale(dir, d)),
			rl.Vector3Add(from, rl.Vector3Scale(dir, end)),
			color,
		)
	}
}
