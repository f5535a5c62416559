package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/stl"
)

// uploadModel replaces the GPU mesh with model. Called from the editor's
// Flush, which runs on the render thread.
func (app *App) uploadModel(model *stl.Model) {
	if app.Mesh.uploaded {
		rl.UnloadMesh(&app.Mesh.mesh)
		app.Mesh.uploaded = false
	}
	app.Mesh.model = model
	if model.TriangleCount() == 0 {
		return
	}
	app.Mesh.mesh = stlToRaylibMesh(model)
	app.Mesh.uploaded = true
}

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	// Light direction for baked lighting
	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Min 30% ambient, max 100% diffuse
		light := math.Max(0.3, -normal.Dot(lightDir))
		r := uint8(120 * light)
		g := uint8(170 * light)
		b := uint8(230 * light)

		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 160
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// drawWireframe renders the triangulation edges
func (app *App) drawWireframe() {
	if app.Mesh.model == nil {
		return
	}
	color := rl.NewColor(100, 100, 100, 200)
	lift := float32(0.002)

	for _, t := range app.Mesh.model.Triangles {
		v1 := toRaylib(t.V1)
		v2 := toRaylib(t.V2)
		v3 := toRaylib(t.V3)
		v1.Y += lift
		v2.Y += lift
		v3.Y += lift
		rl.DrawLine3D(v1, v2, color)
		rl.DrawLine3D(v2, v3, color)
		rl.DrawLine3D(v3, v1, color)
	}
}

// drawGrid draws the reference grid on the drawing plane
func drawGrid(planeHeight float64) {
	rl.PushMatrix()
	rl.Translatef(0, float32(planeHeight), 0)
	rl.DrawGrid(40, 1.0)
	rl.PopMatrix()
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
