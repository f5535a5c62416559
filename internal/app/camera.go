package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshapes/pkg/geometry"
	"github.com/philipparndt/goshapes/pkg/shape"
)

// cameraViewport turns mouse positions into world rays through the current
// camera. It implements editor.Viewport.
type cameraViewport struct {
	camera *rl.Camera3D
}

// ScreenToWorldRay implements editor.Viewport
func (v cameraViewport) ScreenToWorldRay(screen geometry.Vector2) geometry.Ray {
	ray := rl.GetMouseRay(rl.Vector2{X: float32(screen.X), Y: float32(screen.Y)}, *v.camera)
	return geometry.NewRay(
		geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
		geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
	)
}

// initCamera frames the document's points, or the origin of the drawing
// plane when there are none.
func (app *App) initCamera(shapes *shape.Collection, planeHeight float64) {
	center := rl.Vector3{Y: float32(planeHeight)}
	extent := 10.0

	var minX, maxX, minZ, maxZ float64
	first := true
	for _, s := range shapes.Shapes() {
		for _, p := range s.Points {
			if first {
				minX, maxX, minZ, maxZ = p.X, p.X, p.Z, p.Z
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minZ = math.Min(minZ, p.Z)
			maxZ = math.Max(maxZ, p.Z)
		}
	}
	if !first {
		center.X = float32((minX + maxX) / 2)
		center.Z = float32((minZ + maxZ) / 2)
		extent = math.Max(extent, math.Max(maxX-minX, maxZ-minZ))
	}

	distance := float32(extent * 1.5)

	app.Camera.target = center
	app.Camera.home = center
	app.Camera.distance = distance
	app.Camera.angleX = 1.0
	app.Camera.angleY = 0

	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = 1.0
	app.Camera.defaultAngleY = 0

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: distance, Z: distance},
		Target:     center,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Camera.home
}

// setCameraTopView looks straight down onto the drawing plane
func (app *App) setCameraTopView() {
	app.Camera.angleX = maxPitch
	app.Camera.angleY = 0
}

// maxPitch keeps the orbit just short of the pole, where the up vector
// would become parallel to the view direction.
const maxPitch = 1.55

// orbit rotates the camera around its target based on mouse delta
func (app *App) orbit(delta rl.Vector2) {
	app.Camera.angleY += delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01

	if app.Camera.angleX > maxPitch {
		app.Camera.angleX = maxPitch
	}
	if app.Camera.angleX < 0.05 {
		app.Camera.angleX = 0.05
	}
}

// zoom scales the camera distance by the wheel movement
func (app *App) zoom(wheel float32) {
	app.Camera.distance *= 1.0 - wheel*0.1
	if app.Camera.distance < 1.0 {
		app.Camera.distance = 1.0
	}
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}
