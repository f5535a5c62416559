package geometry

// Vector2 is a screen-space position in pixels
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new screen position
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}
