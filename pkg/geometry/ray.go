package geometry

// Ray is a half line starting at Origin. Direction is expected to be
// normalized but nothing here depends on it.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray from an origin and a direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// PointAt returns origin + direction*distance
func (r Ray) PointAt(distance float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(distance))
}

// ProjectToPlane intersects the ray with the horizontal plane y = planeHeight.
//
//	O + dir*d = P,  O.y + dir.y*d = h  =>  d = (h - O.y) / dir.y
//
// A ray parallel to the plane yields a non-finite position; ok is false in
// that case and the caller must not use the result.
func ProjectToPlane(ray Ray, planeHeight float64) (Vector3, bool) {
	d := (planeHeight - ray.Origin.Y) / ray.Direction.Y
	p := ray.PointAt(d)
	if !p.IsFinite() {
		return p, false
	}
	return p, true
}
