package geometry

import "gonum.org/v1/gonum/spatial/r2"

// SignedAreaXZ returns the shoelace area of a closed polygon projected onto
// the XZ plane. Positive means counter-clockwise when looking down the Y axis
// with X to the right and Z up.
func SignedAreaXZ(points []Vector3) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		a := points[i].ToXZ()
		b := points[(i+1)%n].ToXZ()
		sum += r2.Cross(a, b)
	}
	return sum / 2
}

// PerimeterXZ returns the length of the closed outline in the XZ plane,
// including the closing edge from the last point back to the first.
func PerimeterXZ(points []Vector3) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < n; i++ {
		total += r2.Norm(r2.Sub(points[(i+1)%n].ToXZ(), points[i].ToXZ()))
	}
	return total
}

// CentroidXZ returns the mean of the polygon points in the XZ plane
func CentroidXZ(points []Vector3) (r2.Vec, bool) {
	if len(points) == 0 {
		return r2.Vec{}, false
	}

	var sum r2.Vec
	for _, p := range points {
		sum = r2.Add(sum, p.ToXZ())
	}
	return r2.Scale(1/float64(len(points)), sum), true
}
