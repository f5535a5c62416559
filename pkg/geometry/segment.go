package geometry

import "gonum.org/v1/gonum/spatial/r2"

// PointToSegmentDistance2D returns the distance from p to the segment a-b
// measured in the XZ plane. The height of the three points is ignored.
func PointToSegmentDistance2D(p, a, b Vector3) float64 {
	return distanceToSegmentXZ(p.ToXZ(), a.ToXZ(), b.ToXZ())
}

func distanceToSegmentXZ(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	lenSq := r2.Norm2(ab)
	if lenSq == 0 {
		return r2.Norm(r2.Sub(p, a))
	}

	t := r2.Dot(r2.Sub(p, a), ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm(r2.Sub(p, closest))
}
