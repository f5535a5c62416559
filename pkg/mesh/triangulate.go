// Package mesh turns the shape collection into a flat triangle mesh lying on
// the ground plane.
package mesh

import (
	"errors"

	"github.com/philipparndt/goshapes/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrNotSimple is returned when no ear can be clipped, which happens for
	// self-intersecting outlines.
	ErrNotSimple = errors.New("polygon is not simple")
	// ErrDegenerate is returned for outlines enclosing no area
	ErrDegenerate = errors.New("polygon has no area")
)

const epsilon = 1e-12

// Triangulate splits a closed outline into triangles by ear clipping in the
// XZ plane. The result holds index triples into points, wound
// counter-clockwise in XZ. Fewer than three points give no triangles.
func Triangulate(points []geometry.Vector3) ([][3]int, error) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	area := geometry.SignedAreaXZ(points)
	if area > -epsilon && area < epsilon {
		return nil, ErrDegenerate
	}

	xz := make([]r2.Vec, n)
	for i, p := range points {
		xz[i] = p.ToXZ()
	}

	remaining := make([]int, n)
	for i := range remaining {
		if area > 0 {
			remaining[i] = i
		} else {
			remaining[i] = n - 1 - i
		}
	}

	triangles := make([][3]int, 0, n-2)
	for len(remaining) > 3 {
		clipped := false
		m := len(remaining)

		for i := 0; i < m; i++ {
			prev := remaining[(i+m-1)%m]
			cur := remaining[i]
			next := remaining[(i+1)%m]

			turn := r2.Cross(r2.Sub(xz[cur], xz[prev]), r2.Sub(xz[next], xz[cur]))
			if turn > -epsilon && turn < epsilon {
				// Collinear vertex, drop it without emitting a sliver
				remaining = append(remaining[:i], remaining[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 {
				continue
			}
			if containsAny(xz, remaining, prev, cur, next) {
				continue
			}

			triangles = append(triangles, [3]int{prev, cur, next})
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}

		if !clipped {
			return nil, ErrNotSimple
		}
	}

	if len(remaining) == 3 {
		a, b, c := remaining[0], remaining[1], remaining[2]
		turn := r2.Cross(r2.Sub(xz[b], xz[a]), r2.Sub(xz[c], xz[b]))
		if turn > epsilon {
			triangles = append(triangles, [3]int{a, b, c})
		}
	}

	return triangles, nil
}

// containsAny reports whether any remaining vertex other than the ear
// corners lies inside or on the ear triangle a-b-c.
func containsAny(xz []r2.Vec, remaining []int, a, b, c int) bool {
	for _, idx := range remaining {
		if idx == a || idx == b || idx == c {
			continue
		}
		p := xz[idx]
		if p == xz[a] || p == xz[b] || p == xz[c] {
			continue
		}
		if inTriangle(p, xz[a], xz[b], xz[c]) {
			return true
		}
	}
	return false
}

func inTriangle(p, a, b, c r2.Vec) bool {
	d1 := r2.Cross(r2.Sub(b, a), r2.Sub(p, a))
	d2 := r2.Cross(r2.Sub(c, b), r2.Sub(p, b))
	d3 := r2.Cross(r2.Sub(a, c), r2.Sub(p, c))
	return d1 >= -epsilon && d2 >= -epsilon && d3 >= -epsilon
}
