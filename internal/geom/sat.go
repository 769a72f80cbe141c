package geom

import "github.com/piwi3910/SceneForge/internal/model"

// SATEntry reports whether two footprint rectangles intersect, using the
// separating axis theorem: the rectangles collide iff their projections
// overlap on every candidate axis (the edge normals of both rectangles).
//
// The test is symmetric: SATEntry(a, b) == SATEntry(b, a). It is NOT
// transitive: a colliding with b and b colliding with c says nothing
// about a and c. Callers chaining collision checks must test every pair
// they care about.
func SATEntry(a, b model.Footprint) bool {
	axes := make([]model.Vector2, 0, len(a.Points)+len(b.Points))
	axes = append(axes, edgeNormals(a)...)
	axes = append(axes, edgeNormals(b)...)

	for _, axis := range axes {
		minA, maxA := projectOnto(a, axis)
		minB, maxB := projectOnto(b, axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	return true
}

// edgeNormals returns a perpendicular for each polygon edge. The normals
// are not unit length; projection comparisons only need consistent scale
// per axis.
func edgeNormals(f model.Footprint) []model.Vector2 {
	n := len(f.Points)
	normals := make([]model.Vector2, 0, n)
	for i := 0; i < n; i++ {
		p := f.Points[i]
		q := f.Points[(i+1)%n]
		normals = append(normals, model.Vector2{X: -(q.Z - p.Z), Z: q.X - p.X})
	}
	return normals
}

// projectOnto returns the interval covered by the footprint's corners
// projected onto the axis.
func projectOnto(f model.Footprint, axis model.Vector2) (min, max float64) {
	for i, p := range f.Points {
		d := p.X*axis.X + p.Z*axis.Z
		if i == 0 || d < min {
			min = d
		}
		if i == 0 || d > max {
			max = d
		}
	}
	return min, max
}
