package geom

import (
	"math"

	"github.com/piwi3910/SceneForge/internal/model"
)

const epsilon = 1e-9

// orientation returns >0 if p->q->r turns counterclockwise, <0 for
// clockwise, 0 for collinear.
func orientation(p, q, r model.Vector2) float64 {
	return (q.X-p.X)*(r.Z-p.Z) - (q.Z-p.Z)*(r.X-p.X)
}

// onSegment reports whether r, known collinear with p-q, lies on the
// segment p-q.
func onSegment(p, q, r model.Vector2) bool {
	return r.X <= math.Max(p.X, q.X)+epsilon && r.X >= math.Min(p.X, q.X)-epsilon &&
		r.Z <= math.Max(p.Z, q.Z)+epsilon && r.Z >= math.Min(p.Z, q.Z)-epsilon
}

// SegmentsIntersect reports whether segments p1-p2 and q1-q2 share any
// point, including collinear overlap and shared endpoints.
func SegmentsIntersect(p1, p2, q1, q2 model.Vector2) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if ((o1 > 0 && o2 < 0) || (o1 < 0 && o2 > 0)) &&
		((o3 > 0 && o4 < 0) || (o3 < 0 && o4 > 0)) {
		return true
	}

	if math.Abs(o1) < epsilon && onSegment(p1, p2, q1) {
		return true
	}
	if math.Abs(o2) < epsilon && onSegment(p1, p2, q2) {
		return true
	}
	if math.Abs(o3) < epsilon && onSegment(q1, q2, p1) {
		return true
	}
	if math.Abs(o4) < epsilon && onSegment(q1, q2, p2) {
		return true
	}
	return false
}

// PointInPolygon reports whether the point is inside the polygon (ray
// casting; boundary points count as inside).
func PointInPolygon(point model.Vector2, polygon []model.Vector2) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := polygon[i]
		pj := polygon[j]
		if math.Abs(orientation(pi, pj, point)) < epsilon && onSegment(pi, pj, point) {
			return true
		}
		if (pi.Z > point.Z) != (pj.Z > point.Z) {
			crossX := (pj.X-pi.X)*(point.Z-pi.Z)/(pj.Z-pi.Z) + pi.X
			if point.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// SegmentIntersectsFootprint reports whether the segment a-b touches the
// footprint rectangle: it crosses an edge, or either endpoint lies
// inside.
func SegmentIntersectsFootprint(a, b model.Vector2, f model.Footprint) bool {
	n := len(f.Points)
	for i := 0; i < n; i++ {
		if SegmentsIntersect(a, b, f.Points[i], f.Points[(i+1)%n]) {
			return true
		}
	}
	return PointInPolygon(a, f.Points) || PointInPolygon(b, f.Points)
}

// ClipConvex clips a subject polygon against a convex clip polygon
// (Sutherland-Hodgman). Either winding is accepted for both polygons.
// The result may be empty when the polygons do not overlap.
func ClipConvex(subject, clip []model.Vector2) []model.Vector2 {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	// Normalize the clip winding so "inside" is always the left side.
	if signedArea(clip) < 0 {
		clip = reversed(clip)
	}

	output := subject
	n := len(clip)
	for i := 0; i < n && len(output) > 0; i++ {
		edgeA := clip[i]
		edgeB := clip[(i+1)%n]

		input := output
		output = nil
		m := len(input)
		for j := 0; j < m; j++ {
			current := input[j]
			previous := input[(j+m-1)%m]

			currentInside := orientation(edgeA, edgeB, current) >= -epsilon
			previousInside := orientation(edgeA, edgeB, previous) >= -epsilon

			if currentInside {
				if !previousInside {
					output = append(output, lineIntersection(previous, current, edgeA, edgeB))
				}
				output = append(output, current)
			} else if previousInside {
				output = append(output, lineIntersection(previous, current, edgeA, edgeB))
			}
		}
	}
	return output
}

// VerticalSlice returns the z interval where the vertical line x = at
// crosses the polygon. ok is false when the line misses it.
func VerticalSlice(polygon []model.Vector2, at float64) (minZ, maxZ float64, ok bool) {
	n := len(polygon)
	if n < 3 {
		return 0, 0, false
	}
	for i := 0; i < n; i++ {
		p := polygon[i]
		q := polygon[(i+1)%n]
		if (p.X < at-epsilon && q.X < at-epsilon) || (p.X > at+epsilon && q.X > at+epsilon) {
			continue
		}
		if math.Abs(q.X-p.X) < epsilon {
			// Edge lies on the line; both endpoints count.
			for _, z := range []float64{p.Z, q.Z} {
				minZ, maxZ, ok = accumulate(minZ, maxZ, ok, z)
			}
			continue
		}
		t := (at - p.X) / (q.X - p.X)
		if t < -epsilon || t > 1+epsilon {
			continue
		}
		minZ, maxZ, ok = accumulate(minZ, maxZ, ok, p.Z+t*(q.Z-p.Z))
	}
	return minZ, maxZ, ok
}

func accumulate(minZ, maxZ float64, ok bool, z float64) (float64, float64, bool) {
	if !ok {
		return z, z, true
	}
	return math.Min(minZ, z), math.Max(maxZ, z), true
}

func signedArea(polygon []model.Vector2) float64 {
	sum := 0.0
	n := len(polygon)
	for i := 0; i < n; i++ {
		p := polygon[i]
		q := polygon[(i+1)%n]
		sum += p.X*q.Z - q.X*p.Z
	}
	return sum / 2
}

func reversed(polygon []model.Vector2) []model.Vector2 {
	out := make([]model.Vector2, len(polygon))
	for i, p := range polygon {
		out[len(polygon)-1-i] = p
	}
	return out
}

// lineIntersection returns the intersection of infinite lines a1-a2 and
// b1-b2. Callers guarantee the lines are not parallel.
func lineIntersection(a1, a2, b1, b2 model.Vector2) model.Vector2 {
	d1x := a2.X - a1.X
	d1z := a2.Z - a1.Z
	d2x := b2.X - b1.X
	d2z := b2.Z - b1.Z

	denom := d1x*d2z - d1z*d2x
	if math.Abs(denom) < epsilon {
		return a2
	}
	t := ((b1.X-a1.X)*d2z - (b1.Z-a1.Z)*d2x) / denom
	return model.Vector2{X: a1.X + t*d1x, Z: a1.Z + t*d1z}
}

// RoomPolygon returns the room's floor rectangle, optionally inset on
// each axis.
func RoomPolygon(room model.RoomDimensions, insetX, insetZ float64) []model.Vector2 {
	halfX := room.X/2 - insetX
	halfZ := room.Z/2 - insetZ
	if halfX <= 0 || halfZ <= 0 {
		return nil
	}
	return []model.Vector2{
		{X: halfX, Z: halfZ},
		{X: halfX, Z: -halfZ},
		{X: -halfX, Z: -halfZ},
		{X: -halfX, Z: halfZ},
	}
}
