package model

import "math"

// Footprint is the rotated, offset rectangle an object occupies on the
// floor plane, plus its vertical extent. It is derived state: recompute
// it whenever the pose changes. Point count and winding are stable for
// the same inputs.
type Footprint struct {
	Points []Vector2 `json:"points"`
	MaxY   float64   `json:"max_y"`
	MinY   float64   `json:"min_y"`
}

// Centroid returns the average of the corner points.
func (f Footprint) Centroid() Vector2 {
	var c Vector2
	if len(f.Points) == 0 {
		return c
	}
	for _, p := range f.Points {
		c.X += p.X
		c.Z += p.Z
	}
	c.X /= float64(len(f.Points))
	c.Z /= float64(len(f.Points))
	return c
}

// Area returns the enclosed polygon area (shoelace formula). For any
// rotation this equals dimensions.X * dimensions.Z of the source object.
func (f Footprint) Area() float64 {
	n := len(f.Points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		p := f.Points[i]
		q := f.Points[(i+1)%n]
		sum += p.X*q.Z - q.X*p.Z
	}
	return math.Abs(sum) / 2
}

// ExpandBy inflates the rectangle outward: each corner moves away from
// the centroid along its own diagonal so the half-diagonal grows by
// margin. Rotation is preserved.
func (f Footprint) ExpandBy(margin float64) Footprint {
	c := f.Centroid()
	points := make([]Vector2, len(f.Points))
	for i, p := range f.Points {
		vx := p.X - c.X
		vz := p.Z - c.Z
		dist := math.Hypot(vx, vz)
		if dist == 0 {
			points[i] = p
			continue
		}
		scale := (dist + margin) / dist
		points[i] = Vector2{X: c.X + vx*scale, Z: c.Z + vz*scale}
	}
	return Footprint{Points: points, MaxY: f.MaxY, MinY: f.MinY}
}
