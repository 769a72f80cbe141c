// Package geom implements the planar geometry the placement engine is
// built on: footprint construction, separating-axis collision, sightline
// intersection, and convex polygon clipping.
package geom

import (
	"math"

	"github.com/piwi3910/SceneForge/internal/model"
)

// CreateBounds computes the rotated, offset footprint of an object.
// Half extents are taken from dimensions, the four corners are offset in
// object space, rotated by rotationY, then translated to position.
//
// The rotation convention is clockwise from north (+Z): the applied
// radian amount is pi * (2 - rotationY/180). Any real rotation value is
// valid; trig periodicity makes explicit wrapping unnecessary.
func CreateBounds(dimensions model.Vector3, offset model.Vector2, position model.Vector3, rotationY, standingY float64) model.Footprint {
	dx := dimensions.X / 2
	dz := dimensions.Z / 2

	corners := [4]model.Vector2{
		{X: dx + offset.X, Z: dz + offset.Z},
		{X: dx + offset.X, Z: -dz + offset.Z},
		{X: -dx + offset.X, Z: -dz + offset.Z},
		{X: -dx + offset.X, Z: dz + offset.Z},
	}

	points := make([]model.Vector2, 0, len(corners))
	for _, c := range corners {
		rotated := RotatePoint(c, rotationY)
		points = append(points, model.Vector2{
			X: position.X + rotated.X,
			Z: position.Z + rotated.Z,
		})
	}

	return model.Footprint{
		Points: points,
		MaxY:   standingY + dimensions.Y,
		MinY:   standingY,
	}
}

// RotatePoint rotates a point around the origin by a clockwise-from-
// north angle in degrees, using the same convention as CreateBounds.
func RotatePoint(p model.Vector2, rotationY float64) model.Vector2 {
	radians := math.Pi * (2 - rotationY/180)
	sin := math.Sin(radians)
	cos := math.Cos(radians)
	return model.Vector2{
		X: p.X*cos - p.Z*sin,
		Z: p.X*sin + p.Z*cos,
	}
}

// PerformerFootprint is the fixed square the performer occupies, centered
// on its reported position.
func PerformerFootprint(position model.Vector3, halfWidth, height float64) model.Footprint {
	side := halfWidth * 2
	return CreateBounds(
		model.Vector3{X: side, Y: height, Z: side},
		model.Vector2{},
		position,
		0,
		position.Y,
	)
}

// WithinRoom reports whether every footprint corner lies inside the
// room's floor rectangle [-X/2, X/2] x [-Z/2, Z/2].
func WithinRoom(f model.Footprint, room model.RoomDimensions) bool {
	halfX := room.X / 2
	halfZ := room.Z / 2
	for _, p := range f.Points {
		if p.X < -halfX || p.X > halfX || p.Z < -halfZ || p.Z > halfZ {
			return false
		}
	}
	return true
}
