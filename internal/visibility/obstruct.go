// Package visibility answers line-of-sight questions: does a candidate
// footprint block the view from a viewpoint to a target footprint.
//
// Two tests exist on purpose. The full-obstruction test is strict (every
// sampled sightline must be blocked) so an object is only ever declared
// hidden when it truly is. The partial-obstruction test is lenient (any
// blocked sightline counts) so callers deciding that an object must NOT
// block a companion get no false negatives.
package visibility

import (
	"github.com/piwi3910/SceneForge/internal/geom"
	"github.com/piwi3910/SceneForge/internal/model"
)

// FullyObstructsTarget reports whether the candidate blocks every
// sightline from the viewpoint to the target's 4 corners and centroid.
func FullyObstructsTarget(viewpoint model.Vector3, target, candidate model.Footprint) bool {
	eye := model.Vector2{X: viewpoint.X, Z: viewpoint.Z}
	for _, p := range fullSamplePoints(target) {
		if !geom.SegmentIntersectsFootprint(eye, p, candidate) {
			return false
		}
	}
	return true
}

// PartlyObstructsTarget reports whether the candidate blocks any of 13
// sightlines from the viewpoint to points on the target: corners, edge
// midpoints, quarter-edge points, and the centroid.
func PartlyObstructsTarget(viewpoint model.Vector3, target, candidate model.Footprint) bool {
	eye := model.Vector2{X: viewpoint.X, Z: viewpoint.Z}
	for _, p := range partialSamplePoints(target) {
		if geom.SegmentIntersectsFootprint(eye, p, candidate) {
			return true
		}
	}
	return false
}

func fullSamplePoints(target model.Footprint) []model.Vector2 {
	points := make([]model.Vector2, 0, len(target.Points)+1)
	points = append(points, target.Points...)
	return append(points, target.Centroid())
}

func partialSamplePoints(target model.Footprint) []model.Vector2 {
	n := len(target.Points)
	points := make([]model.Vector2, 0, 3*n+1)
	for i := 0; i < n; i++ {
		p := target.Points[i]
		q := target.Points[(i+1)%n]
		points = append(points,
			p,
			lerp(p, q, 0.25),
			lerp(p, q, 0.5),
		)
	}
	return append(points, target.Centroid())
}

func lerp(p, q model.Vector2, t float64) model.Vector2 {
	return model.Vector2{
		X: p.X + (q.X-p.X)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}
