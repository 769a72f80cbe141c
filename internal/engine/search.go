package engine

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/piwi3910/SceneForge/internal/geom"
	"github.com/piwi3910/SceneForge/internal/model"
)

// SampleFn produces one sampled value per call.
type SampleFn func(rng *rand.Rand) float64

// Generators customizes how CalcObjPos samples candidate poses. Nil
// fields fall back to the defaults: uniform x/z within the half-room
// extents rounded to PositionDigits, and rotation drawn uniformly from
// the 45-degree direction set.
type Generators struct {
	X        SampleFn
	Z        SampleFn
	Rotation SampleFn
}

// FixedSample returns a SampleFn that always yields v. Useful for
// pinning one axis while the others stay random.
func FixedSample(v float64) SampleFn {
	return func(*rand.Rand) float64 { return v }
}

// CalcObjPos searches for a valid position and rotation for the object,
// retrying up to MaxTries. A candidate is accepted when its footprint is
// fully inside the room and collides with neither the performer square
// nor any footprint already in the attempt. On acceptance the footprint
// is appended to the attempt and the location returned.
//
// Exhausting the retry budget is an ordinary outcome and returns nil,
// never an error.
func (s *Session) CalcObjPos(performerPosition model.Vector3, attempt *Attempt, spec model.ObjectSpec, gen Generators) *model.Location {
	gen = s.withDefaults(gen)
	performerFP := s.performerFootprint(performerPosition)

	for try := 0; try < s.settings.MaxTries; try++ {
		x := gen.X(s.rng)
		z := gen.Z(s.rng)
		rotationY := spec.Rotation.Y + gen.Rotation(s.rng)

		position := model.Vector3{X: x, Y: spec.PositionY, Z: z}
		footprint := geom.CreateBounds(spec.Dimensions, spec.Offset, position, rotationY, spec.PositionY)

		if !s.fits(footprint, performerFP, attempt.Footprints()) {
			continue
		}

		attempt.Add(footprint)
		s.log.Debug("placement accepted",
			zap.Int("tries", try+1),
			zap.Float64("x", x),
			zap.Float64("z", z),
			zap.Float64("rotation_y", rotationY),
		)
		return &model.Location{
			Position:  position,
			Rotation:  model.Vector3{X: spec.Rotation.X, Y: rotationY, Z: spec.Rotation.Z},
			Footprint: footprint,
		}
	}

	s.log.Debug("placement exhausted", zap.Int("max_tries", s.settings.MaxTries))
	return nil
}

func (s *Session) withDefaults(gen Generators) Generators {
	if gen.X == nil {
		gen.X = s.uniformAxis(s.room.X)
	}
	if gen.Z == nil {
		gen.Z = s.uniformAxis(s.room.Z)
	}
	if gen.Rotation == nil {
		gen.Rotation = s.defaultRotation()
	}
	return gen
}

// uniformAxis samples uniformly within the half extents of one room
// axis, rounded to the configured number of digits.
func (s *Session) uniformAxis(extent float64) SampleFn {
	half := extent / 2
	return func(rng *rand.Rand) float64 {
		return roundTo(-half+rng.Float64()*extent, s.settings.PositionDigits)
	}
}

// defaultRotation samples from the 8-direction set {0, 45, ..., 315}
// (or the equivalent for a custom RotationStep).
func (s *Session) defaultRotation() SampleFn {
	step := s.settings.RotationStep
	if step <= 0 {
		step = 45
	}
	count := int(360 / step)
	return func(rng *rand.Rand) float64 {
		return float64(rng.Intn(count)) * step
	}
}

func roundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}
