package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/piwi3910/SceneForge/internal/geom"
	"github.com/piwi3910/SceneForge/internal/model"
	"github.com/piwi3910/SceneForge/internal/visibility"
)

// LineMode selects the relative placement policy for
// LocationInLineWithObject.
type LineMode int

const (
	// LineFront places the object between the reference and the performer.
	LineFront LineMode = iota
	// LineBehind places the object on the far side of the reference.
	LineBehind
	// LineAdjacentLeft and LineAdjacentRight place the object beside the
	// reference, perpendicular to the performer bearing.
	LineAdjacentLeft
	LineAdjacentRight
	// LineObstruct places the object so it fully blocks the performer's
	// view of the reference.
	LineObstruct
	// LineUnreachable places the object in line but beyond the
	// performer's reach.
	LineUnreachable
)

// bearingDegrees returns the clockwise-from-north bearing from one point
// to another, in degrees.
func bearingDegrees(from, to model.Vector2) float64 {
	return math.Atan2(to.X-from.X, to.Z-from.Z) * 180 / math.Pi
}

// headingVector converts a clockwise-from-north angle in degrees to a
// unit direction on the floor plane.
func headingVector(degrees float64) model.Vector2 {
	radians := degrees * math.Pi / 180
	return model.Vector2{X: math.Sin(radians), Z: math.Cos(radians)}
}

// LocationInFrontOfPerformer samples a point on the visible forward
// segment: from the minimum forward-visibility distance along the
// performer's facing direction out to the far wall. Sampling retries up
// to MaxTries; nil on exhaustion.
func (s *Session) LocationInFrontOfPerformer(performer model.PerformerPose, attempt *Attempt, spec model.ObjectSpec) *model.Location {
	dir := headingVector(performer.Rotation.Y)
	origin := model.Vector2{
		X: performer.Position.X + dir.X*s.settings.MinForwardVisibility,
		Z: performer.Position.Z + dir.Z*s.settings.MinForwardVisibility,
	}

	tMax := rayExitDistance(origin, dir, s.room)
	if tMax <= 0 {
		s.log.Debug("forward segment outside room")
		return nil
	}

	performerFP := s.performerFootprint(performer.Position)
	rotation := s.withDefaults(Generators{}).Rotation

	for try := 0; try < s.settings.MaxTries; try++ {
		t := s.rng.Float64() * tMax
		position := model.Vector3{
			X: roundTo(origin.X+dir.X*t, s.settings.PositionDigits),
			Y: spec.PositionY,
			Z: roundTo(origin.Z+dir.Z*t, s.settings.PositionDigits),
		}
		rotationY := spec.Rotation.Y + rotation(s.rng)
		footprint := geom.CreateBounds(spec.Dimensions, spec.Offset, position, rotationY, spec.PositionY)

		if !s.fits(footprint, performerFP, attempt.Footprints()) {
			continue
		}

		attempt.Add(footprint)
		s.log.Debug("placed in front of performer", zap.Int("tries", try+1))
		return &model.Location{
			Position:  position,
			Rotation:  model.Vector3{X: spec.Rotation.X, Y: rotationY, Z: spec.Rotation.Z},
			Footprint: footprint,
		}
	}
	return nil
}

// LocationInBackOfPerformer samples inside the half-room polygon behind
// the performer: the rear half-plane rotated to the performer's pose,
// clipped to the room inset by the object's half-size. A random vertical
// line through the polygon is chosen, then a random point on the line's
// intersection with it. Nil on exhaustion.
func (s *Session) LocationInBackOfPerformer(performer model.PerformerPose, attempt *Attempt, spec model.ObjectSpec) *model.Location {
	polygon := s.rearPolygon(performer, spec)
	if len(polygon) < 3 {
		s.log.Debug("rear polygon empty")
		return nil
	}

	minX, maxX := polygon[0].X, polygon[0].X
	for _, p := range polygon[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}

	performerFP := s.performerFootprint(performer.Position)
	rotation := s.withDefaults(Generators{}).Rotation

	for try := 0; try < s.settings.MaxTries; try++ {
		x := minX + s.rng.Float64()*(maxX-minX)
		minZ, maxZ, ok := geom.VerticalSlice(polygon, x)
		if !ok {
			continue
		}

		position := model.Vector3{
			X: roundTo(x, s.settings.PositionDigits),
			Y: spec.PositionY,
			Z: roundTo(minZ+s.rng.Float64()*(maxZ-minZ), s.settings.PositionDigits),
		}
		rotationY := spec.Rotation.Y + rotation(s.rng)
		footprint := geom.CreateBounds(spec.Dimensions, spec.Offset, position, rotationY, spec.PositionY)

		if !s.fits(footprint, performerFP, attempt.Footprints()) {
			continue
		}

		attempt.Add(footprint)
		s.log.Debug("placed in back of performer", zap.Int("tries", try+1))
		return &model.Location{
			Position:  position,
			Rotation:  model.Vector3{X: spec.Rotation.X, Y: rotationY, Z: spec.Rotation.Z},
			Footprint: footprint,
		}
	}
	return nil
}

// rearPolygon builds the region behind the performer, clipped to the
// room inset by the object's half-size on each axis.
func (s *Session) rearPolygon(performer model.PerformerPose, spec model.ObjectSpec) []model.Vector2 {
	reach := math.Hypot(s.room.X, s.room.Z)
	local := []model.Vector2{
		{X: -reach, Z: 0},
		{X: reach, Z: 0},
		{X: reach, Z: -reach},
		{X: -reach, Z: -reach},
	}

	rear := make([]model.Vector2, len(local))
	for i, p := range local {
		world := geom.RotatePoint(p, performer.Rotation.Y)
		rear[i] = model.Vector2{
			X: world.X + performer.Position.X,
			Z: world.Z + performer.Position.Z,
		}
	}

	clip := geom.RoomPolygon(s.room, spec.Dimensions.X/2, spec.Dimensions.Z/2)
	if clip == nil {
		return nil
	}
	return geom.ClipConvex(rear, clip)
}

// LocationInLineWithObject scans along the line between the performer
// and a static reference object for a valid placement of the moving
// object. The scan direction depends on the mode; distance steps in
// MinGap increments from the minimum separation to the maximum. The
// first distance passing every check wins; the resulting rotation faces
// the object toward the performer along the bearing (450 - bearing).
// Nil when the scan range is exhausted.
func (s *Session) LocationInLineWithObject(performerPosition model.Vector3, attempt *Attempt, spec, refSpec model.ObjectSpec, reference model.Location, mode LineMode) *model.Location {
	performer2 := model.Vector2{X: performerPosition.X, Z: performerPosition.Z}
	reference2 := model.Vector2{X: reference.Position.X, Z: reference.Position.Z}

	bearing := bearingDegrees(performer2, reference2)
	minDist := s.settings.MinGap + refSpec.MinHalfDimension() + spec.MinHalfDimension()
	diagonalSum := refSpec.HalfDiagonal() + spec.HalfDiagonal()

	maxDist := diagonalSum
	if mode == LineObstruct || mode == LineUnreachable {
		maxDist = math.Hypot(reference2.X-performer2.X, reference2.Z-performer2.Z) - diagonalSum
	}

	angle := bearing
	switch mode {
	case LineBehind:
		angle = bearing + 180
	case LineAdjacentLeft:
		angle = bearing + 90
	case LineAdjacentRight:
		angle = bearing - 90
	}
	dir := headingVector(angle)

	rotationY := 450 - bearing
	performerFP := s.performerFootprint(performerPosition)

	for d := minDist; d <= maxDist; d += s.settings.MinGap {
		position := model.Vector3{
			X: roundTo(reference2.X-dir.X*d, s.settings.PositionDigits),
			Y: spec.PositionY,
			Z: roundTo(reference2.Z-dir.Z*d, s.settings.PositionDigits),
		}
		footprint := geom.CreateBounds(spec.Dimensions, spec.Offset, position, rotationY, spec.PositionY)

		if !s.fits(footprint, performerFP, attempt.Footprints()) {
			continue
		}
		if geom.SATEntry(footprint, reference.Footprint) {
			continue
		}
		if mode == LineObstruct && !visibility.FullyObstructsTarget(performerPosition, reference.Footprint, footprint) {
			continue
		}
		if mode == LineUnreachable && s.reachDistance(performerPosition, position, spec) <= s.settings.MaxReachDistance {
			continue
		}

		attempt.Add(footprint)
		s.log.Debug("placed in line with object",
			zap.Float64("distance", d),
			zap.Float64("bearing", bearing),
		)
		return &model.Location{
			Position:  position,
			Rotation:  model.Vector3{X: spec.Rotation.X, Y: rotationY, Z: spec.Rotation.Z},
			Footprint: footprint,
		}
	}

	s.log.Debug("in-line scan exhausted", zap.Float64("bearing", bearing))
	return nil
}

// reachDistance is how far the performer would have to reach to touch
// the object: planar distance to its position minus the half diagonal of
// its footprint.
func (s *Session) reachDistance(performer, position model.Vector3, spec model.ObjectSpec) float64 {
	return math.Hypot(position.X-performer.X, position.Z-performer.Z) - spec.HalfDiagonal()
}

// rayExitDistance returns how far a ray starting inside the room travels
// before leaving it. Non-positive when the origin is already outside.
func rayExitDistance(origin, dir model.Vector2, room model.RoomDimensions) float64 {
	halfX := room.X / 2
	halfZ := room.Z / 2
	if origin.X < -halfX || origin.X > halfX || origin.Z < -halfZ || origin.Z > halfZ {
		return -1
	}

	t := math.Inf(1)
	if dir.X > 0 {
		t = math.Min(t, (halfX-origin.X)/dir.X)
	} else if dir.X < 0 {
		t = math.Min(t, (-halfX-origin.X)/dir.X)
	}
	if dir.Z > 0 {
		t = math.Min(t, (halfZ-origin.Z)/dir.Z)
	} else if dir.Z < 0 {
		t = math.Min(t, (-halfZ-origin.Z)/dir.Z)
	}
	if math.IsInf(t, 1) {
		return -1
	}
	return t
}
