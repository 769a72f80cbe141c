// Package occluder computes the camera-projection geometry used to keep
// a moving occluder laterally aligned with a target as seen from a fixed
// viewpoint, and finds off-screen parking positions for occluders that
// travel diagonally out of the visible frustum.
package occluder

import "math"

const (
	// OccluderMaxScale is the widest occluder the engine positions; view
	// bounds are shrunk by half of it so the occluder's own extent never
	// exits the frustum.
	OccluderMaxScale = 1.4

	// halfViewAngleDegrees is the horizontal half field of view of the
	// fixed camera.
	halfViewAngleDegrees = 42.5

	// TravelStep is the scan granularity for off-screen searches.
	TravelStep = 0.01

	// MaxOffScreenTravel bounds the off-screen scans; exhausting it is an
	// ordinary no-solution outcome.
	MaxOffScreenTravel = 12.0
)

// ObjectXToOccluderX projects an object's lateral offset at its depth
// onto the occluder's depth plane: the camera angle to the object is
// recovered with asin, then re-projected at the occluder's distance.
// ok is false when the asin argument leaves [-1, 1], which happens when
// the object sits at or behind the viewpoint depth.
func ObjectXToOccluderX(objectX, objectZ, viewpointZ, occluderZ float64) (occluderX float64, ok bool) {
	depth := objectZ - viewpointZ
	if depth == 0 {
		return 0, false
	}
	ratio := objectX / depth
	if ratio < -1 || ratio > 1 {
		return 0, false
	}
	cameraAngle := math.Asin(ratio)
	return math.Sin(cameraAngle) * (occluderZ - viewpointZ), true
}

// OccluderXToObjectX is the algebraic inverse of ObjectXToOccluderX: it
// rescales the occluder's lateral offset to the object's depth plane.
// Defined for all real inputs with distinct occluder and viewpoint
// depths; round-trips through ObjectXToOccluderX within numeric
// tolerance.
func OccluderXToObjectX(occluderX, occluderZ, viewpointZ, objectZ float64) float64 {
	return occluderX * (objectZ - viewpointZ) / (occluderZ - viewpointZ)
}

// ValidateInView reports whether an occluder centered at x stays fully
// inside [minX, maxX] once its maximum half-extent is accounted for.
func ValidateInView(x, minX, maxX float64) bool {
	half := OccluderMaxScale / 2
	return x >= minX+half && x <= maxX-half
}

// offScreenX is the lateral distance at depth z beyond which a position
// is outside the camera frustum.
func offScreenX(z, viewpointZ float64) float64 {
	return math.Tan(halfViewAngleDegrees*math.Pi/180) * (z - viewpointZ)
}

// FindOffScreenPositionDiagonalToward scans diagonal travel toward the
// viewpoint (z shrinking, |x| growing) in TravelStep increments until the
// position satisfies the off-screen bound for its new depth. ok is false
// when MaxOffScreenTravel is exhausted or the path would cross the
// viewpoint depth.
func FindOffScreenPositionDiagonalToward(x, z, viewpointZ float64) (newX, newZ float64, ok bool) {
	return scanDiagonal(x, z, viewpointZ, -1)
}

// FindOffScreenPositionDiagonalAway scans diagonal travel away from the
// viewpoint (z and |x| both growing).
func FindOffScreenPositionDiagonalAway(x, z, viewpointZ float64) (newX, newZ float64, ok bool) {
	return scanDiagonal(x, z, viewpointZ, 1)
}

func scanDiagonal(x, z, viewpointZ, zDirection float64) (float64, float64, bool) {
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	for d := 0.0; d <= MaxOffScreenTravel; d += TravelStep {
		candidateZ := z + zDirection*d
		if candidateZ <= viewpointZ {
			return 0, 0, false
		}
		candidateX := sign * (math.Abs(x) + d)
		if math.Abs(candidateX) >= offScreenX(candidateZ, viewpointZ) {
			return candidateX, candidateZ, true
		}
	}
	return 0, 0, false
}
