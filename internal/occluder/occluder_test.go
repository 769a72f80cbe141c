package occluder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectXToOccluderX_RoundTrip(t *testing.T) {
	const viewpointZ = -4.5

	cases := []struct {
		name               string
		objectX, objectZ   float64
		occluderZ          float64
	}{
		{"centered", 0, 2, -1},
		{"right of axis", 1, 1, -2},
		{"left of axis", -2.5, 3, 0},
		{"occluder behind object", 0.8, -1, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			occluderX, ok := ObjectXToOccluderX(tc.objectX, tc.objectZ, viewpointZ, tc.occluderZ)
			require.True(t, ok)

			back := OccluderXToObjectX(occluderX, tc.occluderZ, viewpointZ, tc.objectZ)
			assert.InDelta(t, tc.objectX, back, 1e-3)
		})
	}
}

func TestObjectXToOccluderX_KeepsSign(t *testing.T) {
	right, ok := ObjectXToOccluderX(1, 1, -4.5, -2)
	require.True(t, ok)
	assert.Greater(t, right, 0.0)

	left, ok := ObjectXToOccluderX(-1, 1, -4.5, -2)
	require.True(t, ok)
	assert.InDelta(t, -right, left, 1e-9)
}

func TestObjectXToOccluderX_OutOfDomain(t *testing.T) {
	// Lateral offset exceeds the depth, pushing asin out of [-1, 1].
	_, ok := ObjectXToOccluderX(3, -3.6, -4.5, -2)
	assert.False(t, ok)

	// Object at the viewpoint depth plane.
	_, ok = ObjectXToOccluderX(1, -4.5, -4.5, -2)
	assert.False(t, ok)
}

func TestValidateInView(t *testing.T) {
	// Bounds shrink by half the maximum occluder scale (0.7 per side).
	assert.True(t, ValidateInView(0, -3, 3))
	assert.True(t, ValidateInView(2.3, -3, 3))
	assert.True(t, ValidateInView(-2.3, -3, 3))
	assert.False(t, ValidateInView(2.5, -3, 3))
	assert.False(t, ValidateInView(-2.8, -3, 3))
}

func TestFindOffScreenPositionDiagonalToward(t *testing.T) {
	const viewpointZ = -4.5

	newX, newZ, ok := FindOffScreenPositionDiagonalToward(1, 1, viewpointZ)
	require.True(t, ok)

	// Travel moved toward the camera and outward.
	assert.Less(t, newZ, 1.0)
	assert.Greater(t, newX, 1.0)
	assert.Greater(t, newZ, viewpointZ)

	// The found spot satisfies the frustum bound at its own depth.
	bound := math.Tan(42.5*math.Pi/180) * (newZ - viewpointZ)
	assert.GreaterOrEqual(t, math.Abs(newX), bound)
}

func TestFindOffScreenPositionDiagonalToward_NegativeXStaysNegative(t *testing.T) {
	newX, newZ, ok := FindOffScreenPositionDiagonalToward(-1, 1, -4.5)
	require.True(t, ok)
	assert.Less(t, newX, 0.0)
	assert.Less(t, newZ, 1.0)
}

func TestFindOffScreenPositionDiagonalAway(t *testing.T) {
	const viewpointZ = -4.5

	// Starts close to the frustum edge; widening slightly outpaces the
	// bound growth and exits within the travel budget.
	newX, newZ, ok := FindOffScreenPositionDiagonalAway(4, 0.5, viewpointZ)
	require.True(t, ok)
	assert.Greater(t, newZ, 0.5)

	bound := math.Tan(42.5*math.Pi/180) * (newZ - viewpointZ)
	assert.GreaterOrEqual(t, math.Abs(newX), bound)
}

func TestFindOffScreenPositionDiagonalAway_Exhausted(t *testing.T) {
	// Deep in the frustum the bound grows almost as fast as the travel;
	// the gap cannot close within MaxOffScreenTravel.
	_, _, ok := FindOffScreenPositionDiagonalAway(0.5, 5, -4.5)
	assert.False(t, ok)
}

func TestFindOffScreenPositionDiagonalToward_BlockedByViewpointDepth(t *testing.T) {
	// Starting on the viewpoint depth plane there is no valid travel at
	// all; the scan reports failure immediately.
	_, _, ok := FindOffScreenPositionDiagonalToward(1, -4.5, -4.5)
	assert.False(t, ok)

	// Behind the viewpoint is equally hopeless.
	_, _, ok = FindOffScreenPositionDiagonalToward(1, -6, -4.5)
	assert.False(t, ok)
}
