package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/SceneForge/internal/model"
)

func assertPointsInDelta(t *testing.T, expected, actual []model.Vector2, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, delta, "point %d X", i)
		assert.InDelta(t, expected[i].Z, actual[i].Z, delta, "point %d Z", i)
	}
}

func TestCreateBounds_NoRotation(t *testing.T) {
	f := CreateBounds(
		model.Vector3{X: 4, Y: 1, Z: 4},
		model.Vector2{},
		model.Vector3{},
		0, 0,
	)

	assertPointsInDelta(t, []model.Vector2{
		{X: 2, Z: 2}, {X: 2, Z: -2}, {X: -2, Z: -2}, {X: -2, Z: 2},
	}, f.Points, 1e-9)
	assert.Equal(t, 1.0, f.MaxY)
	assert.Equal(t, 0.0, f.MinY)
}

func TestCreateBounds_QuarterTurn(t *testing.T) {
	f := CreateBounds(
		model.Vector3{X: 4, Y: 1, Z: 4},
		model.Vector2{},
		model.Vector3{},
		90, 0,
	)

	// A quarter turn of a centered square yields the same corner set,
	// shifted one position in the winding.
	assertPointsInDelta(t, []model.Vector2{
		{X: 2, Z: -2}, {X: -2, Z: -2}, {X: -2, Z: 2}, {X: 2, Z: 2},
	}, f.Points, 1e-9)
}

func TestCreateBounds_OffsetAndTranslation(t *testing.T) {
	f := CreateBounds(
		model.Vector3{X: 2, Y: 1, Z: 2},
		model.Vector2{X: 0.5, Z: 0},
		model.Vector3{X: 10, Y: 3, Z: -5},
		0, 3,
	)

	assertPointsInDelta(t, []model.Vector2{
		{X: 11.5, Z: -4}, {X: 11.5, Z: -6}, {X: 9.5, Z: -6}, {X: 9.5, Z: -4},
	}, f.Points, 1e-9)
	assert.Equal(t, 4.0, f.MaxY)
	assert.Equal(t, 3.0, f.MinY)
}

func TestCreateBounds_AreaInvariantUnderRotation(t *testing.T) {
	dims := model.Vector3{X: 3, Y: 1, Z: 2}
	for rot := -360.0; rot <= 720; rot += 45 {
		f := CreateBounds(dims, model.Vector2{}, model.Vector3{X: 1, Z: 2}, rot, 0)
		assert.InDelta(t, 6.0, f.Area(), 1e-9, "rotation %v", rot)
	}
}

func TestCreateBounds_RotationIsPeriodic(t *testing.T) {
	dims := model.Vector3{X: 3, Y: 1, Z: 1}
	a := CreateBounds(dims, model.Vector2{X: 0.2, Z: 0.1}, model.Vector3{X: 1}, -90, 0)
	b := CreateBounds(dims, model.Vector2{X: 0.2, Z: 0.1}, model.Vector3{X: 1}, 270, 0)
	assertPointsInDelta(t, a.Points, b.Points, 1e-9)
}

func TestRotatePoint_HalfTurnNegates(t *testing.T) {
	p := model.Vector2{X: 1.5, Z: -0.5}
	r := RotatePoint(p, 180)
	assert.InDelta(t, -p.X, r.X, 1e-9)
	assert.InDelta(t, -p.Z, r.Z, 1e-9)
}

func TestPerformerFootprint(t *testing.T) {
	f := PerformerFootprint(model.Vector3{X: 1, Y: 0, Z: -2}, 0.27, 1.25)

	assertPointsInDelta(t, []model.Vector2{
		{X: 1.27, Z: -1.73}, {X: 1.27, Z: -2.27}, {X: 0.73, Z: -2.27}, {X: 0.73, Z: -1.73},
	}, f.Points, 1e-9)
	assert.InDelta(t, 1.25, f.MaxY, 1e-9)
}

func TestWithinRoom(t *testing.T) {
	room := model.RoomDimensions{X: 10, Y: 3, Z: 8}

	inside := CreateBounds(model.Vector3{X: 2, Y: 1, Z: 2}, model.Vector2{}, model.Vector3{X: 3, Z: 2}, 30, 0)
	assert.True(t, WithinRoom(inside, room))

	// Centered on the wall, half the footprint hangs outside.
	straddling := CreateBounds(model.Vector3{X: 2, Y: 1, Z: 2}, model.Vector2{}, model.Vector3{X: 5, Z: 0}, 0, 0)
	assert.False(t, WithinRoom(straddling, room))

	// Corners exactly on the wall still count as inside.
	flush := model.Footprint{Points: []model.Vector2{
		{X: 5, Z: 4}, {X: 5, Z: 2}, {X: 3, Z: 2}, {X: 3, Z: 4},
	}}
	assert.True(t, WithinRoom(flush, room))
}
