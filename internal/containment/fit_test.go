package containment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/SceneForge/internal/model"
)

func containerWith(areas ...model.Vector3) model.ObjectDefinition {
	def := model.NewObjectDefinition("cabinet", model.Vector3{X: 2, Y: 2, Z: 2})
	for _, dims := range areas {
		def.EnclosedAreas = append(def.EnclosedAreas, model.EnclosedArea{Dimensions: dims})
	}
	return def
}

func TestCanEnclose(t *testing.T) {
	area := model.EnclosedArea{Dimensions: model.Vector3{X: 2, Y: 1, Z: 1}}

	angle, ok := CanEnclose(area, model.Vector3{X: 1.5, Y: 0.5, Z: 0.8})
	require.True(t, ok)
	assert.Equal(t, 0, angle)

	// Only fits sideways.
	angle, ok = CanEnclose(area, model.Vector3{X: 0.8, Y: 0.5, Z: 1.5})
	require.True(t, ok)
	assert.Equal(t, 90, angle)

	// Too tall in every orientation.
	_, ok = CanEnclose(area, model.Vector3{X: 0.5, Y: 1.5, Z: 0.5})
	assert.False(t, ok)

	// Too wide and too deep.
	_, ok = CanEnclose(area, model.Vector3{X: 2.5, Y: 0.5, Z: 1.2})
	assert.False(t, ok)

	// Exact fit counts.
	angle, ok = CanEnclose(area, model.Vector3{X: 2, Y: 1, Z: 1})
	require.True(t, ok)
	assert.Equal(t, 0, angle)
}

func TestCanContain_FirstFittingArea(t *testing.T) {
	container := containerWith(
		model.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		model.Vector3{X: 3, Y: 2, Z: 3},
	)

	fit := CanContain(container,
		model.Vector3{X: 1, Y: 1, Z: 2},
		model.Vector3{X: 2.5, Y: 0.5, Z: 1},
	)
	require.NotNil(t, fit)
	assert.Equal(t, 1, fit.AreaIndex)
	assert.Equal(t, []int{0, 0}, fit.Angles)
}

func TestCanContain_RotatedTarget(t *testing.T) {
	container := containerWith(model.Vector3{X: 1, Y: 1, Z: 3})

	fit := CanContain(container, model.Vector3{X: 2.5, Y: 0.5, Z: 0.8})
	require.NotNil(t, fit)
	assert.Equal(t, 0, fit.AreaIndex)
	assert.Equal(t, []int{90}, fit.Angles)
}

func TestCanContain_NoAreasOrNoFit(t *testing.T) {
	assert.Nil(t, CanContain(containerWith(), model.Vector3{X: 1, Y: 1, Z: 1}))

	container := containerWith(model.Vector3{X: 1, Y: 1, Z: 1})
	assert.Nil(t, CanContain(container, model.Vector3{X: 2, Y: 2, Z: 2}))
}

func TestCanContainBoth_SideBySide(t *testing.T) {
	container := containerWith(model.Vector3{X: 2, Y: 1, Z: 1})

	fit := CanContainBoth(container,
		model.Vector3{X: 0.9, Y: 0.5, Z: 0.8},
		model.Vector3{X: 1.0, Y: 0.5, Z: 0.7},
	)
	require.NotNil(t, fit)
	assert.Equal(t, 0, fit.AreaIndex)
	assert.Equal(t, SideBySide, fit.Orientation)
	assert.Equal(t, 0, fit.AngleA)
	assert.Equal(t, 0, fit.AngleB)
}

func TestCanContainBoth_FrontToBack(t *testing.T) {
	container := containerWith(model.Vector3{X: 1, Y: 1, Z: 2})

	// 0.9+0.8 > 1 rules out side-by-side at every rotation (each piece is
	// 0.8 or 0.9 in both plan axes); depths add to 1.7 <= 2 front-to-back.
	fit := CanContainBoth(container,
		model.Vector3{X: 0.9, Y: 0.5, Z: 0.9},
		model.Vector3{X: 0.8, Y: 0.5, Z: 0.8},
	)
	require.NotNil(t, fit)
	assert.Equal(t, FrontToBack, fit.Orientation)
}

func TestCanContainBoth_RotationUnlocksFit(t *testing.T) {
	container := containerWith(model.Vector3{X: 2, Y: 1, Z: 0.5})

	// As-is the pair is 0.4+1.5 wide but 1.5 needs the long axis turned;
	// only (0, 90) side-by-side fits the shallow area.
	fit := CanContainBoth(container,
		model.Vector3{X: 0.4, Y: 0.5, Z: 0.4},
		model.Vector3{X: 0.45, Y: 0.5, Z: 1.5},
	)
	require.NotNil(t, fit)
	assert.Equal(t, SideBySide, fit.Orientation)
	assert.Equal(t, 0, fit.AngleA)
	assert.Equal(t, 90, fit.AngleB)
}

func TestCanContainBoth_TooTall(t *testing.T) {
	container := containerWith(model.Vector3{X: 5, Y: 0.4, Z: 5})

	fit := CanContainBoth(container,
		model.Vector3{X: 1, Y: 0.5, Z: 1},
		model.Vector3{X: 1, Y: 0.3, Z: 1},
	)
	assert.Nil(t, fit)
}

func TestCanContainBoth_StopsAfterFirstArea(t *testing.T) {
	// The second area would hold the pair comfortably, but the scan stops
	// once every arrangement fails for the first area.
	container := containerWith(
		model.Vector3{X: 1, Y: 1, Z: 1},
		model.Vector3{X: 10, Y: 10, Z: 10},
	)

	a := model.Vector3{X: 1.5, Y: 0.5, Z: 1.5}
	b := model.Vector3{X: 1.5, Y: 0.5, Z: 1.5}
	assert.Nil(t, CanContainBoth(container, a, b))

	// The same pair against the big area alone does fit.
	big := containerWith(model.Vector3{X: 10, Y: 10, Z: 10})
	assert.NotNil(t, CanContainBoth(big, a, b))
}
