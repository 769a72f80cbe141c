package widgets

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/SceneForge/internal/geom"
	"github.com/piwi3910/SceneForge/internal/model"
)

func placedScene() model.SceneResult {
	dims := model.Vector3{X: 1, Y: 1, Z: 1}
	position := model.Vector3{X: 2, Z: 1}
	return model.SceneResult{
		Room:      model.RoomDimensions{X: 10, Y: 3, Z: 8},
		Performer: model.PerformerPose{Position: model.Vector3{Z: -3}},
		Objects: []model.PlacedObject{{
			Definition: model.NewObjectDefinition("crate", dims),
			Location: model.Location{
				Position:  position,
				Footprint: geom.CreateBounds(dims, model.Vector2{}, position, 0, 0),
			},
		}},
	}
}

func TestRoomCanvas_MinSizeKeepsAspectRatio(t *testing.T) {
	test.NewApp()

	rc := NewRoomCanvas(placedScene(), 700, 500)
	size := rc.MinSize()

	// Room is 10 x 8; the 500 height cap binds, so width scales to 625.
	assert.InDelta(t, 625, size.Width, 0.5)
	assert.InDelta(t, 500, size.Height, 0.5)
}

func TestRoomCanvas_RendererObjects(t *testing.T) {
	test.NewApp()

	rc := NewRoomCanvas(placedScene(), 700, 500)
	renderer := rc.CreateRenderer()

	// Floor + border, 4 footprint edges + centroid label, performer
	// marker + facing ray.
	assert.Len(t, renderer.Objects(), 9)
}

func TestRenderSceneResult_EmptyScene(t *testing.T) {
	test.NewApp()

	content := RenderSceneResult(model.SceneResult{Room: model.RoomDimensions{X: 5, Z: 5}})
	label, ok := content.(*widget.Label)
	require.True(t, ok)
	assert.Contains(t, label.Text, "No placements")
}

func TestRenderSceneResult_PlacedScene(t *testing.T) {
	test.NewApp()

	content := RenderSceneResult(placedScene())
	require.NotNil(t, content)
	assert.Greater(t, content.MinSize().Width, float32(0))
}
