package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/SceneForge/internal/geom"
	"github.com/piwi3910/SceneForge/internal/model"
)

func sampleResult() model.SceneResult {
	result := model.SceneResult{
		Room:      model.RoomDimensions{X: 10, Y: 3, Z: 8},
		Performer: model.PerformerPose{Position: model.Vector3{Z: -3}},
	}

	placements := []struct {
		label    string
		dims     model.Vector3
		x, z     float64
		rotation float64
	}{
		{"crate", model.Vector3{X: 1, Y: 1, Z: 1}, 2, 1, 0},
		{"bench", model.Vector3{X: 2, Y: 0.5, Z: 0.6}, -2, 2, 45},
		{"lamp", model.Vector3{X: 0.3, Y: 1.6, Z: 0.3}, 0, 3, 90},
	}
	for _, p := range placements {
		def := model.NewObjectDefinition(p.label, p.dims)
		position := model.Vector3{X: p.x, Z: p.z}
		result.Objects = append(result.Objects, model.PlacedObject{
			Definition: def,
			Location: model.Location{
				Position:  position,
				Rotation:  model.Vector3{Y: p.rotation},
				Footprint: geom.CreateBounds(p.dims, model.Vector2{}, position, p.rotation, 0),
			},
		})
	}
	return result
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.pdf")
	require.NoError(t, ExportPDF(path, sampleResult()))
	assertNonEmptyFile(t, path)
}

func TestExportPDF_NoRoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.pdf")
	assert.Error(t, ExportPDF(path, model.SceneResult{}))
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.xlsx")
	result := sampleResult()
	require.NoError(t, ExportXLSX(path, result))
	assertNonEmptyFile(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Placements", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Label", header)

	first, err := f.GetCellValue("Placements", "A2")
	require.NoError(t, err)
	assert.Equal(t, "crate", first)

	rows, err := f.GetRows("Placements")
	require.NoError(t, err)
	assert.Len(t, rows, len(result.Objects)+1)
}

func TestExportXLSX_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.xlsx")
	assert.Error(t, ExportXLSX(path, model.SceneResult{Room: model.RoomDimensions{X: 5, Z: 5}}))
}

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.dxf")
	require.NoError(t, ExportDXF(path, sampleResult()))
	assertNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "LINE"))
}

func TestExportDXF_NoRoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.dxf")
	assert.Error(t, ExportDXF(path, model.SceneResult{}))
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	require.NoError(t, ExportLabels(path, sampleResult()))
	assertNonEmptyFile(t, path)
}

func TestExportLabels_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	assert.Error(t, ExportLabels(path, model.SceneResult{}))
}

func TestCollectLabelInfos(t *testing.T) {
	result := sampleResult()
	labels := CollectLabelInfos(result)
	require.Len(t, labels, 3)

	assert.Equal(t, "crate", labels[0].ObjectLabel)
	assert.Equal(t, result.Objects[0].Definition.ID, labels[0].ObjectID)
	assert.Equal(t, 2.0, labels[0].X)
	assert.Equal(t, 1.0, labels[0].Z)
	assert.Equal(t, 45.0, labels[1].RotationY)
	assert.Equal(t, 2.0, labels[1].Width)
	assert.Equal(t, 0.6, labels[1].Depth)

	assert.Empty(t, CollectLabelInfos(model.SceneResult{}))
}
