package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/SceneForge/internal/model"
)

// ExportDXF writes the scene as a DXF drawing: the room boundary and one
// closed loop of LINE entities per placed footprint. Coordinates are in
// meters on the XY plane (DXF Y carries room Z).
func ExportDXF(path string, result model.SceneResult) error {
	if result.Room.X <= 0 || result.Room.Z <= 0 {
		return fmt.Errorf("no room to export")
	}

	d := dxf.NewDrawing()

	halfX := result.Room.X / 2
	halfZ := result.Room.Z / 2
	room := []model.Vector2{
		{X: halfX, Z: halfZ},
		{X: halfX, Z: -halfZ},
		{X: -halfX, Z: -halfZ},
		{X: -halfX, Z: halfZ},
	}
	drawLoop(d, room)

	for _, obj := range result.Objects {
		drawLoop(d, obj.Location.Footprint.Points)
	}

	return d.SaveAs(path)
}

// drawLoop emits the closed edge loop of a polygon as LINE entities.
func drawLoop(d *drawing.Drawing, points []model.Vector2) {
	n := len(points)
	for i := 0; i < n; i++ {
		p := points[i]
		q := points[(i+1)%n]
		d.Line(p.X, p.Z, 0, q.X, q.Z, 0)
	}
}
