package widgets

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/SceneForge/internal/model"
)

// Object colors — cycle through these for visual distinction.
var objectColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// RoomCanvas renders a top-down view of one placed scene: room floor,
// performer marker with facing ray, and every footprint polygon.
type RoomCanvas struct {
	widget.BaseWidget
	result    model.SceneResult
	maxWidth  float32
	maxHeight float32
}

func NewRoomCanvas(result model.SceneResult, maxW, maxH float32) *RoomCanvas {
	rc := &RoomCanvas{
		result:    result,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	rc.ExtendBaseWidget(rc)
	return rc
}

func (rc *RoomCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newRoomCanvasRenderer(rc)
}

type roomCanvasRenderer struct {
	rc      *RoomCanvas
	objects []fyne.CanvasObject
}

func newRoomCanvasRenderer(rc *RoomCanvas) *roomCanvasRenderer {
	r := &roomCanvasRenderer{rc: rc}
	r.rebuild()
	return r
}

func (r *roomCanvasRenderer) scale() float32 {
	room := r.rc.result.Room
	scaleX := r.rc.maxWidth / float32(room.X)
	scaleY := r.rc.maxHeight / float32(room.Z)
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

// toCanvas maps room coordinates (x east, z north) to canvas positions
// with north at the top.
func (r *roomCanvasRenderer) toCanvas(p model.Vector2, scale float32) fyne.Position {
	room := r.rc.result.Room
	return fyne.NewPos(
		(float32(p.X)+float32(room.X)/2)*scale,
		(float32(room.Z)/2-float32(p.Z))*scale,
	)
}

func (r *roomCanvasRenderer) rebuild() {
	r.objects = nil

	room := r.rc.result.Room
	scale := r.scale()
	canvasW := float32(room.X) * scale
	canvasH := float32(room.Z) * scale

	// Room floor
	bg := canvas.NewRectangle(color.NRGBA{R: 245, G: 245, B: 245, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Placed footprints as edge loops (rotated rectangles cannot be drawn
	// with canvas.Rectangle)
	for i, obj := range r.rc.result.Objects {
		col := objectColors[i%len(objectColors)]
		points := obj.Location.Footprint.Points
		n := len(points)
		for j := 0; j < n; j++ {
			line := canvas.NewLine(col)
			line.StrokeWidth = 2
			line.Position1 = r.toCanvas(points[j], scale)
			line.Position2 = r.toCanvas(points[(j+1)%n], scale)
			r.objects = append(r.objects, line)
		}

		centroid := obj.Location.Footprint.Centroid()
		label := canvas.NewText(obj.Definition.Label, color.Black)
		label.TextSize = 10
		pos := r.toCanvas(centroid, scale)
		label.Move(fyne.NewPos(pos.X-12, pos.Y-6))
		r.objects = append(r.objects, label)
	}

	r.drawPerformer(scale)
}

// drawPerformer renders the performer square and a short facing ray.
func (r *roomCanvasRenderer) drawPerformer(scale float32) {
	performer := r.rc.result.Performer
	pos2 := model.Vector2{X: performer.Position.X, Z: performer.Position.Z}

	size := float32(0.54) * scale // performer footprint side
	marker := canvas.NewRectangle(color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	marker.Resize(fyne.NewSize(size, size))
	center := r.toCanvas(pos2, scale)
	marker.Move(fyne.NewPos(center.X-size/2, center.Y-size/2))
	r.objects = append(r.objects, marker)

	radians := performer.Rotation.Y * math.Pi / 180
	tip := model.Vector2{
		X: pos2.X + math.Sin(radians)*0.8,
		Z: pos2.Z + math.Cos(radians)*0.8,
	}
	ray := canvas.NewLine(color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	ray.StrokeWidth = 2
	ray.Position1 = center
	ray.Position2 = r.toCanvas(tip, scale)
	r.objects = append(r.objects, ray)
}

func (r *roomCanvasRenderer) Layout(size fyne.Size)        {}
func (r *roomCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *roomCanvasRenderer) Destroy()                     {}
func (r *roomCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *roomCanvasRenderer) MinSize() fyne.Size {
	room := r.rc.result.Room
	scale := r.scale()
	return fyne.NewSize(float32(room.X)*scale, float32(room.Z)*scale)
}

// RenderSceneResult creates a scrollable view of a placed scene with a
// header and per-object summary lines.
func RenderSceneResult(result model.SceneResult) fyne.CanvasObject {
	if len(result.Objects) == 0 {
		return widget.NewLabel("No placements yet. Load a scenario and run the placement engine.")
	}

	header := widget.NewLabel(fmt.Sprintf(
		"Room %.1f × %.1f m — %d objects placed",
		result.Room.X, result.Room.Z, len(result.Objects),
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	items := []fyne.CanvasObject{
		header,
		NewRoomCanvas(result, 700, 500),
		widget.NewSeparator(),
	}

	for _, obj := range result.Objects {
		items = append(items, widget.NewLabel(fmt.Sprintf(
			"  %s @ (%.2f, %.2f), rotation %.0f°",
			obj.Definition.Label,
			obj.Location.Position.X,
			obj.Location.Position.Z,
			obj.Location.Rotation.Y,
		)))
	}

	return container.NewVScroll(container.NewVBox(items...))
}
