// Package export renders placement results to the formats used outside
// the engine: PDF layout diagrams, XLSX placement reports, QR-coded
// object labels, and DXF footprint drawings.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/SceneForge/internal/model"
)

// objectColor represents an RGB color for a placed footprint.
type objectColor struct {
	R, G, B int
}

// objectColors mirrors the color scheme used in the room canvas widget.
var objectColors = []objectColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document with a top-down diagram of the
// placed scene: the room outline, the performer marker with its facing
// ray, and every placed footprint as a rotated polygon.
func ExportPDF(path string, result model.SceneResult) error {
	if result.Room.X <= 0 || result.Room.Z <= 0 {
		return fmt.Errorf("no room to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Scene layout: %.1f x %.1f m room, %d objects",
		result.Room.X, result.Room.Z, len(result.Objects))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/result.Room.X, drawHeight/result.Room.Z)
	canvasW := result.Room.X * scale
	canvasH := result.Room.Z * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// toPage maps room coordinates (x east, z north) to page coordinates
	// (y grows downward), north at the top.
	toPage := func(p model.Vector2) (float64, float64) {
		return offsetX + (p.X+result.Room.X/2)*scale,
			offsetY + (result.Room.Z/2-p.Z)*scale
	}

	// Room floor
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed footprints
	for i, obj := range result.Objects {
		col := objectColors[i%len(objectColors)]
		points := make([]fpdf.PointType, 0, len(obj.Location.Footprint.Points))
		for _, p := range obj.Location.Footprint.Points {
			px, py := toPage(p)
			points = append(points, fpdf.PointType{X: px, Y: py})
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Polygon(points, "FD")

		centroid := obj.Location.Footprint.Centroid()
		cx, cy := toPage(centroid)
		label := obj.Definition.Label
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(0, 0, 0)
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(cx-labelW/2, cy-2)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	}

	drawPerformer(pdf, result.Performer, toPage, scale)
	drawLegend(pdf, result, offsetY+canvasH+3)

	return pdf.OutputFileAndClose(path)
}

// drawPerformer renders the performer marker and a short facing ray.
func drawPerformer(pdf *fpdf.Fpdf, performer model.PerformerPose, toPage func(model.Vector2) (float64, float64), scale float64) {
	pos := model.Vector2{X: performer.Position.X, Z: performer.Position.Z}
	px, py := toPage(pos)

	pdf.SetFillColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Circle(px, py, 0.27*scale, "FD")

	radians := performer.Rotation.Y * math.Pi / 180
	tip := model.Vector2{
		X: pos.X + math.Sin(radians)*0.8,
		Z: pos.Z + math.Cos(radians)*0.8,
	}
	tx, ty := toPage(tip)
	pdf.SetLineWidth(0.4)
	pdf.Line(px, py, tx, ty)
}

// drawLegend prints one line per placed object below the diagram.
func drawLegend(pdf *fpdf.Fpdf, result model.SceneResult, y float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetXY(marginLeft, y)

	line := ""
	for i, obj := range result.Objects {
		if i > 0 {
			line += " | "
		}
		line += fmt.Sprintf("%s (%.2f, %.2f) rot %.0f",
			obj.Definition.Label,
			obj.Location.Position.X,
			obj.Location.Position.Z,
			obj.Location.Rotation.Y,
		)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, line, "", 0, "L", false, 0, "")
}
