package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/SceneForge/internal/model"
)

// LabelInfo holds the data encoded into each object label's QR code.
type LabelInfo struct {
	ObjectID    string  `json:"id"`
	ObjectLabel string  `json:"label"`
	X           float64 `json:"x"`
	Z           float64 `json:"z"`
	RotationY   float64 `json:"rotation_y"`
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page on US Letter paper).
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for all placed
// objects. Each label carries the object name, its placed pose, and a QR
// code encoding the same data as JSON.
func ExportLabels(path string, result model.SceneResult) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no placed objects to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.ObjectLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.ObjectID, int(info.X*1000+info.Z))
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	objectLabel := info.ObjectLabel
	if pdf.GetStringWidth(objectLabel) > textW {
		for len(objectLabel) > 0 && pdf.GetStringWidth(objectLabel+"...") > textW {
			objectLabel = objectLabel[:len(objectLabel)-1]
		}
		objectLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, objectLabel, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.2f x %.2f m", info.Width, info.Depth)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pose := fmt.Sprintf("(%.2f, %.2f) rot %.0f", info.X, info.Z, info.RotationY)
	pdf.CellFormat(textW, 3, pose, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a scene result for
// use in testing or alternative export formats.
func CollectLabelInfos(result model.SceneResult) []LabelInfo {
	var labels []LabelInfo
	for _, obj := range result.Objects {
		labels = append(labels, LabelInfo{
			ObjectID:    obj.Definition.ID,
			ObjectLabel: obj.Definition.Label,
			X:           obj.Location.Position.X,
			Z:           obj.Location.Position.Z,
			RotationY:   obj.Location.Rotation.Y,
			Width:       obj.Definition.Dimensions.X,
			Depth:       obj.Definition.Dimensions.Z,
		})
	}
	return labels
}
