package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/SceneForge/internal/model"
)

// xlsxHeaders is the column layout of the placement report.
var xlsxHeaders = []string{
	"Label", "ID", "X", "Y", "Z", "Rotation Y",
	"Width", "Height", "Depth", "Footprint Area",
}

// ExportXLSX writes a placement report workbook: one row per placed
// object with its pose, dimensions, and footprint area.
func ExportXLSX(path string, result model.SceneResult) error {
	if len(result.Objects) == 0 {
		return fmt.Errorf("no placed objects to report")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Placements"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, obj := range result.Objects {
		values := []interface{}{
			obj.Definition.Label,
			obj.Definition.ID,
			obj.Location.Position.X,
			obj.Location.Position.Y,
			obj.Location.Position.Z,
			obj.Location.Rotation.Y,
			obj.Definition.Dimensions.X,
			obj.Definition.Dimensions.Y,
			obj.Definition.Dimensions.Z,
			obj.Location.Footprint.Area(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
