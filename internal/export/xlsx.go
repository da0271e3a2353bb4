package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cagepack/cagepack/internal/model"
)

const solutionSheet = "Solutions"

// ExportXLSX writes the solutions to an Excel workbook: a summary header
// followed by one row per placed piece listing its occupied cells.
func ExportXLSX(path string, solutions []model.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", solutionSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Solution", "Piece", "Cells", "Coordinates"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(solutionSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, sol := range solutions {
		for pieceIdx, cells := range sol.Pieces {
			coords := ""
			for i, c := range cells {
				if i > 0 {
					coords += " "
				}
				coords += c.String()
			}

			values := []interface{}{sol.ID, pieceIdx + 1, len(cells), coords}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return fmt.Errorf("failed to compute cell: %w", err)
				}
				if err := f.SetCellValue(solutionSheet, cell, v); err != nil {
					return fmt.Errorf("failed to write row %d: %w", row, err)
				}
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
