// Package export renders solved packings to PDF, XLSX and DXF files, plus
// QR-coded reference labels.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/cagepack/cagepack/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors is the palette cycled through for the pieces of a solution.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	headerHeight = 12.0
	gridTop      = marginTop + headerHeight + 10.0
	cellSize     = 28.0
	gridSize     = 3 * cellSize
	gridGap      = 25.0
	legendTop    = gridTop + gridSize + 18.0
)

// ExportPDF writes a PDF report of the solutions: one page per solution
// with its three z-layers drawn as colored grids, followed by a summary
// page.
func ExportPDF(path string, solutions []model.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 15)

	for i, sol := range solutions {
		pdf.AddPage()
		renderSolutionPage(pdf, sol, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, solutions)

	return pdf.OutputFileAndClose(path)
}

// renderSolutionPage draws one solution on the current page.
func renderSolutionPage(pdf *fpdf.Fpdf, sol model.Solution, num int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Solution %d: %s", num, sol.ID)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Occupied cells: %d of 27", len(sol.Pieces), sol.CellCount())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// One grid per z-layer, bottom layer first.
	totalWidth := 3*gridSize + 2*gridGap
	offsetX := marginLeft + (pageWidth-marginLeft-marginRight-totalWidth)/2
	for layer, z := 0, -1; z <= 1; layer, z = layer+1, z+1 {
		gx := offsetX + float64(layer)*(gridSize+gridGap)
		renderLayer(pdf, sol, z, gx, gridTop)
	}

	renderLegend(pdf, sol, legendTop)
}

// renderLayer draws the 3x3 grid of one z-slice at (gx, gy).
func renderLayer(pdf *fpdf.Fpdf, sol model.Solution, z int, gx, gy float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(gx, gy-7)
	pdf.CellFormat(gridSize, 5, fmt.Sprintf("Layer z = %d", z), "", 0, "C", false, 0, "")

	// Cell fills, colored by owning piece.
	for pieceIdx, cells := range sol.Pieces {
		col := pieceColors[pieceIdx%len(pieceColors)]
		for _, c := range cells {
			if c.Z != z {
				continue
			}
			// x grows rightwards, y grows upwards on the page.
			px := gx + float64(c.X+1)*cellSize
			py := gy + float64(1-c.Y)*cellSize
			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.Rect(px, py, cellSize, cellSize, "F")

			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetXY(px, py+cellSize/2-2)
			pdf.CellFormat(cellSize, 4, fmt.Sprintf("P%d", pieceIdx+1), "", 0, "C", false, 0, "")
		}
	}

	// Grid lines on top of the fills.
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.3)
	for i := 0; i <= 3; i++ {
		d := float64(i) * cellSize
		pdf.Line(gx, gy+d, gx+gridSize, gy+d)
		pdf.Line(gx+d, gy, gx+d, gy+gridSize)
	}
}

// renderLegend lists each piece with its color swatch and coordinates.
func renderLegend(pdf *fpdf.Fpdf, sol model.Solution, startY float64) {
	y := startY
	for pieceIdx, cells := range sol.Pieces {
		col := pieceColors[pieceIdx%len(pieceColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(60, 60, 60)
		pdf.Rect(marginLeft, y, 4, 4, "FD")

		line := fmt.Sprintf("Piece %d (%d cells): ", pieceIdx+1, len(cells))
		for i, c := range cells {
			if i > 0 {
				line += " "
			}
			line += c.String()
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft+6, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight-6, 4, line, "", 0, "L", false, 0, "")

		y += 6
	}
}

// renderSummaryPage draws overall statistics on the current page.
func renderSummaryPage(pdf *fpdf.Fpdf, solutions []model.Solution) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Summary", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + headerHeight + 5
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 5, fmt.Sprintf("Distinct packings: %d", len(solutions)), "", 1, "L", false, 0, "")

	totalCells := 0
	for _, sol := range solutions {
		totalCells += sol.CellCount()
	}
	pdf.SetXY(marginLeft, y+6)
	pdf.CellFormat(0, 5, fmt.Sprintf("Total occupied cells: %d", totalCells), "", 1, "L", false, 0, "")

	y += 16
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 5, "Solutions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for i, sol := range solutions {
		pdf.SetXY(marginLeft, y+6+float64(i)*5)
		line := fmt.Sprintf("%d. %s - %d pieces, %d cells", i+1, sol.ID, len(sol.Pieces), sol.CellCount())
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
}
