package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	dxfdrawing "github.com/yofu/dxf/drawing"

	"github.com/cagepack/cagepack/internal/model"
)

const (
	dxfCellUnit = 10.0 // edge length of one cell in drawing units
	dxfSpacing  = 50.0 // x distance between consecutive solutions
)

// dxfColors is the layer color cycled through for the pieces of a solution.
var dxfColors = []color.ColorNumber{
	color.Red,
	color.Green,
	color.Blue,
	color.Cyan,
	color.Magenta,
	color.Yellow,
}

// ExportDXF writes a 3-D wireframe drawing of the solutions. Each piece
// gets its own layer, each occupied cell a unit-cube wireframe; solutions
// are spread out along the x-axis.
func ExportDXF(path string, solutions []model.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	drawing := dxf.NewDrawing()

	for solIdx, sol := range solutions {
		offsetX := float64(solIdx) * dxfSpacing
		for pieceIdx, cells := range sol.Pieces {
			layer := fmt.Sprintf("S%d_P%d", solIdx+1, pieceIdx+1)
			if _, err := drawing.AddLayer(layer, dxfColors[pieceIdx%len(dxfColors)], dxf.DefaultLineType, true); err != nil {
				return fmt.Errorf("failed to add layer %s: %w", layer, err)
			}
			for _, c := range cells {
				drawCellWireframe(drawing, c, offsetX)
			}
		}
	}

	if err := drawing.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save drawing: %w", err)
	}
	return nil
}

// drawCellWireframe draws the 12 edges of the unit cube occupied by cell c.
func drawCellWireframe(drawing *dxfdrawing.Drawing, c model.Coordinate, offsetX float64) {
	x0 := offsetX + (float64(c.X)-0.5)*dxfCellUnit
	y0 := (float64(c.Y) - 0.5) * dxfCellUnit
	z0 := (float64(c.Z) - 0.5) * dxfCellUnit
	x1 := x0 + dxfCellUnit
	y1 := y0 + dxfCellUnit
	z1 := z0 + dxfCellUnit

	// Bottom face, top face, then the vertical edges.
	edges := [][6]float64{
		{x0, y0, z0, x1, y0, z0},
		{x1, y0, z0, x1, y1, z0},
		{x1, y1, z0, x0, y1, z0},
		{x0, y1, z0, x0, y0, z0},
		{x0, y0, z1, x1, y0, z1},
		{x1, y0, z1, x1, y1, z1},
		{x1, y1, z1, x0, y1, z1},
		{x0, y1, z1, x0, y0, z1},
		{x0, y0, z0, x0, y0, z1},
		{x1, y0, z0, x1, y0, z1},
		{x1, y1, z0, x1, y1, z1},
		{x0, y1, z0, x0, y1, z1},
	}
	for _, e := range edges {
		drawing.Line(e[0], e[1], e[2], e[3], e[4], e[5])
	}
}
