// CagePack: 3x3x3 polycube cage enumerator.
//
// Enumerates every way to pack rigid 7-cell polycube pieces into a 3x3x3
// cube until nothing more fits, collapses rotated duplicates, and reports
// the distinct packings that use exactly three pieces.
//
// Build:
//   go build -o cagepack ./cmd/cagepack
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cagepack/cagepack/internal/engine"
	"github.com/cagepack/cagepack/internal/export"
	"github.com/cagepack/cagepack/internal/model"
	"github.com/cagepack/cagepack/internal/project"
)

var (
	pieceCount = flag.Int("pieces", 3, "report packings using exactly this many pieces")
	showAll    = flag.Bool("all", false, "report every maximal packing regardless of piece count")
	recursive  = flag.Bool("recursive", false, "use the recursive search instead of the explicit stack")
	compare    = flag.Bool("compare", false, "run both search strategies and print a comparison")
	pdfPath    = flag.String("pdf", "", "write a PDF layout report to this path")
	labelsPath = flag.String("labels", "", "write a QR label sheet to this path")
	xlsxPath   = flag.String("xlsx", "", "write an XLSX coordinate table to this path")
	dxfPath    = flag.String("dxf", "", "write a DXF wireframe drawing to this path")
	savePath   = flag.String("save", "", "save the solutions as a JSON report to this path")
)

func main() {
	flag.Parse()

	if *compare {
		runComparison()
		return
	}

	solver := engine.New()
	var result engine.Result
	if *recursive {
		result = solver.SolveRecursive()
	} else {
		result = solver.Solve()
	}

	cages := result.EndStates
	if !*showAll {
		cages = result.WithPieceCount(*pieceCount)
	}

	solutions := make([]model.Solution, 0, len(cages))
	for _, cage := range cages {
		solutions = append(solutions, model.NewSolution(cage))
	}

	for _, sol := range solutions {
		fmt.Println("Found a solution!")
		for _, cells := range sol.Pieces {
			line := ""
			for i, c := range cells {
				if i > 0 {
					line += " "
				}
				line += c.String()
			}
			fmt.Println(line)
		}
	}

	if err := runExports(solutions); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runExports writes each requested output file.
func runExports(solutions []model.Solution) error {
	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, solutions); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
	}
	if *labelsPath != "" {
		if err := export.ExportLabels(*labelsPath, solutions); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
	}
	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, solutions); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}
	if *dxfPath != "" {
		if err := export.ExportDXF(*dxfPath, solutions); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
	}
	if *savePath != "" {
		if err := project.SaveReport(*savePath, *pieceCount, solutions); err != nil {
			return fmt.Errorf("report save: %w", err)
		}
	}
	return nil
}

// runComparison solves with both strategies and prints their statistics.
func runComparison() {
	results := engine.CompareStrategies(engine.DefaultScenarios())
	for _, r := range results {
		fmt.Printf("%s: %d maximal packings, %d with three pieces\n",
			r.Scenario.Name, r.EndStateCount, r.TriplePackings)
	}
}
