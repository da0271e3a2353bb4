package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cagepack/cagepack/internal/model"
)

// buildTestSolutions creates a small realistic solution set for testing.
func buildTestSolutions() []model.Solution {
	return []model.Solution{
		{
			ID: "a1b2c3d4",
			Pieces: [][]model.Coordinate{
				{
					{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 0}, {X: -1, Y: 0, Z: -1},
					{X: -1, Y: 1, Z: -1}, {X: 0, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
					{X: 1, Y: -1, Z: 0},
				},
				{
					{X: -1, Y: -1, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: -1, Y: 1, Z: 0},
					{X: -1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1},
					{X: 1, Y: 1, Z: 1},
				},
			},
		},
		{
			ID: "e5f6a7b8",
			Pieces: [][]model.Coordinate{
				{
					{X: -1, Y: -1, Z: -1}, {X: 0, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
					{X: 1, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0}, {X: -1, Y: 0, Z: -1},
					{X: -1, Y: 1, Z: -1},
				},
			},
		},
	}
}

func checkFileWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file %s is empty", path)
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.pdf")

	if err := ExportPDF(path, buildTestSolutions()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	checkFileWritten(t, path)
}

func TestExportPDF_EmptySolutions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportPDF(path, nil); err == nil {
		t.Fatal("expected error for empty solution set")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be written for an empty solution set")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestSolutions()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	checkFileWritten(t, path)
}

func TestExportLabels_EmptySolutions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, nil); err == nil {
		t.Fatal("expected error for empty solution set")
	}
}

func TestExportXLSX_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.xlsx")

	if err := ExportXLSX(path, buildTestSolutions()); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}
	checkFileWritten(t, path)
}

func TestExportXLSX_EmptySolutions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.xlsx")

	if err := ExportXLSX(path, nil); err == nil {
		t.Fatal("expected error for empty solution set")
	}
}

func TestExportDXF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.dxf")

	if err := ExportDXF(path, buildTestSolutions()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}
	checkFileWritten(t, path)
}

func TestExportDXF_EmptySolutions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.dxf")

	if err := ExportDXF(path, nil); err == nil {
		t.Fatal("expected error for empty solution set")
	}
}

func TestExportPDF_ManySolutionsMultiplePages(t *testing.T) {
	// More solutions than fit on one label page still export cleanly.
	sols := buildTestSolutions()
	base := sols[0]
	for i := 0; len(sols) < 35; i++ {
		s := base
		s.ID = base.ID[:6] + string(rune('a'+i%26)) + string(rune('a'+i/26))
		sols = append(sols, s)
	}

	pdfPath := filepath.Join(t.TempDir(), "many.pdf")
	if err := ExportPDF(pdfPath, sols); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	checkFileWritten(t, pdfPath)

	labelPath := filepath.Join(t.TempDir(), "many_labels.pdf")
	if err := ExportLabels(labelPath, sols); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	checkFileWritten(t, labelPath)
}
