// Package project persists solve reports as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cagepack/cagepack/internal/model"
)

// ReportVersion is written into every saved report envelope.
const ReportVersion = "1.0.0"

// Report is the on-disk envelope for a set of solutions.
type Report struct {
	Version    string           `json:"version"`
	CreatedAt  string           `json:"created_at"`
	PieceCount int              `json:"piece_count"`
	Solutions  []model.Solution `json:"solutions"`
}

// SaveReport writes the solutions to path as an indented JSON report,
// creating any missing parent directories.
func SaveReport(path string, pieceCount int, solutions []model.Solution) error {
	report := Report{
		Version:    ReportVersion,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		PieceCount: pieceCount,
		Solutions:  solutions,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// LoadReport reads a report from path.
func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report file: %w", err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("failed to parse report file: %w", err)
	}
	if report.Version == "" {
		return Report{}, fmt.Errorf("invalid report file: missing version field")
	}
	// Ensure Solutions is never nil for callers ranging over it.
	if report.Solutions == nil {
		report.Solutions = []model.Solution{}
	}
	return report, nil
}
