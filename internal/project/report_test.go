package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cagepack/cagepack/internal/model"
)

func sampleSolutions() []model.Solution {
	return []model.Solution{
		{
			ID: "a1b2c3d4",
			Pieces: [][]model.Coordinate{
				{{X: -1, Y: -1, Z: -1}, {X: 0, Y: -1, Z: -1}},
				{{X: 1, Y: 1, Z: 1}},
			},
		},
	}
}

func TestSaveReport_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, SaveReport(path, 3, sampleSolutions()))

	report, err := LoadReport(path)
	require.NoError(t, err)

	assert.Equal(t, ReportVersion, report.Version)
	assert.NotEmpty(t, report.CreatedAt)
	assert.Equal(t, 3, report.PieceCount)
	assert.Equal(t, sampleSolutions(), report.Solutions)
}

func TestSaveReport_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.json")

	require.NoError(t, SaveReport(path, 3, sampleSolutions()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadReport_MissingFile(t *testing.T) {
	_, err := LoadReport(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadReport_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadReport(path)
	assert.Error(t, err)
}

func TestLoadReport_MissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noversion.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"solutions":[]}`), 0644))

	_, err := LoadReport(path)
	assert.ErrorContains(t, err, "missing version")
}

func TestLoadReport_NilSolutionsBecomesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nosolutions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0.0"}`), 0644))

	report, err := LoadReport(path)
	require.NoError(t, err)
	assert.NotNil(t, report.Solutions)
	assert.Empty(t, report.Solutions)
}
