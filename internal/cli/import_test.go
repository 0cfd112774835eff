package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport_MissingFlags(t *testing.T) {
	_, err := execute(t, "import", "--db", "data.db")
	require.Error(t, err)
}

func TestImport_LoadFailure(t *testing.T) {
	_, err := execute(t, "import",
		"--airlines", "missing.yaml",
		"--airports", "missing.yaml",
		"--routes", "missing.yaml",
		"--db", filepath.Join(t.TempDir(), "data.db"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestImport_JSONFormat(t *testing.T) {
	airlines, airports, routes := writeDatasets(t)
	db := filepath.Join(t.TempDir(), "data.db")

	out, err := execute(t, "import",
		"--airlines", airlines,
		"--airports", airports,
		"--routes", routes,
		"--db", db,
		"--format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"airlines":2`)
	assert.Contains(t, out, `"airports":2`)
	assert.Contains(t, out, `"routes":2`)
}

func TestImportThenQueryFromDatabase(t *testing.T) {
	airlines, airports, routes := writeDatasets(t)
	db := filepath.Join(t.TempDir(), "data.db")

	_, err := execute(t, "import",
		"--airlines", airlines,
		"--airports", airports,
		"--routes", routes,
		"--db", db)
	require.NoError(t, err)

	outDir := t.TempDir()
	_, err = execute(t, "query",
		"--db", db,
		"--question", "q1",
		"--chart", "bar",
		"--out", outDir)
	require.NoError(t, err)

	csvData, err := os.ReadFile(filepath.Join(outDir, "q1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "subject,statistic\nAir Maple (AMP),2\n", string(csvData))
}

func TestQueryFromMissingDatabase(t *testing.T) {
	_, err := execute(t, "query",
		"--db", filepath.Join(t.TempDir(), "absent.db"),
		"--question", "q1",
		"--chart", "bar")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
