package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelens/routelens/internal/engine"
)

func TestEncodeCSV_Golden(t *testing.T) {
	table := engine.ResultTable{
		{Subject: "Air Maple (AMP)", Statistic: 2},
		{Subject: "Victoria, Canada", Statistic: 250.5},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, table))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "result_table", buf.Bytes())
}

func TestEncodeCSV_EmptyTableGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, engine.ResultTable{}))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "empty_table", buf.Bytes())
}

func TestEncodeCSV_CountsPrintWithoutDecimalPoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, engine.ResultTable{{Subject: "x", Statistic: 3}}))

	assert.Equal(t, "subject,statistic\nx,3\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q1.csv")

	err := WriteCSV(path, engine.ResultTable{{Subject: "a", Statistic: 1}})

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "subject,statistic\na,1\n", string(data))
}
