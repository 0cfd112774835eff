// Package render persists result tables as CSV files and chart images.
// It is a pure downstream consumer of the engine's output shape: chart
// labels come from chartspec, never from the engine.
package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/routelens/routelens/internal/chartspec"
	"github.com/routelens/routelens/internal/engine"
)

// Chart kinds.
const (
	KindBar = "bar"
	KindPie = "pie"
)

// ValidKinds defines the allowed chart kinds.
var ValidKinds = []string{KindBar, KindPie}

// IsValidKind checks if the kind is one of the allowed values.
func IsValidKind(kind string) bool {
	for _, k := range ValidKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Outputs writes <question>.csv and <question>.png under dir and returns
// the paths written.
//
// The CSV is always written, even for an empty table. The chart is skipped
// for an empty table (go-chart cannot render zero series, and an empty
// result is valid output, not an error).
func Outputs(dir, question, kind string, meta chartspec.Meta, table engine.ResultTable) ([]string, error) {
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("invalid chart kind %q: must be one of %v", kind, ValidKinds)
	}

	csvPath := filepath.Join(dir, question+".csv")
	if err := WriteCSV(csvPath, table); err != nil {
		return nil, err
	}
	written := []string{csvPath}

	if len(table) == 0 {
		slog.Info("result table is empty, skipping chart", "question", question)
		return written, nil
	}
	// go-chart requires at least one non-zero pie value, and an all-zero
	// statistic column is valid output (equal-altitude route pairs).
	if kind == KindPie && !hasNonzeroStatistic(table) {
		slog.Info("all statistics are zero, skipping pie chart", "question", question)
		return written, nil
	}

	chartPath := filepath.Join(dir, question+".png")
	if err := WriteChart(chartPath, kind, meta, table); err != nil {
		return written, err
	}
	return append(written, chartPath), nil
}

// WriteChart renders a bar or pie chart of the result table to path.
// Rendering happens in memory first; a failed render leaves no file behind.
func WriteChart(path, kind string, meta chartspec.Meta, table engine.ResultTable) error {
	var buf bytes.Buffer
	var err error
	switch kind {
	case KindBar:
		err = renderBar(&buf, meta, table)
	case KindPie:
		err = renderPie(&buf, meta, table)
	default:
		err = fmt.Errorf("invalid chart kind %q: must be one of %v", kind, ValidKinds)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}
	return nil
}

// hasNonzeroStatistic reports whether any row carries a non-zero statistic.
func hasNonzeroStatistic(table engine.ResultTable) bool {
	for _, r := range table {
		if r.Statistic != 0 {
			return true
		}
	}
	return false
}

func renderBar(w io.Writer, meta chartspec.Meta, table engine.ResultTable) error {
	bars := make([]chart.Value, 0, len(table))
	maxStat := 0.0
	for _, r := range table {
		bars = append(bars, chart.Value{Label: r.Subject, Value: r.Statistic})
		if r.Statistic > maxStat {
			maxStat = r.Statistic
		}
	}

	// go-chart refuses a zero-delta value range, which all-equal or
	// all-zero statistics would otherwise produce.
	upper := math.Ceil(maxStat * 1.05)
	if upper <= 0 {
		upper = 1
	}

	bc := chart.BarChart{
		Title:    meta.Title,
		Width:    1280,
		Height:   720,
		BarWidth: 40,
		XAxis:    chart.Style{TextRotationDegrees: 90},
		YAxis: chart.YAxis{
			Name:  meta.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: upper},
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 30, Right: 30, Bottom: 160},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

func renderPie(w io.Writer, meta chartspec.Meta, table engine.ResultTable) error {
	values := make([]chart.Value, 0, len(table))
	for _, r := range table {
		values = append(values, chart.Value{Label: r.Subject, Value: r.Statistic})
	}

	pc := chart.PieChart{
		Title:  meta.Title,
		Width:  1024,
		Height: 1024,
		Values: values,
	}
	return pc.Render(chart.PNG, w)
}
