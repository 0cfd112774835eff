// Package chartspec declares per-question chart metadata as an embedded CUE
// document, compiled and validated once at first use.
//
// Keeping the labels in a schema-checked CUE value (rather than a Go map
// literal) guarantees every entry carries all three labels: a missing or
// empty field fails compilation, not a chart render.
package chartspec

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed chartspec.cue
var chartspecCUE string

// Meta holds the axis labels and title for one question's chart.
type Meta struct {
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	Title  string `json:"title"`
}

var (
	loadOnce sync.Once
	metas    map[string]Meta
	loadErr  error
)

// Load compiles the embedded CUE document and returns the full metadata
// table. The compilation runs once; subsequent calls return the cached
// table (or the cached error).
func Load() (map[string]Meta, error) {
	loadOnce.Do(func() {
		metas, loadErr = compile()
	})
	return metas, loadErr
}

// Lookup returns the chart metadata for a question id.
func Lookup(question string) (Meta, error) {
	table, err := Load()
	if err != nil {
		return Meta{}, err
	}
	m, ok := table[question]
	if !ok {
		return Meta{}, fmt.Errorf("no chart metadata for question %q", question)
	}
	return m, nil
}

func compile() (map[string]Meta, error) {
	ctx := cuecontext.New()

	value := ctx.CompileString(chartspecCUE)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compiling chart spec: %w", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating chart spec: %w", err)
	}

	chartVal := value.LookupPath(cue.ParsePath("chart"))
	if !chartVal.Exists() {
		return nil, fmt.Errorf(`chart spec: missing "chart" section`)
	}

	iter, err := chartVal.Fields()
	if err != nil {
		return nil, fmt.Errorf("iterating chart entries: %w", err)
	}

	table := make(map[string]Meta)
	for iter.Next() {
		var m Meta
		if err := iter.Value().Decode(&m); err != nil {
			return nil, fmt.Errorf("chart.%s: %w", iter.Selector(), err)
		}
		table[iter.Selector().String()] = m
	}

	if len(table) == 0 {
		return nil, fmt.Errorf(`chart spec: "chart" section is empty`)
	}
	return table, nil
}
