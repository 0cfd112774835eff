package engine

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ResultRow is one (subject, statistic) pair: a human-readable label and
// its numeric measure. Counts and derived metrics share the float64
// statistic so every question funnels through the same result shape.
type ResultRow struct {
	Subject   string  `json:"subject"`
	Statistic float64 `json:"statistic"`
}

// ResultTable is an ordered sequence of result rows, ordered by the ranking
// rule of its question and truncated to the question's top-N bound.
type ResultTable []ResultRow

// Normalize is the single normalization point every question returns
// through: it guarantees a non-nil table projected to exactly
// (subject, statistic). With typed rows the projection is structural, so
// normalizing an already-normalized table is a no-op.
func Normalize(table ResultTable) ResultTable {
	if table == nil {
		return ResultTable{}
	}
	return slices.Clone(table)
}

// canonicalLabel prepares a raw text fragment for subject synthesis:
// NFC normalization followed by whitespace trimming. Filters and group keys
// see raw values; only display labels are canonicalized.
func canonicalLabel(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
