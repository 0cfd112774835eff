package engine

import (
	"cmp"
	"slices"
)

// Direction controls whether a sort key orders ascending or descending.
type Direction int

const (
	// Ascending orders smallest first.
	Ascending Direction = iota
	// Descending orders largest first.
	Descending
)

// SortKey is one link in a tie-break chain: a comparison over T plus the
// direction it applies in. Keys later in the chain only matter when every
// earlier key compares equal.
type SortKey[T any] struct {
	Compare func(a, b T) int
	Dir     Direction
}

// ByString builds a SortKey over a string extractor.
func ByString[T any](extract func(T) string, dir Direction) SortKey[T] {
	return SortKey[T]{
		Compare: func(a, b T) int {
			av, bv := extract(a), extract(b)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		},
		Dir: dir,
	}
}

// ByFloat builds a SortKey over a float64 extractor.
func ByFloat[T any](extract func(T) float64, dir Direction) SortKey[T] {
	return SortKey[T]{
		Compare: func(a, b T) int {
			av, bv := extract(a), extract(b)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		},
		Dir: dir,
	}
}

// ByInt builds a SortKey over an int extractor.
func ByInt[T any](extract func(T) int, dir Direction) SortKey[T] {
	return SortKey[T]{
		Compare: func(a, b T) int { return cmp.Compare(extract(a), extract(b)) },
		Dir:     dir,
	}
}

// TopN stable-sorts rows by the given tie-break chain and returns the first
// limit rows. The input is never mutated. Rows that compare equal under the
// whole chain keep their input order (stable sort), which is how q5's
// undeclared tie order is preserved.
//
// A negative limit means no truncation. A limit larger than len(rows)
// returns every row.
func TopN[T any](rows []T, limit int, keys ...SortKey[T]) []T {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		for _, k := range keys {
			c := k.Compare(a, b)
			if c == 0 {
				continue
			}
			if k.Dir == Descending {
				return -c
			}
			return c
		}
		return 0
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit:limit]
	}
	return out
}
