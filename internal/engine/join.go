package engine

import (
	"slices"

	"github.com/routelens/routelens/internal/dataset"
)

// Hash indexes for the engine's inner equi-joins. Every join looks the
// right side up in O(1) while iterating the left side in input order, so
// the whole pipeline stays O(n+m) instead of O(n*m).
//
// IDs are declared unique per table; on a duplicate the later row wins,
// matching a plain map assignment.

func indexAirlines(airlines []dataset.Airline) map[string]dataset.Airline {
	idx := make(map[string]dataset.Airline, len(airlines))
	for _, a := range airlines {
		idx[a.ID] = a
	}
	return idx
}

func indexAirports(airports []dataset.Airport) map[string]dataset.Airport {
	idx := make(map[string]dataset.Airport, len(airports))
	for _, a := range airports {
		idx[a.ID] = a
	}
	return idx
}

// group is one partition from a group-count: the distinct key tuple plus
// the partition's row count.
type group[K comparable] struct {
	Key  K
	Size int
}

// sortedGroups materializes a count map into a slice in canonical key
// order. Map iteration order is unspecified, and the declared sort chains
// do not always distinguish every pair of keys, so groups are pre-sorted by
// their full key before the chain is applied: ties the chain cannot break
// then resolve canonically, never by input order.
func sortedGroups[K comparable](counts map[K]int, cmp func(a, b K) int) []group[K] {
	out := make([]group[K], 0, len(counts))
	for k, n := range counts {
		out = append(out, group[K]{Key: k, Size: n})
	}
	slices.SortFunc(out, func(a, b group[K]) int { return cmp(a.Key, b.Key) })
	return out
}
