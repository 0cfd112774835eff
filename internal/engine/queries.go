package engine

import (
	"fmt"
	"strings"

	"github.com/routelens/routelens/internal/dataset"
)

// The four count-based questions. Each joins routes against its dimension
// tables, counts the surviving rows per group key, ranks by the declared
// sort chain, truncates, and synthesizes subjects from canonicalized
// (NFC + trimmed) label fragments. Filters and group keys operate on raw
// field values; only subjects are canonicalized.

// q1: top 20 airlines by number of routes terminating in Canada.
// Join chain: airline ⋈ route (airline_id) ⋈ airport (to_airport_id).
// Sort: size desc, airline name asc. Subject: "{name} ({code})".
func q1(t *dataset.Tables) (ResultTable, error) {
	airlines := indexAirlines(t.Airlines)
	airports := indexAirports(t.Airports)

	type key struct{ name, code string }
	counts := make(map[key]int)
	for _, r := range t.Routes {
		al, ok := airlines[r.AirlineID]
		if !ok {
			continue
		}
		ap, ok := airports[r.ToAirportID]
		if !ok {
			continue
		}
		if ap.Country != "Canada" {
			continue
		}
		counts[key{name: al.Name, code: al.ICAO}]++
	}

	groups := sortedGroups(counts, func(a, b key) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return strings.Compare(a.code, b.code)
	})
	top := TopN(groups, 20,
		ByInt(func(g group[key]) int { return g.Size }, Descending),
		ByString(func(g group[key]) string { return g.Key.name }, Ascending),
	)

	rows := make(ResultTable, 0, len(top))
	for _, g := range top {
		rows = append(rows, ResultRow{
			Subject:   fmt.Sprintf("%s (%s)", canonicalLabel(g.Key.name), canonicalLabel(g.Key.code)),
			Statistic: float64(g.Size),
		})
	}
	return Normalize(rows), nil
}

// q2: top 30 LEAST popular destination countries. The only ascending-count
// question; the canonicalized country doubles as both group key and
// subject. Sort: size asc, country asc.
func q2(t *dataset.Tables) (ResultTable, error) {
	airports := indexAirports(t.Airports)

	counts := make(map[string]int)
	for _, r := range t.Routes {
		ap, ok := airports[r.ToAirportID]
		if !ok {
			continue
		}
		counts[canonicalLabel(ap.Country)]++
	}

	groups := sortedGroups(counts, strings.Compare)
	top := TopN(groups, 30,
		ByInt(func(g group[string]) int { return g.Size }, Ascending),
		ByString(func(g group[string]) string { return g.Key }, Ascending),
	)

	rows := make(ResultTable, 0, len(top))
	for _, g := range top {
		rows = append(rows, ResultRow{Subject: g.Key, Statistic: float64(g.Size)})
	}
	return Normalize(rows), nil
}

// q3: top 10 destination airports by inbound route count.
// Sort: size desc, airport name asc.
// Subject: "{name} ({code}), {city}, {country}".
func q3(t *dataset.Tables) (ResultTable, error) {
	airports := indexAirports(t.Airports)

	type key struct{ name, city, country, code string }
	counts := make(map[key]int)
	for _, r := range t.Routes {
		ap, ok := airports[r.ToAirportID]
		if !ok {
			continue
		}
		counts[key{name: ap.Name, city: ap.City, country: ap.Country, code: ap.ICAO}]++
	}

	groups := sortedGroups(counts, func(a, b key) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		if c := strings.Compare(a.city, b.city); c != 0 {
			return c
		}
		if c := strings.Compare(a.country, b.country); c != 0 {
			return c
		}
		return strings.Compare(a.code, b.code)
	})
	top := TopN(groups, 10,
		ByInt(func(g group[key]) int { return g.Size }, Descending),
		ByString(func(g group[key]) string { return g.Key.name }, Ascending),
	)

	rows := make(ResultTable, 0, len(top))
	for _, g := range top {
		rows = append(rows, ResultRow{
			Subject: fmt.Sprintf("%s (%s), %s, %s",
				canonicalLabel(g.Key.name), canonicalLabel(g.Key.code),
				canonicalLabel(g.Key.city), canonicalLabel(g.Key.country)),
			Statistic: float64(g.Size),
		})
	}
	return Normalize(rows), nil
}

// q4: top 15 destination cities by inbound route count.
// Sort: size desc, city asc. Subject: "{city}, {country}".
func q4(t *dataset.Tables) (ResultTable, error) {
	airports := indexAirports(t.Airports)

	type key struct{ city, country string }
	counts := make(map[key]int)
	for _, r := range t.Routes {
		ap, ok := airports[r.ToAirportID]
		if !ok {
			continue
		}
		counts[key{city: ap.City, country: ap.Country}]++
	}

	groups := sortedGroups(counts, func(a, b key) int {
		if c := strings.Compare(a.city, b.city); c != 0 {
			return c
		}
		return strings.Compare(a.country, b.country)
	})
	top := TopN(groups, 15,
		ByInt(func(g group[key]) int { return g.Size }, Descending),
		ByString(func(g group[key]) string { return g.Key.city }, Ascending),
	)

	rows := make(ResultTable, 0, len(top))
	for _, g := range top {
		rows = append(rows, ResultRow{
			Subject:   fmt.Sprintf("%s, %s", canonicalLabel(g.Key.city), canonicalLabel(g.Key.country)),
			Statistic: float64(g.Size),
		})
	}
	return Normalize(rows), nil
}
