package engine

import (
	"math"

	"github.com/routelens/routelens/internal/dataset"
)

// q5: top 10 domestic Canadian routes by absolute altitude difference
// between the endpoints.
//
// The chain mirrors a relational self-join: routes whose destination is a
// Canadian airport and routes whose origin is a Canadian airport are
// derived separately, then inner-joined on the original
// (from_airport_id, to_airport_id) pair. A route pair appearing k times in
// the input therefore yields k*k joined rows, exactly as the equivalent
// relational join would.
//
// The statistic is abs(to_altitude - from_altitude) as float64. Altitude
// coercion happens only for rows that survive the double Canada join; a
// non-numeric altitude there is fatal, never zero.
//
// Sort: statistic descending only. No tie-break is declared, so rows with
// equal differences keep join order (destination legs in route input
// order, origin matches in route input order under each).
// Subject: "{to_code}-{from_code}", destination code first.
func q5(t *dataset.Tables) (ResultTable, error) {
	airports := indexAirports(t.Airports)

	type leg struct {
		fromID, toID string
		airportID    string
		code         string
		altitude     dataset.Altitude
	}
	type pair struct{ fromID, toID string }

	// Destination-in-Canada legs in route input order; these drive the
	// final join as its left side.
	var toCanada []leg
	// Origin-in-Canada legs indexed by route pair, matches kept in
	// encounter order.
	fromCanada := make(map[pair][]leg)

	for _, r := range t.Routes {
		if ap, ok := airports[r.ToAirportID]; ok && ap.Country == "Canada" {
			toCanada = append(toCanada, leg{
				fromID:    r.FromAirportID,
				toID:      r.ToAirportID,
				airportID: ap.ID,
				code:      ap.ICAO,
				altitude:  ap.Altitude,
			})
		}
		if ap, ok := airports[r.FromAirportID]; ok && ap.Country == "Canada" {
			p := pair{fromID: r.FromAirportID, toID: r.ToAirportID}
			fromCanada[p] = append(fromCanada[p], leg{
				fromID:    r.FromAirportID,
				toID:      r.ToAirportID,
				airportID: ap.ID,
				code:      ap.ICAO,
				altitude:  ap.Altitude,
			})
		}
	}

	rows := make(ResultTable, 0, len(toCanada))
	for _, dst := range toCanada {
		for _, src := range fromCanada[pair{fromID: dst.fromID, toID: dst.toID}] {
			toAlt, err := dst.altitude.Meters()
			if err != nil {
				return nil, NewBadAltitudeError("q5", dst.airportID, err)
			}
			fromAlt, err := src.altitude.Meters()
			if err != nil {
				return nil, NewBadAltitudeError("q5", src.airportID, err)
			}
			rows = append(rows, ResultRow{
				Subject:   canonicalLabel(dst.code) + "-" + canonicalLabel(src.code),
				Statistic: math.Abs(toAlt - fromAlt),
			})
		}
	}

	top := TopN(rows, 10,
		ByFloat(func(r ResultRow) float64 { return r.Statistic }, Descending),
	)
	return Normalize(top), nil
}
