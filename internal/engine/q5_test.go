package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelens/routelens/internal/dataset"
)

// canadaPair is two Canadian airports at altitudes 100 and 350 connected
// bidirectionally, plus a foreign airport to exercise the double filter.
func canadaPair() *dataset.Tables {
	return &dataset.Tables{
		Airlines: []dataset.Airline{
			{ID: "1", Name: "Air Maple", ICAO: "AMP"},
		},
		Airports: []dataset.Airport{
			{ID: "10", Name: "Victoria Intl", City: "Victoria", Country: "Canada", ICAO: "CYYJ", Altitude: "100"},
			{ID: "11", Name: "Vancouver Intl", City: "Vancouver", Country: "Canada", ICAO: "CYVR", Altitude: "350"},
			{ID: "20", Name: "Seattle Tacoma", City: "Seattle", Country: "United States", ICAO: "KSEA", Altitude: "130"},
		},
		Routes: []dataset.Route{
			{AirlineID: "1", FromAirportID: "10", ToAirportID: "11"},
			{AirlineID: "1", FromAirportID: "11", ToAirportID: "10"},
			{AirlineID: "1", FromAirportID: "10", ToAirportID: "20"},
			{AirlineID: "1", FromAirportID: "20", ToAirportID: "11"},
		},
	}
}

func TestQ5_AltitudeDifference(t *testing.T) {
	result, err := Evaluate("q5", canadaPair())

	require.NoError(t, err)
	require.Len(t, result, 2, "only the two domestic legs qualify")

	for _, row := range result {
		assert.Equal(t, 250.0, row.Statistic)
	}

	// Destination code first: 10->11 lands at CYVR, 11->10 at CYYJ.
	// Equal differences keep join order (route input order).
	assert.Equal(t, "CYVR-CYYJ", result[0].Subject)
	assert.Equal(t, "CYYJ-CYVR", result[1].Subject)
}

func TestQ5_SortsByDifferenceDescending(t *testing.T) {
	tables := canadaPair()
	tables.Airports = append(tables.Airports, dataset.Airport{
		ID: "12", Name: "Kelowna", City: "Kelowna", Country: "Canada", ICAO: "CYLW", Altitude: "1409",
	})
	tables.Routes = append(tables.Routes, dataset.Route{
		AirlineID: "1", FromAirportID: "10", ToAirportID: "12",
	})

	result, err := Evaluate("q5", tables)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "CYLW-CYYJ", result[0].Subject)
	assert.Equal(t, 1309.0, result[0].Statistic)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Statistic, result[i].Statistic)
	}
}

func TestQ5_BadAltitudeIsFatal(t *testing.T) {
	tables := canadaPair()
	tables.Airports[1].Altitude = "not-a-number"

	_, err := Evaluate("q5", tables)

	require.Error(t, err)
	assert.True(t, IsBadAltitudeError(err))
}

func TestQ5_BadAltitudeOutsideDomesticJoinIsIgnored(t *testing.T) {
	tables := canadaPair()
	// A Canadian airport with a broken altitude that only appears on an
	// international leg never gets coerced.
	tables.Airports = append(tables.Airports, dataset.Airport{
		ID: "13", Name: "Broken", City: "Broken", Country: "Canada", ICAO: "CXXX", Altitude: "??",
	})
	tables.Routes = append(tables.Routes, dataset.Route{
		AirlineID: "1", FromAirportID: "20", ToAirportID: "13",
	})

	result, err := Evaluate("q5", tables)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestQ5_DuplicateRoutesMultiplyLikeARelationalJoin(t *testing.T) {
	tables := canadaPair()
	tables.Routes = []dataset.Route{
		{AirlineID: "1", FromAirportID: "10", ToAirportID: "11"},
		{AirlineID: "1", FromAirportID: "10", ToAirportID: "11"},
	}

	result, err := Evaluate("q5", tables)

	require.NoError(t, err)
	// Two identical route rows join pairwise: 2 x 2 combined rows.
	assert.Len(t, result, 4)
}
