package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validAirlines = `airlines:
  - airline_id: "1"
    airline_name: Air Maple
    airline_icao_unique_code: AMP
  - airline_id: "2"
    airline_name: Skyways
    airline_icao_unique_code: SKY
`

const validAirports = `airports:
  - airport_id: "10"
    airport_name: Victoria Intl
    airport_city: Victoria
    airport_country: Canada
    airport_icao_unique_code: CYYJ
    airport_altitude: "60"
  - airport_id: "20"
    airport_name: Seattle Tacoma
    airport_city: Seattle
    airport_country: United States
    airport_icao_unique_code: KSEA
    airport_altitude: 130
`

const validRoutes = `routes:
  - route_airline_id: "1"
    route_from_airport_id: "20"
    route_to_airport_id: "10"
`

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables(
		writeFile(t, "airlines.yaml", validAirlines),
		writeFile(t, "airports.yaml", validAirports),
		writeFile(t, "routes.yaml", validRoutes),
	)

	require.NoError(t, err)
	require.Len(t, tables.Airlines, 2)
	require.Len(t, tables.Airports, 2)
	require.Len(t, tables.Routes, 1)

	assert.Equal(t, Airline{ID: "1", Name: "Air Maple", ICAO: "AMP"}, tables.Airlines[0])
	assert.Equal(t, "Canada", tables.Airports[0].Country)
	assert.Equal(t, Route{AirlineID: "1", FromAirportID: "20", ToAirportID: "10"}, tables.Routes[0])
}

func TestLoadAirports_AltitudeScalarForms(t *testing.T) {
	// Quoted string and bare number both keep their raw scalar text.
	path := writeFile(t, "airports.yaml", validAirports)

	airports, err := LoadAirports(path)

	require.NoError(t, err)
	assert.Equal(t, Altitude("60"), airports[0].Altitude)
	assert.Equal(t, Altitude("130"), airports[1].Altitude)
}

func TestLoadAirlines_RejectsUnknownField(t *testing.T) {
	path := writeFile(t, "airlines.yaml", `airlines:
  - airline_id: "1"
    airline_nane: Typo Air
`)

	_, err := LoadAirlines(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "airline_nane")
}

func TestLoadAirlines_MissingSection(t *testing.T) {
	path := writeFile(t, "airlines.yaml", `carriers: []`)

	_, err := LoadAirlines(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "airlines")
}

func TestLoadAirlines_MissingID(t *testing.T) {
	path := writeFile(t, "airlines.yaml", `airlines:
  - airline_name: No ID Air
    airline_icao_unique_code: NID
`)

	_, err := LoadAirlines(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "airline_id is required")
}

func TestLoadRoutes_DanglingForeignKeysAccepted(t *testing.T) {
	// Referential integrity is not the loader's job: the engine's inner
	// joins drop unmatched rows.
	path := writeFile(t, "routes.yaml", `routes:
  - route_airline_id: "999"
    route_from_airport_id: "998"
    route_to_airport_id: "997"
`)

	routes, err := LoadRoutes(path)

	require.NoError(t, err)
	assert.Len(t, routes, 1)
}

func TestLoadRoutes_MissingEndpoint(t *testing.T) {
	path := writeFile(t, "routes.yaml", `routes:
  - route_airline_id: "1"
    route_to_airport_id: "10"
`)

	_, err := LoadRoutes(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "route_from_airport_id is required")
}

func TestLoadTables_FileNotFound(t *testing.T) {
	_, err := LoadTables("nope.yaml", "nope.yaml", "nope.yaml")

	require.Error(t, err)
}

func TestAltitude_Meters(t *testing.T) {
	tests := []struct {
		name    string
		in      Altitude
		want    float64
		wantErr bool
	}{
		{name: "integer", in: "60", want: 60},
		{name: "float", in: "123.5", want: 123.5},
		{name: "negative", in: "-50", want: -50},
		{name: "padded", in: " 60 ", want: 60},
		{name: "empty", in: "", wantErr: true},
		{name: "blank", in: "   ", wantErr: true},
		{name: "text", in: "n/a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Meters()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
