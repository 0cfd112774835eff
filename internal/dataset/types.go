package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Airline is one record from the airlines table.
type Airline struct {
	ID   string `yaml:"airline_id"`
	Name string `yaml:"airline_name"`
	ICAO string `yaml:"airline_icao_unique_code"`
}

// Airport is one record from the airports table.
//
// Altitude is kept as raw scalar text at load time. Numeric coercion is
// deferred to the query that needs it, so a malformed altitude in a row no
// query touches is not a load error, but one a query reads is fatal.
type Airport struct {
	ID       string   `yaml:"airport_id"`
	Name     string   `yaml:"airport_name"`
	City     string   `yaml:"airport_city"`
	Country  string   `yaml:"airport_country"`
	ICAO     string   `yaml:"airport_icao_unique_code"`
	Altitude Altitude `yaml:"airport_altitude"`
}

// Route is one directed connection between two airports.
// Endpoint IDs are foreign keys into the airports table and the airline ID
// into the airlines table, but referential integrity is NOT enforced here:
// the engine's inner joins silently drop unmatched rows.
type Route struct {
	AirlineID     string `yaml:"route_airline_id"`
	FromAirportID string `yaml:"route_from_airport_id"`
	ToAirportID   string `yaml:"route_to_airport_id"`
}

// Tables is an immutable in-memory snapshot of the three datasets.
// Record order is load order; nothing mutates a snapshot after load.
type Tables struct {
	Airlines []Airline
	Airports []Airport
	Routes   []Route
}

// Altitude is a raw altitude scalar. YAML datasets carry altitudes
// inconsistently as quoted strings or bare numbers; both decode into the
// raw scalar text unchanged.
type Altitude string

// UnmarshalYAML accepts any scalar node and stores its text verbatim.
func (a *Altitude) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("airport_altitude must be a scalar, got %s", kindName(value.Kind))
	}
	*a = Altitude(value.Value)
	return nil
}

// Meters coerces the altitude to a float64. Whitespace is tolerated;
// anything else non-numeric (including empty) is an error, never zero.
func (a Altitude) Meters() (float64, error) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return 0, fmt.Errorf("altitude is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("altitude %q is not numeric", string(a))
	}
	return v, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
