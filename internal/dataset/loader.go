package dataset

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Each dataset file is a single YAML document with one top-level section
// naming the table it carries:
//
//	airlines:
//	  - airline_id: "1"
//	    airline_name: Air Canada
//	    airline_icao_unique_code: ACA
//
// Decoding is strict: unknown fields anywhere in the document (typos like
// "airline_nane:") are rejected rather than silently dropped.

type airlinesFile struct {
	Airlines []Airline `yaml:"airlines"`
}

type airportsFile struct {
	Airports []Airport `yaml:"airports"`
}

type routesFile struct {
	Routes []Route `yaml:"routes"`
}

// LoadTables reads the three dataset files and returns a snapshot.
// Record order within each table follows file order.
func LoadTables(airlinesPath, airportsPath, routesPath string) (*Tables, error) {
	airlines, err := LoadAirlines(airlinesPath)
	if err != nil {
		return nil, err
	}

	airports, err := LoadAirports(airportsPath)
	if err != nil {
		return nil, err
	}

	routes, err := LoadRoutes(routesPath)
	if err != nil {
		return nil, err
	}

	return &Tables{Airlines: airlines, Airports: airports, Routes: routes}, nil
}

// LoadAirlines reads and validates an airlines dataset file.
func LoadAirlines(path string) ([]Airline, error) {
	var file airlinesFile
	if err := decodeStrict(path, &file); err != nil {
		return nil, err
	}
	if file.Airlines == nil {
		return nil, fmt.Errorf("%s: missing top-level \"airlines\" section", path)
	}
	for i, a := range file.Airlines {
		if a.ID == "" {
			return nil, fmt.Errorf("%s: airlines[%d]: airline_id is required", path, i)
		}
	}
	return file.Airlines, nil
}

// LoadAirports reads and validates an airports dataset file.
func LoadAirports(path string) ([]Airport, error) {
	var file airportsFile
	if err := decodeStrict(path, &file); err != nil {
		return nil, err
	}
	if file.Airports == nil {
		return nil, fmt.Errorf("%s: missing top-level \"airports\" section", path)
	}
	for i, a := range file.Airports {
		if a.ID == "" {
			return nil, fmt.Errorf("%s: airports[%d]: airport_id is required", path, i)
		}
	}
	return file.Airports, nil
}

// LoadRoutes reads and validates a routes dataset file.
// Endpoint and airline IDs must be present but are NOT checked against the
// other tables; unmatched foreign keys are dropped later by the inner joins.
func LoadRoutes(path string) ([]Route, error) {
	var file routesFile
	if err := decodeStrict(path, &file); err != nil {
		return nil, err
	}
	if file.Routes == nil {
		return nil, fmt.Errorf("%s: missing top-level \"routes\" section", path)
	}
	for i, r := range file.Routes {
		if r.AirlineID == "" {
			return nil, fmt.Errorf("%s: routes[%d]: route_airline_id is required", path, i)
		}
		if r.FromAirportID == "" {
			return nil, fmt.Errorf("%s: routes[%d]: route_from_airport_id is required", path, i)
		}
		if r.ToAirportID == "" {
			return nil, fmt.Errorf("%s: routes[%d]: route_to_airport_id is required", path, i)
		}
	}
	return file.Routes, nil
}

// decodeStrict reads a YAML file and decodes it with unknown-field rejection.
func decodeStrict(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	return nil
}
