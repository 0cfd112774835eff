package store

import (
	"context"
	"fmt"

	"github.com/routelens/routelens/internal/dataset"
)

// LoadTables reads the full dataset snapshot back out of the store.
// Each table is ordered by rowid, reproducing the order it was imported in.
//
// Returns empty tables (not nil) if nothing has been imported.
func (s *Store) LoadTables(ctx context.Context) (*dataset.Tables, error) {
	airlines, err := s.loadAirlines(ctx)
	if err != nil {
		return nil, err
	}

	airports, err := s.loadAirports(ctx)
	if err != nil {
		return nil, err
	}

	routes, err := s.loadRoutes(ctx)
	if err != nil {
		return nil, err
	}

	return &dataset.Tables{Airlines: airlines, Airports: airports, Routes: routes}, nil
}

func (s *Store) loadAirlines(ctx context.Context) ([]dataset.Airline, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT airline_id, airline_name, airline_icao_unique_code
		FROM airlines
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query airlines: %w", err)
	}
	defer rows.Close()

	airlines := []dataset.Airline{}
	for rows.Next() {
		var a dataset.Airline
		if err := rows.Scan(&a.ID, &a.Name, &a.ICAO); err != nil {
			return nil, fmt.Errorf("scan airline: %w", err)
		}
		airlines = append(airlines, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airlines: %w", err)
	}

	return airlines, nil
}

func (s *Store) loadAirports(ctx context.Context) ([]dataset.Airport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT airport_id, airport_name, airport_city, airport_country, airport_icao_unique_code, airport_altitude
		FROM airports
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()

	airports := []dataset.Airport{}
	for rows.Next() {
		var a dataset.Airport
		var altitude string
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.Country, &a.ICAO, &altitude); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		a.Altitude = dataset.Altitude(altitude)
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airports: %w", err)
	}

	return airports, nil
}

func (s *Store) loadRoutes(ctx context.Context) ([]dataset.Route, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT route_airline_id, route_from_airport_id, route_to_airport_id
		FROM routes
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	routes := []dataset.Route{}
	for rows.Next() {
		var r dataset.Route
		if err := rows.Scan(&r.AirlineID, &r.FromAirportID, &r.ToAirportID); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}

	return routes, nil
}
