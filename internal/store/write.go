package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/routelens/routelens/internal/dataset"
)

// ImportTables replaces the stored snapshot with the given tables.
// The whole import runs in one transaction: a failed import leaves the
// previous snapshot intact. Rows are inserted in table order so rowid
// ordering reproduces load order on read.
func (s *Store) ImportTables(ctx context.Context, tables *dataset.Tables) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"airlines", "airports", "routes"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := insertAirlines(ctx, tx, tables.Airlines); err != nil {
		return err
	}
	if err := insertAirports(ctx, tx, tables.Airports); err != nil {
		return err
	}
	if err := insertRoutes(ctx, tx, tables.Routes); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func insertAirlines(ctx context.Context, tx *sql.Tx, airlines []dataset.Airline) error {
	stmt := `
		INSERT INTO airlines (airline_id, airline_name, airline_icao_unique_code)
		VALUES (?, ?, ?)
	`
	for _, a := range airlines {
		if _, err := tx.ExecContext(ctx, stmt, a.ID, a.Name, a.ICAO); err != nil {
			return fmt.Errorf("insert airline %s: %w", a.ID, err)
		}
	}
	return nil
}

func insertAirports(ctx context.Context, tx *sql.Tx, airports []dataset.Airport) error {
	stmt := `
		INSERT INTO airports
		(airport_id, airport_name, airport_city, airport_country, airport_icao_unique_code, airport_altitude)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, a := range airports {
		if _, err := tx.ExecContext(ctx, stmt, a.ID, a.Name, a.City, a.Country, a.ICAO, string(a.Altitude)); err != nil {
			return fmt.Errorf("insert airport %s: %w", a.ID, err)
		}
	}
	return nil
}

func insertRoutes(ctx context.Context, tx *sql.Tx, routes []dataset.Route) error {
	stmt := `
		INSERT INTO routes (route_airline_id, route_from_airport_id, route_to_airport_id)
		VALUES (?, ?, ?)
	`
	for _, r := range routes {
		if _, err := tx.ExecContext(ctx, stmt, r.AirlineID, r.FromAirportID, r.ToAirportID); err != nil {
			return fmt.Errorf("insert route %s->%s: %w", r.FromAirportID, r.ToAirportID, err)
		}
	}
	return nil
}
