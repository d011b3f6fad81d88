package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

// File names of the parquet extracts inside a dataset directory.
const (
	AirportsFile          = "airports.parquet"
	AirlinesFile          = "airlines.parquet"
	RoutesFile            = "routes.parquet"
	FlightsFile           = "flights.parquet"
	BookingsFile          = "bookings.parquet"
	PaymentsFile          = "payments.parquet"
	LoyaltyAccountsFile   = "loyalty_accounts.parquet"
	MilesTransactionsFile = "miles_transactions.parquet"
)

// Load reads the eight parquet extracts from dir and returns a Snapshot.
//
// Every file must exist and parse; a missing or malformed relation is an
// error rather than an empty slice, since downstream engines assume a
// complete dataset.
func Load(dir string) (*Snapshot, error) {
	airports, err := readFile[Airport](filepath.Join(dir, AirportsFile))
	if err != nil {
		return nil, err
	}
	airlines, err := readFile[Airline](filepath.Join(dir, AirlinesFile))
	if err != nil {
		return nil, err
	}
	routes, err := readFile[Route](filepath.Join(dir, RoutesFile))
	if err != nil {
		return nil, err
	}
	flights, err := readFile[Flight](filepath.Join(dir, FlightsFile))
	if err != nil {
		return nil, err
	}
	bookings, err := readFile[Booking](filepath.Join(dir, BookingsFile))
	if err != nil {
		return nil, err
	}
	payments, err := readFile[Payment](filepath.Join(dir, PaymentsFile))
	if err != nil {
		return nil, err
	}
	accounts, err := readFile[LoyaltyAccount](filepath.Join(dir, LoyaltyAccountsFile))
	if err != nil {
		return nil, err
	}
	txns, err := readFile[MilesTransaction](filepath.Join(dir, MilesTransactionsFile))
	if err != nil {
		return nil, err
	}

	return NewSnapshot(airports, airlines, routes, flights, bookings, payments, accounts, txns), nil
}

// readFile reads all rows of a single typed parquet file into memory.
func readFile[T any](path string) ([]T, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// WriteFile writes rows as a single parquet file at path, creating parent
// directories as needed. Used by the synthetic dataset generator and tests.
func WriteFile[T any](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writer := parquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to close writer for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
