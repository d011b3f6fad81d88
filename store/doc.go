// Package store provides read-only access to the validated airline dataset.
//
// The dataset is a directory of parquet extracts, one file per relation
// (airports, airlines, routes, flights, bookings, payments, loyalty
// accounts, miles transactions). Load reads the extracts into an immutable
// Snapshot with lookup indexes; every analytical engine in this module
// takes a Snapshot and derives results without mutating it.
//
// Example usage:
//
//	snap, err := store.Load("data/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	airport, ok := snap.AirportByID(42)
package store
