package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDataset(t *testing.T, dir string) {
	t.Helper()

	iata := "AAA"
	delay := int64(20)
	paid := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	relations := []struct {
		file  string
		write func(path string) error
	}{
		{AirportsFile, func(p string) error {
			return WriteFile(p, []Airport{{ID: 1, IATA: &iata, Name: "Alpha International"}})
		}},
		{AirlinesFile, func(p string) error {
			return WriteFile(p, []Airline{{ID: 1, IATA: "XX", Name: "Xavier Air"}})
		}},
		{RoutesFile, func(p string) error {
			return WriteFile(p, []Route{{ID: 1, AirlineID: 1, OriginID: 1, DestinationID: 1, DistanceKM: 0}})
		}},
		{FlightsFile, func(p string) error {
			return WriteFile(p, []Flight{{ID: 1, RouteID: 1, FlightDate: paid, SchedDep: paid, SchedArr: paid, Status: FlightArrived, DelayMinutes: &delay}})
		}},
		{BookingsFile, func(p string) error {
			return WriteFile(p, []Booking{{ID: 1, PassengerID: 7, FlightID: 1, FareClass: "Basic", Channel: "web", BasePriceUSD: 99.5}})
		}},
		{PaymentsFile, func(p string) error {
			return WriteFile(p, []Payment{{ID: 1, BookingID: 1, AmountUSD: 99.5, Method: "card", Status: PaymentCaptured, Reference: "ref-1", PaidAt: paid}})
		}},
		{LoyaltyAccountsFile, func(p string) error {
			return WriteFile(p, []LoyaltyAccount{{ID: 1, PassengerID: 7, Tier: TierSilver, MilesBalance: 12000}})
		}},
		{MilesTransactionsFile, func(p string) error {
			return WriteFile(p, []MilesTransaction{
				{ID: 1, AccountID: 1, DeltaMiles: 5000, Type: TxnEarn, OccurredAt: paid},
				{ID: 2, AccountID: 1, DeltaMiles: -1000, Type: TxnRedeem, OccurredAt: paid},
			})
		}},
	}
	for _, r := range relations {
		if err := r.write(filepath.Join(dir, r.file)); err != nil {
			t.Fatalf("writing %s: %v", r.file, err)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)

	snap, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(snap.Airports) != 1 || len(snap.Flights) != 1 || len(snap.MilesTransactions) != 2 {
		t.Fatalf("got %d airports, %d flights, %d txns", len(snap.Airports), len(snap.Flights), len(snap.MilesTransactions))
	}

	airport, ok := snap.AirportByID(1)
	if !ok || airport.IATA == nil || *airport.IATA != "AAA" {
		t.Errorf("AirportByID(1): got %+v, %v", airport, ok)
	}

	flight := snap.Flights[0]
	if flight.DelayMinutes == nil || *flight.DelayMinutes != 20 {
		t.Errorf("optional delay did not survive the round trip: %+v", flight.DelayMinutes)
	}
	if flight.ActualDep != nil {
		t.Errorf("absent optional field should stay nil, got %v", flight.ActualDep)
	}

	payment, ok := snap.PaymentForBooking(1)
	if !ok || payment.AmountUSD != 99.5 || payment.Status != PaymentCaptured {
		t.Errorf("PaymentForBooking(1): got %+v, %v", payment, ok)
	}

	txns := snap.TransactionsForAccount(1)
	if len(txns) != 2 || txns[0].Type != TxnEarn || txns[1].DeltaMiles != -1000 {
		t.Errorf("TransactionsForAccount(1): got %+v", txns)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)
	// Knock out one relation; Load must fail rather than return an
	// empty slice.
	if err := os.Remove(filepath.Join(dir, PaymentsFile)); err != nil {
		t.Fatalf("removing payments file: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for missing relation")
	}
}

func TestSnapshotLookupMisses(t *testing.T) {
	snap := NewSnapshot(nil, nil, nil, nil, nil, nil, nil, nil)

	if _, ok := snap.AirportByID(1); ok {
		t.Error("AirportByID on empty snapshot should miss")
	}
	if _, ok := snap.RouteByID(1); ok {
		t.Error("RouteByID on empty snapshot should miss")
	}
	if _, ok := snap.PaymentForBooking(1); ok {
		t.Error("PaymentForBooking on empty snapshot should miss")
	}
	if txns := snap.TransactionsForAccount(1); txns != nil {
		t.Errorf("TransactionsForAccount on empty snapshot: got %v, want nil", txns)
	}
}
