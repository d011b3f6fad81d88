package store

import "time"

// FlightStatus is the lifecycle state of a dated flight.
type FlightStatus string

const (
	FlightScheduled FlightStatus = "Scheduled"
	FlightDeparted  FlightStatus = "Departed"
	FlightArrived   FlightStatus = "Arrived"
	FlightCancelled FlightStatus = "Cancelled"
	FlightDiverted  FlightStatus = "Diverted"
)

// TierName is a loyalty tier as stored in the warehouse.
type TierName string

const (
	TierBasic    TierName = "Basic"
	TierSilver   TierName = "Silver"
	TierGold     TierName = "Gold"
	TierPlatinum TierName = "Platinum"
)

// TxnType classifies a miles ledger entry.
type TxnType string

const (
	TxnEarn   TxnType = "EARN"
	TxnRedeem TxnType = "REDEEM"
	TxnAdjust TxnType = "ADJUST"
)

// PaymentCaptured is the payment status that counts toward revenue.
const PaymentCaptured = "Captured"

// Airport is a node in the route network.
//
// IATA and ICAO codes are unique when present; either may be missing for
// small fields, so both are optional in the parquet schema.
type Airport struct {
	ID        int64   `parquet:"airport_id"`
	IATA      *string `parquet:"iata_code,optional"`
	ICAO      *string `parquet:"icao_code,optional"`
	Name      string  `parquet:"name"`
	City      string  `parquet:"city"`
	Country   string  `parquet:"country"`
	Latitude  float64 `parquet:"latitude"`
	Longitude float64 `parquet:"longitude"`
}

// Airline is an operating carrier.
type Airline struct {
	ID   int64  `parquet:"airline_id"`
	IATA string `parquet:"iata_code"`
	Name string `parquet:"name"`
}

// Route is a directed edge in the network: one airline flying one
// origin/destination pair. The same pair may appear once per airline.
type Route struct {
	ID            int64   `parquet:"route_id"`
	AirlineID     int64   `parquet:"airline_id"`
	OriginID      int64   `parquet:"origin_airport_id"`
	DestinationID int64   `parquet:"destination_airport_id"`
	DistanceKM    float64 `parquet:"distance_km"`
}

// Flight is a dated instance of a route. Actual times and the delay are
// absent for flights that have not operated (or were cancelled).
type Flight struct {
	ID           int64        `parquet:"flight_id"`
	RouteID      int64        `parquet:"route_id"`
	FlightDate   time.Time    `parquet:"flight_date"`
	SchedDep     time.Time    `parquet:"sched_dep"`
	SchedArr     time.Time    `parquet:"sched_arr"`
	ActualDep    *time.Time   `parquet:"actual_dep,optional"`
	ActualArr    *time.Time   `parquet:"actual_arr,optional"`
	Status       FlightStatus `parquet:"status"`
	DelayMinutes *int64       `parquet:"delay_minutes,optional"`
}

// Booking ties one passenger to one flight. At most one booking exists per
// (passenger, flight) pair.
type Booking struct {
	ID           int64   `parquet:"booking_id"`
	PassengerID  int64   `parquet:"passenger_id"`
	FlightID     int64   `parquet:"flight_id"`
	FareClass    string  `parquet:"fare_class"`
	Channel      string  `parquet:"booking_channel"`
	BasePriceUSD float64 `parquet:"base_price_usd"`
}

// Payment settles a booking. The warehouse guarantees exactly one payment
// per booking; revenue computations count only captured payments.
type Payment struct {
	ID        int64     `parquet:"payment_id"`
	BookingID int64     `parquet:"booking_id"`
	AmountUSD float64   `parquet:"amount_usd"`
	Method    string    `parquet:"method"`
	Status    string    `parquet:"status"`
	Reference string    `parquet:"reference"`
	PaidAt    time.Time `parquet:"paid_at"`
}

// LoyaltyAccount is the one loyalty account a passenger may hold.
type LoyaltyAccount struct {
	ID           int64    `parquet:"account_id"`
	PassengerID  int64    `parquet:"passenger_id"`
	Tier         TierName `parquet:"tier"`
	MilesBalance int64    `parquet:"miles_balance"`
}

// MilesTransaction is an immutable ledger entry against a loyalty account.
// Delta is signed: EARN entries are positive, REDEEM entries negative,
// ADJUST entries either.
type MilesTransaction struct {
	ID         int64     `parquet:"txn_id"`
	AccountID  int64     `parquet:"account_id"`
	DeltaMiles int64     `parquet:"delta_miles"`
	Type       TxnType   `parquet:"txn_type"`
	OccurredAt time.Time `parquet:"occurred_at"`
}
