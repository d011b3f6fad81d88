package store

// Snapshot is an immutable view of the validated relational dataset at a
// single point in time. All engines operate on a Snapshot and never mutate
// it, so concurrent queries over the same Snapshot are safe.
//
// Referential integrity is a precondition: every foreign key in the input
// relations is expected to resolve. The Snapshot only builds indexes; it
// does not re-validate the data.
type Snapshot struct {
	Airports          []Airport
	Airlines          []Airline
	Routes            []Route
	Flights           []Flight
	Bookings          []Booking
	Payments          []Payment
	LoyaltyAccounts   []LoyaltyAccount
	MilesTransactions []MilesTransaction

	airportByID      map[int64]int
	airlineByID      map[int64]int
	routeByID        map[int64]int
	bookingByID      map[int64]int
	paymentByBooking map[int64]int
	txnsByAccount    map[int64][]int
}

// NewSnapshot bundles the input relations and builds lookup indexes.
// The caller must not modify the slices after handing them over.
func NewSnapshot(
	airports []Airport,
	airlines []Airline,
	routes []Route,
	flights []Flight,
	bookings []Booking,
	payments []Payment,
	accounts []LoyaltyAccount,
	txns []MilesTransaction,
) *Snapshot {
	s := &Snapshot{
		Airports:          airports,
		Airlines:          airlines,
		Routes:            routes,
		Flights:           flights,
		Bookings:          bookings,
		Payments:          payments,
		LoyaltyAccounts:   accounts,
		MilesTransactions: txns,

		airportByID:      make(map[int64]int, len(airports)),
		airlineByID:      make(map[int64]int, len(airlines)),
		routeByID:        make(map[int64]int, len(routes)),
		bookingByID:      make(map[int64]int, len(bookings)),
		paymentByBooking: make(map[int64]int, len(payments)),
		txnsByAccount:    make(map[int64][]int),
	}

	for i := range airports {
		s.airportByID[airports[i].ID] = i
	}
	for i := range airlines {
		s.airlineByID[airlines[i].ID] = i
	}
	for i := range routes {
		s.routeByID[routes[i].ID] = i
	}
	for i := range bookings {
		s.bookingByID[bookings[i].ID] = i
	}
	for i := range payments {
		s.paymentByBooking[payments[i].BookingID] = i
	}
	for i := range txns {
		s.txnsByAccount[txns[i].AccountID] = append(s.txnsByAccount[txns[i].AccountID], i)
	}

	return s
}

// AirportByID returns the airport with the given id.
func (s *Snapshot) AirportByID(id int64) (Airport, bool) {
	i, ok := s.airportByID[id]
	if !ok {
		return Airport{}, false
	}
	return s.Airports[i], true
}

// AirlineByID returns the airline with the given id.
func (s *Snapshot) AirlineByID(id int64) (Airline, bool) {
	i, ok := s.airlineByID[id]
	if !ok {
		return Airline{}, false
	}
	return s.Airlines[i], true
}

// RouteByID returns the route with the given id.
func (s *Snapshot) RouteByID(id int64) (Route, bool) {
	i, ok := s.routeByID[id]
	if !ok {
		return Route{}, false
	}
	return s.Routes[i], true
}

// BookingByID returns the booking with the given id.
func (s *Snapshot) BookingByID(id int64) (Booking, bool) {
	i, ok := s.bookingByID[id]
	if !ok {
		return Booking{}, false
	}
	return s.Bookings[i], true
}

// PaymentForBooking returns the payment settling the given booking.
func (s *Snapshot) PaymentForBooking(bookingID int64) (Payment, bool) {
	i, ok := s.paymentByBooking[bookingID]
	if !ok {
		return Payment{}, false
	}
	return s.Payments[i], true
}

// TransactionsForAccount returns the miles ledger entries for a loyalty
// account, in input order. The returned slice is freshly allocated.
func (s *Snapshot) TransactionsForAccount(accountID int64) []MilesTransaction {
	idx := s.txnsByAccount[accountID]
	if len(idx) == 0 {
		return nil
	}
	out := make([]MilesTransaction, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.MilesTransactions[i])
	}
	return out
}
