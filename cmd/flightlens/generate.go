package main

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vegasq/flightlens/store"
)

// seedAirport is one airport of the built-in network used for synthetic
// data generation.
type seedAirport struct {
	iata, icao, name, city, country string
	lat, lon                        float64
}

var seedAirports = []seedAirport{
	{"ATL", "KATL", "Hartsfield-Jackson Atlanta International", "Atlanta", "United States", 33.6367, -84.4281},
	{"BOS", "KBOS", "Boston Logan International", "Boston", "United States", 42.3643, -71.0052},
	{"DEN", "KDEN", "Denver International", "Denver", "United States", 39.8617, -104.6731},
	{"DFW", "KDFW", "Dallas/Fort Worth International", "Dallas", "United States", 32.8968, -97.0380},
	{"JFK", "KJFK", "John F Kennedy International", "New York", "United States", 40.6398, -73.7789},
	{"LAX", "KLAX", "Los Angeles International", "Los Angeles", "United States", 33.9425, -118.4081},
	{"MIA", "KMIA", "Miami International", "Miami", "United States", 25.7932, -80.2906},
	{"ORD", "KORD", "Chicago O'Hare International", "Chicago", "United States", 41.9786, -87.9048},
	{"PHX", "KPHX", "Phoenix Sky Harbor International", "Phoenix", "United States", 33.4343, -112.0116},
	{"SEA", "KSEA", "Seattle-Tacoma International", "Seattle", "United States", 47.4490, -122.3093},
	{"SFO", "KSFO", "San Francisco International", "San Francisco", "United States", 37.6190, -122.3749},
	{"IAH", "KIAH", "George Bush Intercontinental", "Houston", "United States", 29.9844, -95.3414},
}

var seedAirlines = []struct{ iata, name string }{
	{"AA", "American Airlines"},
	{"DL", "Delta Air Lines"},
	{"UA", "United Airlines"},
	{"WN", "Southwest Airlines"},
	{"B6", "JetBlue Airways"},
}

var fareClasses = []string{"Basic", "Standard", "Premium", "Business", "First"}
var fareMultipliers = map[string]float64{"Basic": 1.0, "Standard": 1.3, "Premium": 1.8, "Business": 3.0, "First": 4.5}
var bookingChannels = []string{"web", "mobile", "agent", "call_center", "kiosk"}
var paymentMethods = []string{"card", "paypal", "wire"}

func generateCmd() *cobra.Command {
	var (
		outDir     string
		seed       int64
		flights    int
		passengers int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic, referentially intact dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flights <= 0 || passengers <= 0 {
				return fmt.Errorf("flights and passengers must be positive")
			}
			if err := generateDataset(outDir, seed, flights, passengers); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote dataset to %s\n", outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "data", "output directory for the parquet extracts")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for reproducible datasets")
	cmd.Flags().IntVar(&flights, "flights", 2000, "number of flights to generate")
	cmd.Flags().IntVar(&passengers, "passengers", 500, "number of passengers to generate")
	return cmd
}

// generateDataset writes the eight parquet extracts, following the shape
// of the warehouse's synthetic loaders: a route network over the built-in
// airports, dated flights with a delay and cancellation mix, bookings with
// fare class and channel, one payment per booking, and loyalty accounts
// with miles ledgers for about 60% of passengers.
func generateDataset(dir string, seed int64, flightCount, passengerCount int) error {
	rng := rand.New(rand.NewSource(seed))

	airports := make([]store.Airport, len(seedAirports))
	for i, a := range seedAirports {
		iata, icao := a.iata, a.icao
		airports[i] = store.Airport{
			ID: int64(i + 1), IATA: &iata, ICAO: &icao,
			Name: a.name, City: a.city, Country: a.country,
			Latitude: a.lat, Longitude: a.lon,
		}
	}

	airlines := make([]store.Airline, len(seedAirlines))
	for i, a := range seedAirlines {
		airlines[i] = store.Airline{ID: int64(i + 1), IATA: a.iata, Name: a.name}
	}

	// Each airline flies a random subset of ordered airport pairs; the
	// (airline, origin, destination) triple stays unique by construction.
	var routes []store.Route
	for _, airline := range airlines {
		for o := range airports {
			for d := range airports {
				if o == d || rng.Float64() > 0.25 {
					continue
				}
				routes = append(routes, store.Route{
					ID:            int64(len(routes) + 1),
					AirlineID:     airline.ID,
					OriginID:      airports[o].ID,
					DestinationID: airports[d].ID,
					DistanceKM:    haversineKM(seedAirports[o], seedAirports[d]),
				})
			}
		}
	}

	flights := make([]store.Flight, 0, flightCount)
	for i := 0; i < flightCount; i++ {
		route := routes[rng.Intn(len(routes))]
		day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(365))
		dep := day.Add(time.Duration(5+rng.Intn(17)) * time.Hour)
		// Cruise around 800 km/h plus taxi overhead.
		duration := time.Duration(45+int(route.DistanceKM/800*60)) * time.Minute
		arr := dep.Add(duration)

		f := store.Flight{
			ID:         int64(i + 1),
			RouteID:    route.ID,
			FlightDate: day,
			SchedDep:   dep,
			SchedArr:   arr,
		}

		switch r := rng.Float64(); {
		case r < 0.03:
			f.Status = store.FlightCancelled
		case r < 0.04:
			f.Status = store.FlightDiverted
		default:
			f.Status = store.FlightArrived
		}

		if f.Status != store.FlightCancelled {
			delay := int64(0)
			if rng.Float64() < 0.45 {
				delay = int64(rng.ExpFloat64() * 18)
			}
			actualDep := dep.Add(time.Duration(delay) * time.Minute)
			actualArr := arr.Add(time.Duration(delay) * time.Minute)
			f.ActualDep = &actualDep
			f.ActualArr = &actualArr
			f.DelayMinutes = &delay
		}

		flights = append(flights, f)
	}

	var bookings []store.Booking
	var payments []store.Payment
	for _, f := range flights {
		route, _ := routeByID(routes, f.RouteID)

		// A handful of bookings per flight, distinct passengers each.
		n := 1 + rng.Intn(4)
		taken := make(map[int64]bool, n)
		for j := 0; j < n; j++ {
			passengerID := int64(1 + rng.Intn(passengerCount))
			if taken[passengerID] {
				continue
			}
			taken[passengerID] = true

			fareClass := fareClasses[rng.Intn(len(fareClasses))]
			basePrice := math.Round((50+route.DistanceKM*0.09)*fareMultipliers[fareClass]*100) / 100

			booking := store.Booking{
				ID:           int64(len(bookings) + 1),
				PassengerID:  passengerID,
				FlightID:     f.ID,
				FareClass:    fareClass,
				Channel:      bookingChannels[rng.Intn(len(bookingChannels))],
				BasePriceUSD: basePrice,
			}
			bookings = append(bookings, booking)

			status := store.PaymentCaptured
			if rng.Float64() < 0.08 {
				status = "Failed"
			}
			payments = append(payments, store.Payment{
				ID:        int64(len(payments) + 1),
				BookingID: booking.ID,
				AmountUSD: basePrice,
				Method:    paymentMethods[rng.Intn(len(paymentMethods))],
				Status:    status,
				Reference: uuid.NewString(),
				PaidAt:    f.SchedDep.AddDate(0, 0, -(1 + rng.Intn(60))),
			})
		}
	}

	var accounts []store.LoyaltyAccount
	var txns []store.MilesTransaction
	tiers := []store.TierName{store.TierBasic, store.TierSilver, store.TierGold, store.TierPlatinum}
	for p := 1; p <= passengerCount; p++ {
		if rng.Float64() > 0.6 {
			continue
		}
		account := store.LoyaltyAccount{
			ID:          int64(len(accounts) + 1),
			PassengerID: int64(p),
			Tier:        tiers[rng.Intn(len(tiers))],
		}

		var balance int64
		for e := 0; e < 2+rng.Intn(12); e++ {
			txn := store.MilesTransaction{
				ID:         int64(len(txns) + 1),
				AccountID:  account.ID,
				OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(365)),
			}
			switch r := rng.Float64(); {
			case r < 0.70:
				txn.Type = store.TxnEarn
				txn.DeltaMiles = int64(500 + rng.Intn(20000))
			case r < 0.90:
				txn.Type = store.TxnRedeem
				txn.DeltaMiles = -int64(500 + rng.Intn(10000))
			default:
				txn.Type = store.TxnAdjust
				txn.DeltaMiles = int64(rng.Intn(4001) - 2000)
			}
			balance += txn.DeltaMiles
			txns = append(txns, txn)
		}
		if balance < 0 {
			balance = 0
		}
		account.MilesBalance = balance
		accounts = append(accounts, account)
	}

	if err := store.WriteFile(filepath.Join(dir, store.AirportsFile), airports); err != nil {
		return err
	}
	if err := store.WriteFile(filepath.Join(dir, store.AirlinesFile), airlines); err != nil {
		return err
	}
	if err := store.WriteFile(filepath.Join(dir, store.RoutesFile), routes); err != nil {
		return err
	}
	if err := store.WriteFile(filepath.Join(dir, store.FlightsFile), flights); err != nil {
		return err
	}
	if err := store.WriteFile(filepath.Join(dir, store.BookingsFile), bookings); err != nil {
		return err
	}
	if err := store.WriteFile(filepath.Join(dir, store.PaymentsFile), payments); err != nil {
		return err
	}
	if err := store.WriteFile(filepath.Join(dir, store.LoyaltyAccountsFile), accounts); err != nil {
		return err
	}
	return store.WriteFile(filepath.Join(dir, store.MilesTransactionsFile), txns)
}

func routeByID(routes []store.Route, id int64) (store.Route, bool) {
	// Route ids are assigned sequentially starting at 1.
	if id < 1 || id > int64(len(routes)) {
		return store.Route{}, false
	}
	return routes[id-1], true
}

// haversineKM is the great-circle distance between two airports.
func haversineKM(a, b seedAirport) float64 {
	const earthRadiusKM = 6371.0
	lat1, lon1 := a.lat*math.Pi/180, a.lon*math.Pi/180
	lat2, lon2 := b.lat*math.Pi/180, b.lon*math.Pi/180

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return math.Round(2 * earthRadiusKM * math.Asin(math.Sqrt(h)))
}
