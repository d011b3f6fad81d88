package analytics

import (
	"fmt"
	"sort"

	"github.com/vegasq/flightlens/output"
	"github.com/vegasq/flightlens/store"
)

// DelayThresholdMinutes is the delay above which a flight counts as
// delayed in rate reports, per the warehouse convention.
const DelayThresholdMinutes = 15

// AirlinePunctuality reports arrival performance per airline: flight
// counts, delayed/cancelled/diverted counts, average delay minutes, and a
// dense rank with rank 1 for the highest average delay.
//
// Airlines with no measured delay minutes are excluded from the report
// (their average is undefined, not zero).
func AirlinePunctuality(snap *store.Snapshot) (*output.Report, error) {
	type acc struct {
		iata     string
		name     string
		flights  int64
		delayed  int64
		cancel   int64
		divert   int64
		measured int64
		delaySum int64
	}
	byAirline := make(map[int64]*acc)

	for i := range snap.Flights {
		f := snap.Flights[i]
		route, ok := snap.RouteByID(f.RouteID)
		if !ok {
			return nil, fmt.Errorf("flight %d references unknown route %d", f.ID, f.RouteID)
		}
		a := byAirline[route.AirlineID]
		if a == nil {
			airline, ok := snap.AirlineByID(route.AirlineID)
			if !ok {
				return nil, fmt.Errorf("route %d references unknown airline %d", route.ID, route.AirlineID)
			}
			a = &acc{iata: airline.IATA, name: airline.Name}
			byAirline[route.AirlineID] = a
		}

		a.flights++
		switch f.Status {
		case store.FlightCancelled:
			a.cancel++
		case store.FlightDiverted:
			a.divert++
		}
		if f.DelayMinutes != nil {
			a.measured++
			a.delaySum += *f.DelayMinutes
			if *f.DelayMinutes > DelayThresholdMinutes {
				a.delayed++
			}
		}
	}

	rows := make([]map[string]interface{}, 0, len(byAirline))
	for _, a := range byAirline {
		rows = append(rows, map[string]interface{}{
			"airline_iata":   a.iata,
			"airline_name":   a.name,
			"flights":        a.flights,
			"delayed_15min":  a.delayed,
			"cancelled":      a.cancel,
			"diverted":       a.divert,
			"delay_total":    a.delaySum,
			"delay_measured": a.measured,
		})
	}

	rows, _, err := Rates(rows, "delay_total", "delay_measured", "avg_delay_min", "airline_iata")
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row["avg_delay_min"] = round2(row["avg_delay_min"].(float64))
	}

	rows, err = DenseRank(rows, "avg_delay_min", true, "airline_iata", "delay_rank")
	if err != nil {
		return nil, err
	}

	return &output.Report{
		Columns: []string{"delay_rank", "airline_iata", "airline_name", "flights", "delayed_15min", "cancelled", "diverted", "avg_delay_min"},
		Rows:    rows,
	}, nil
}

// WorstRoutes reports the limit routes with the highest average delay,
// including each route's cancellation rate. Routes with no measured delay
// minutes are excluded. limit <= 0 means no limit.
func WorstRoutes(snap *store.Snapshot, limit int) (*output.Report, error) {
	type acc struct {
		origin   string
		dest     string
		flights  int64
		cancel   int64
		measured int64
		delaySum int64
	}
	byRoute := make(map[int64]*acc)

	for i := range snap.Flights {
		f := snap.Flights[i]
		route, ok := snap.RouteByID(f.RouteID)
		if !ok {
			return nil, fmt.Errorf("flight %d references unknown route %d", f.ID, f.RouteID)
		}
		a := byRoute[route.ID]
		if a == nil {
			origin, ok := snap.AirportByID(route.OriginID)
			if !ok {
				return nil, fmt.Errorf("route %d references unknown airport %d", route.ID, route.OriginID)
			}
			dest, ok := snap.AirportByID(route.DestinationID)
			if !ok {
				return nil, fmt.Errorf("route %d references unknown airport %d", route.ID, route.DestinationID)
			}
			a = &acc{origin: airportCode(origin), dest: airportCode(dest)}
			byRoute[route.ID] = a
		}

		a.flights++
		if f.Status == store.FlightCancelled {
			a.cancel++
		}
		if f.DelayMinutes != nil {
			a.measured++
			a.delaySum += *f.DelayMinutes
		}
	}

	rows := make([]map[string]interface{}, 0, len(byRoute))
	for id, a := range byRoute {
		rows = append(rows, map[string]interface{}{
			"route_id":        id,
			"origin_iata":     a.origin,
			"dest_iata":       a.dest,
			"flights":         a.flights,
			"cancel_rate_pct": round2(100 * float64(a.cancel) / float64(a.flights)),
			"delay_total":     a.delaySum,
			"delay_measured":  a.measured,
		})
	}

	rows, _, err := Rates(rows, "delay_total", "delay_measured", "avg_delay_min", "route_id")
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row["avg_delay_min"] = round2(row["avg_delay_min"].(float64))
	}

	rows, err = DenseRank(rows, "avg_delay_min", true, "origin_iata", "delay_rank")
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return &output.Report{
		Columns: []string{"delay_rank", "origin_iata", "dest_iata", "flights", "avg_delay_min", "cancel_rate_pct"},
		Rows:    rows,
	}, nil
}

// DelayRateByMonth reports the percentage of flights delayed more than 15
// minutes per calendar month, months in ascending order.
func DelayRateByMonth(snap *store.Snapshot) (*output.Report, error) {
	type acc struct {
		flights int64
		delayed int64
	}
	byMonth := make(map[string]*acc)

	for i := range snap.Flights {
		f := snap.Flights[i]
		a := byMonth[monthKey(f.FlightDate)]
		if a == nil {
			a = &acc{}
			byMonth[monthKey(f.FlightDate)] = a
		}
		a.flights++
		if f.DelayMinutes != nil && *f.DelayMinutes > DelayThresholdMinutes {
			a.delayed++
		}
	}

	rows := make([]map[string]interface{}, 0, len(byMonth))
	for month, a := range byMonth {
		rows = append(rows, map[string]interface{}{
			"month":         month,
			"flights":       a.flights,
			"delayed_15min": a.delayed,
		})
	}

	rows, _, err := Rates(rows, "delayed_15min", "flights", "delay_rate", "month")
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row["pct_delayed"] = round2(100 * row["delay_rate"].(float64))
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i]["month"].(string) < rows[j]["month"].(string)
	})

	return &output.Report{
		Columns: []string{"month", "flights", "delayed_15min", "pct_delayed"},
		Rows:    rows,
	}, nil
}

// BusiestAirports reports the limit airports with the most flight
// movements (arrivals plus departures), ranked densely with rank 1 for the
// busiest. limit <= 0 means no limit.
func BusiestAirports(snap *store.Snapshot, limit int) (*output.Report, error) {
	movements := make(map[int64]int64)

	for i := range snap.Flights {
		f := snap.Flights[i]
		route, ok := snap.RouteByID(f.RouteID)
		if !ok {
			return nil, fmt.Errorf("flight %d references unknown route %d", f.ID, f.RouteID)
		}
		movements[route.OriginID]++
		movements[route.DestinationID]++
	}

	rows := make([]map[string]interface{}, 0, len(movements))
	for airportID, count := range movements {
		airport, ok := snap.AirportByID(airportID)
		if !ok {
			return nil, fmt.Errorf("route references unknown airport %d", airportID)
		}
		rows = append(rows, map[string]interface{}{
			"iata_code": airportCode(airport),
			"name":      airport.Name,
			"movements": count,
		})
	}

	rows, err := DenseRank(rows, "movements", true, "iata_code", "traffic_rank")
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return &output.Report{
		Columns: []string{"traffic_rank", "iata_code", "name", "movements"},
		Rows:    rows,
	}, nil
}

// airportCode returns the best display code for an airport.
func airportCode(a store.Airport) string {
	if a.IATA != nil && *a.IATA != "" {
		return *a.IATA
	}
	if a.ICAO != nil && *a.ICAO != "" {
		return *a.ICAO
	}
	return fmt.Sprintf("#%d", a.ID)
}
