package analytics

import (
	"fmt"
	"sort"

	"github.com/vegasq/flightlens/output"
	"github.com/vegasq/flightlens/store"
)

// MonthlyRevenue reports captured payment revenue per calendar month with
// a running cumulative total, months in ascending order.
func MonthlyRevenue(snap *store.Snapshot) (*output.Report, error) {
	byMonth := make(map[string]float64)

	for i := range snap.Payments {
		p := snap.Payments[i]
		if p.Status != store.PaymentCaptured {
			continue
		}
		byMonth[monthKey(p.PaidAt)] += p.AmountUSD
	}

	rows := make([]map[string]interface{}, 0, len(byMonth))
	for month, revenue := range byMonth {
		rows = append(rows, map[string]interface{}{
			"month":       month,
			"revenue_usd": round2(revenue),
		})
	}

	rows, err := RunningTotal(rows, "month", "revenue_usd", "cumulative_revenue_usd")
	if err != nil {
		return nil, err
	}

	return &output.Report{
		Columns: []string{"month", "revenue_usd", "cumulative_revenue_usd"},
		Rows:    rows,
	}, nil
}

// RevenueByFareClass reports booking counts, captured revenue, and average
// revenue per booking for each fare class, ranked by revenue descending.
func RevenueByFareClass(snap *store.Snapshot) (*output.Report, error) {
	type acc struct {
		bookings int64
		revenue  float64
	}
	byClass := make(map[string]*acc)

	for i := range snap.Bookings {
		b := snap.Bookings[i]
		payment, ok := snap.PaymentForBooking(b.ID)
		if !ok {
			return nil, fmt.Errorf("booking %d has no payment", b.ID)
		}
		if payment.Status != store.PaymentCaptured {
			continue
		}
		a := byClass[b.FareClass]
		if a == nil {
			a = &acc{}
			byClass[b.FareClass] = a
		}
		a.bookings++
		a.revenue += payment.AmountUSD
	}

	rows := make([]map[string]interface{}, 0, len(byClass))
	for class, a := range byClass {
		rows = append(rows, map[string]interface{}{
			"fare_class":              class,
			"bookings":                a.bookings,
			"revenue_usd":             round2(a.revenue),
			"avg_revenue_per_booking": round2(a.revenue / float64(a.bookings)),
		})
	}

	rows, err := DenseRank(rows, "revenue_usd", true, "fare_class", "revenue_rank")
	if err != nil {
		return nil, err
	}

	return &output.Report{
		Columns: []string{"revenue_rank", "fare_class", "bookings", "revenue_usd", "avg_revenue_per_booking"},
		Rows:    rows,
	}, nil
}

// PaymentSuccessByChannel reports the payment success rate per booking
// channel, highest rate first. Channels with zero payments are excluded
// rather than reported as 0%; their names are returned so callers can see
// the exclusion.
func PaymentSuccessByChannel(snap *store.Snapshot) (*output.Report, []string, error) {
	type acc struct {
		total    int64
		captured int64
	}
	byChannel := make(map[string]*acc)

	for i := range snap.Payments {
		p := snap.Payments[i]
		booking, ok := snap.BookingByID(p.BookingID)
		if !ok {
			return nil, nil, fmt.Errorf("payment %d references unknown booking %d", p.ID, p.BookingID)
		}
		a := byChannel[booking.Channel]
		if a == nil {
			a = &acc{}
			byChannel[booking.Channel] = a
		}
		a.total++
		if p.Status == store.PaymentCaptured {
			a.captured++
		}
	}

	rows := make([]map[string]interface{}, 0, len(byChannel))
	for channel, a := range byChannel {
		rows = append(rows, map[string]interface{}{
			"booking_channel":     channel,
			"total_payments":      a.total,
			"successful_payments": a.captured,
		})
	}

	rows, excluded, err := Rates(rows, "successful_payments", "total_payments", "success_rate", "booking_channel")
	if err != nil {
		return nil, nil, err
	}
	for _, row := range rows {
		row["success_rate_pct"] = round2(100 * row["success_rate"].(float64))
	}
	sort.Slice(rows, func(i, j int) bool {
		ri, rj := rows[i]["success_rate_pct"].(float64), rows[j]["success_rate_pct"].(float64)
		if ri != rj {
			return ri > rj
		}
		return rows[i]["booking_channel"].(string) < rows[j]["booking_channel"].(string)
	})

	return &output.Report{
		Columns: []string{"booking_channel", "total_payments", "successful_payments", "success_rate_pct"},
		Rows:    rows,
	}, excluded, nil
}
