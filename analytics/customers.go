package analytics

import (
	"fmt"

	"github.com/vegasq/flightlens/output"
	"github.com/vegasq/flightlens/store"
)

// CustomerValue reports customer lifetime value per passenger: the sum of
// that passenger's captured payments, with a cumulative-distribution
// percentile (1.0 for the most valuable customer, equal values sharing a
// percentile) and a dense value rank. Rank 1 is the highest CLV.
//
// Only passengers with at least one captured payment appear; see
// TopCustomers for widening the population to all loyalty accounts.
func CustomerValue(snap *store.Snapshot) (*output.Report, error) {
	rows, err := clvRows(snap, false)
	if err != nil {
		return nil, err
	}
	rows, err = annotateCLV(rows)
	if err != nil {
		return nil, err
	}

	return &output.Report{
		Columns: []string{"value_rank", "passenger_id", "clv_usd", "clv_percentile"},
		Rows:    rows,
	}, nil
}

// TopCustomers reports the top fraction of customers by CLV percentile —
// every customer whose percentile is at or above 1-fraction — together
// with the share of total captured revenue that segment generates.
//
// includeInactive widens the ranked population to all loyalty account
// holders, counting passengers without a captured payment at zero CLV;
// otherwise only paying customers are ranked.
func TopCustomers(snap *store.Snapshot, fraction float64, includeInactive bool) (*output.Report, float64, error) {
	rows, err := clvRows(snap, includeInactive)
	if err != nil {
		return nil, 0, err
	}

	total := 0.0
	for _, row := range rows {
		total += row["clv_usd"].(float64)
	}

	rows, err = annotateCLV(rows)
	if err != nil {
		return nil, 0, err
	}
	rows, err = TopFraction(rows, "clv_percentile", fraction)
	if err != nil {
		return nil, 0, err
	}

	segment := 0.0
	for _, row := range rows {
		segment += row["clv_usd"].(float64)
	}
	share := 0.0
	if total > 0 {
		share = segment / total
	}

	return &output.Report{
		Columns: []string{"value_rank", "passenger_id", "clv_usd", "clv_percentile"},
		Rows:    rows,
	}, share, nil
}

// clvRows sums captured payments per passenger. With includeInactive,
// loyalty account holders without captured payments are added at zero.
func clvRows(snap *store.Snapshot, includeInactive bool) ([]map[string]interface{}, error) {
	clv := make(map[int64]float64)

	for i := range snap.Bookings {
		b := snap.Bookings[i]
		payment, ok := snap.PaymentForBooking(b.ID)
		if !ok {
			return nil, fmt.Errorf("booking %d has no payment", b.ID)
		}
		if payment.Status != store.PaymentCaptured {
			continue
		}
		clv[b.PassengerID] += payment.AmountUSD
	}

	if includeInactive {
		for i := range snap.LoyaltyAccounts {
			pid := snap.LoyaltyAccounts[i].PassengerID
			if _, ok := clv[pid]; !ok {
				clv[pid] = 0
			}
		}
	}

	rows := make([]map[string]interface{}, 0, len(clv))
	for passengerID, value := range clv {
		rows = append(rows, map[string]interface{}{
			"passenger_id": passengerID,
			"clv_usd":      round2(value),
		})
	}
	return rows, nil
}

// annotateCLV adds the percentile and dense rank columns and orders rows
// by rank.
func annotateCLV(rows []map[string]interface{}) ([]map[string]interface{}, error) {
	rows, err := CumeDist(rows, "clv_usd", "clv_percentile")
	if err != nil {
		return nil, err
	}
	return DenseRank(rows, "clv_usd", true, "passenger_id", "value_rank")
}
