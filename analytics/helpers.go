package analytics

import (
	"math"
	"time"
)

// monthKey truncates a timestamp to its calendar month, formatted so that
// lexicographic order equals chronological order.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// round2 rounds to two decimal places, matching the warehouse reports.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
