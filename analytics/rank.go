package analytics

import (
	"fmt"
	"sort"
)

// DenseRank sorts rows by metricColumn and appends rankColumn with dense
// ranks: ranks start at 1 and equal metrics share a rank, with the next
// distinct metric taking the immediately following integer — no gaps.
//
// desc ranks the largest metric first. tieBreakColumn orders rows whose
// metrics are exactly equal (ascending) so output order is total and
// reproducible; it never influences the rank value itself. Input rows are
// copied, not mutated.
//
// Fails with ErrEmptyInput on an empty row set and ErrInvalidMetric if any
// row lacks a numeric metric.
func DenseRank(rows []map[string]interface{}, metricColumn string, desc bool, tieBreakColumn, rankColumn string) ([]map[string]interface{}, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dense rank over %q: %w", metricColumn, ErrEmptyInput)
	}

	metrics := make([]float64, len(rows))
	for i, row := range rows {
		m, err := metricValue(row, metricColumn, i)
		if err != nil {
			return nil, fmt.Errorf("dense rank: %w", err)
		}
		metrics[i] = m
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ma, mb := metrics[order[a]], metrics[order[b]]
		if ma != mb {
			if desc {
				return ma > mb
			}
			return ma < mb
		}
		if tieBreakColumn == "" {
			return false
		}
		return compareValues(rows[order[a]][tieBreakColumn], rows[order[b]][tieBreakColumn]) < 0
	})

	result := make([]map[string]interface{}, len(rows))
	rank := int64(1)
	for i, idx := range order {
		if i > 0 && metrics[idx] != metrics[order[i-1]] {
			rank++
		}
		row := copyRow(rows[idx])
		row[rankColumn] = rank
		result[i] = row
	}

	return result, nil
}
