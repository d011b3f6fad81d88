package analytics

import (
	"fmt"
	"sort"
)

// RunningTotal orders rows by orderColumn ascending and appends totalColumn
// holding the prefix sum of valueColumn. The period set may be arbitrary —
// no gap-filling happens; whatever periods exist are summed in order.
//
// An empty input yields an empty output (a prefix sum over nothing is
// nothing). Fails with ErrInvalidMetric if any row lacks a numeric value.
func RunningTotal(rows []map[string]interface{}, orderColumn, valueColumn, totalColumn string) ([]map[string]interface{}, error) {
	result := copyRows(rows)
	sort.SliceStable(result, func(i, j int) bool {
		return compareValues(result[i][orderColumn], result[j][orderColumn]) < 0
	})

	total := 0.0
	for i, row := range result {
		v, err := metricValue(row, valueColumn, i)
		if err != nil {
			return nil, fmt.Errorf("running total: %w", err)
		}
		total += v
		row[totalColumn] = total
	}

	return result, nil
}

// CumeDist appends pctColumn holding each row's cumulative distribution
// value over metricColumn: the fraction of rows whose metric is at or below
// the row's metric, in (0, 1]. The maximum metric maps to exactly 1.0 and
// equal metrics share the same percentile. Input order is preserved.
//
// Fails with ErrEmptyInput on an empty row set.
func CumeDist(rows []map[string]interface{}, metricColumn, pctColumn string) ([]map[string]interface{}, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("cume dist over %q: %w", metricColumn, ErrEmptyInput)
	}

	metrics := make([]float64, len(rows))
	for i, row := range rows {
		m, err := metricValue(row, metricColumn, i)
		if err != nil {
			return nil, fmt.Errorf("cume dist: %w", err)
		}
		metrics[i] = m
	}

	sorted := append([]float64(nil), metrics...)
	sort.Float64s(sorted)

	// Cumulative count at each distinct value: number of rows <= value.
	atOrBelow := make(map[float64]int, len(sorted))
	for i, v := range sorted {
		atOrBelow[v] = i + 1 // last occurrence wins, counting ties
	}

	n := float64(len(rows))
	result := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		out := copyRow(row)
		out[pctColumn] = float64(atOrBelow[metrics[i]]) / n
		result[i] = out
	}

	return result, nil
}

// TopFraction keeps the rows whose pctColumn is at or above 1-fraction:
// the "top K%" of a distribution previously annotated by CumeDist.
// fraction must be in (0, 1].
func TopFraction(rows []map[string]interface{}, pctColumn string, fraction float64) ([]map[string]interface{}, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, fmt.Errorf("%w: fraction must be in (0, 1], got %g", ErrInvalidArgument, fraction)
	}

	cutoff := 1 - fraction
	result := make([]map[string]interface{}, 0)
	for i, row := range rows {
		pct, err := metricValue(row, pctColumn, i)
		if err != nil {
			return nil, fmt.Errorf("top fraction: %w", err)
		}
		if pct >= cutoff {
			result = append(result, copyRow(row))
		}
	}

	return result, nil
}
