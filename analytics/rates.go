package analytics

import "fmt"

// Rates appends rateColumn = numColumn/denColumn to each row. Rows whose
// denominator is zero are excluded from the result — not reported as 0.0,
// not null — and their keyColumn values are returned separately so callers
// can detect the exclusion.
//
// Fails with ErrInvalidMetric if a numerator or denominator is missing or
// non-numeric.
func Rates(rows []map[string]interface{}, numColumn, denColumn, rateColumn, keyColumn string) (result []map[string]interface{}, excluded []string, err error) {
	result = make([]map[string]interface{}, 0, len(rows))

	for i, row := range rows {
		num, err := metricValue(row, numColumn, i)
		if err != nil {
			return nil, nil, fmt.Errorf("rates: %w", err)
		}
		den, err := metricValue(row, denColumn, i)
		if err != nil {
			return nil, nil, fmt.Errorf("rates: %w", err)
		}

		if den == 0 {
			excluded = append(excluded, fmt.Sprintf("%v", row[keyColumn]))
			continue
		}

		out := copyRow(row)
		out[rateColumn] = num / den
		result = append(result, out)
	}

	return result, excluded, nil
}
