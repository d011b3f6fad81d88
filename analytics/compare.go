package analytics

import "fmt"

// toFloat64 converts a value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// metricValue extracts a required numeric column from a row.
func metricValue(row map[string]interface{}, column string, index int) (float64, error) {
	v, exists := row[column]
	if !exists || v == nil {
		return 0, fmt.Errorf("%w: column %q missing on row %d", ErrInvalidMetric, column, index)
	}
	num, ok := toFloat64(v)
	if !ok {
		return 0, fmt.Errorf("%w: column %q is %T on row %d, want number", ErrInvalidMetric, column, v, index)
	}
	return num, nil
}

// compareValues compares two values and returns:
// -1 if a < b
//
//	0 if a == b
//
// +1 if a > b
func compareValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		if aNum < bNum {
			return -1
		}
		if aNum > bNum {
			return 1
		}
		return 0
	}

	aStr, aIsStr := a.(string)
	bStr, bIsStr := b.(string)
	if aIsStr && bIsStr {
		if aStr < bStr {
			return -1
		}
		if aStr > bStr {
			return 1
		}
		return 0
	}

	// Type mismatch or unsupported types - treat as equal
	return 0
}

// copyRow shallow-copies a row so primitives never mutate caller data.
func copyRow(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row)+1)
	for k, v := range row {
		out[k] = v
	}
	return out
}

// copyRows shallow-copies a row slice.
func copyRows(rows []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		out[i] = copyRow(row)
	}
	return out
}
