package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs report rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the report as JSON Lines (one JSON object per row).
// Only the report's columns are emitted; a column missing from a row is
// encoded as null to keep the line shape stable.
func (j *JSONFormatter) Format(r *Report) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range r.Rows {
		obj := make(map[string]interface{}, len(r.Columns))
		for _, col := range r.Columns {
			if v, ok := row[col]; ok {
				obj[col] = v
			} else {
				obj[col] = nil
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
