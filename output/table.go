package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter outputs a report as an aligned text table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new aligned-table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the report with a header row, columns in report order.
func (t *TableFormatter) Format(r *Report) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(r.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, row := range r.Rows {
		record := make([]string, len(r.Columns))
		for i, col := range r.Columns {
			record[i] = formatValue(row[col])
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
