// Package output shapes engine results into tabular output formats.
//
// Engines return a Report: an ordered list of column names plus rows of
// named values. Formatters render a Report as an aligned text table, CSV,
// or JSON Lines, preserving numeric precision and null semantics. No
// business logic lives here.
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(report); err != nil {
//	    log.Fatal(err)
//	}
package output

import "io"

// Report is a flat tabular result: an ordered column list and the rows
// carrying values for those columns. A missing key in a row renders as
// null/empty, never as an error.
type Report struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes the report in the formatter's specific format
	Format(r *Report) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
