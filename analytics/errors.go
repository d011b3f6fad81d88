package analytics

import "errors"

var (
	// ErrEmptyInput reports an operation that requires at least one row
	// being given none.
	ErrEmptyInput = errors.New("empty input: operation requires at least one row")

	// ErrInvalidMetric reports a required numeric field that is missing or
	// non-numeric on a row.
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrInvalidArgument reports an out-of-range caller parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)
