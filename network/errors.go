package network

import "errors"

var (
	// ErrGraphBuild reports a route referencing an airport or airline that
	// is absent from the snapshot. Upstream integrity should prevent this;
	// the builder still checks.
	ErrGraphBuild = errors.New("graph build: malformed route input")

	// ErrInvalidArgument reports an out-of-range traversal parameter, such
	// as a non-positive hop bound or an origin not present in the graph.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceLimit reports that a traversal exceeded a caller-imposed
	// result cap before completing.
	ErrResourceLimit = errors.New("resource limit exceeded")
)
