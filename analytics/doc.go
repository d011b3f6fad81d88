// Package analytics computes ordered, grouped, and cumulative analytics
// over the airline dataset.
//
// The package has two layers. The primitives (DenseRank, RunningTotal,
// CumeDist, TopFraction, Rates) operate on generic rows — maps of named
// values, the same row shape the formatters consume — and implement the
// ranking, prefix-sum, percentile, and rate semantics every report shares.
// The report functions (AirlinePunctuality, WorstRoutes, MonthlyRevenue,
// CustomerValue, ...) read a store.Snapshot, aggregate the fact rows, and
// apply the primitives to produce an output.Report.
//
// Everything here is a pure function: input rows are copied, never mutated,
// and results are recomputed per call.
package analytics
