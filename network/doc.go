// Package network builds the directed route graph and answers connectivity
// questions over it.
//
// Build turns the Route relation of a store.Snapshot into an immutable
// multigraph: nodes are airports, edges are airline-operated routes tagged
// with the operating airline and the route distance. Parallel edges between
// the same airport pair are preserved.
//
// Two traversal operations are provided: ReachableWithin (bounded-depth BFS
// reporting minimum hop counts) and EnumeratePaths (simple-path enumeration
// up to a hop bound). Both are pure functions with deterministic output
// ordering, so results are reproducible across runs.
package network
