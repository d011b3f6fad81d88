package network

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vegasq/flightlens/store"
)

// Edge is one airline-operated directed route. Parallel edges between the
// same airport pair (different airlines) are preserved as distinct edges.
type Edge struct {
	Airline    string // operating airline IATA code
	From       int64  // origin airport id
	To         int64  // destination airport id
	DistanceKM float64
}

// Graph is an immutable directed weighted multigraph over airports, built
// from the Route relation. Adjacency lists are sorted by destination label
// then airline so every traversal is deterministic. Rebuild the graph if
// the underlying route set changes; it is never mutated in place.
type Graph struct {
	adj    map[int64][]Edge
	labels map[int64]string
	byCode map[string]int64
}

// Build constructs the route graph from a snapshot.
//
// Every airport becomes a node even if no route touches it. A route whose
// origin, destination, or airline does not resolve fails the build with an
// error wrapping ErrGraphBuild.
func Build(snap *store.Snapshot) (*Graph, error) {
	g := &Graph{
		adj:    make(map[int64][]Edge, len(snap.Airports)),
		labels: make(map[int64]string, len(snap.Airports)),
		byCode: make(map[string]int64),
	}

	for i := range snap.Airports {
		a := snap.Airports[i]
		g.adj[a.ID] = nil
		label := airportLabel(a)
		g.labels[a.ID] = label
		g.byCode[label] = a.ID
	}

	for i := range snap.Routes {
		r := snap.Routes[i]
		if _, ok := g.labels[r.OriginID]; !ok {
			return nil, fmt.Errorf("%w: route %d references unknown origin airport %d", ErrGraphBuild, r.ID, r.OriginID)
		}
		if _, ok := g.labels[r.DestinationID]; !ok {
			return nil, fmt.Errorf("%w: route %d references unknown destination airport %d", ErrGraphBuild, r.ID, r.DestinationID)
		}
		airline, ok := snap.AirlineByID(r.AirlineID)
		if !ok {
			return nil, fmt.Errorf("%w: route %d references unknown airline %d", ErrGraphBuild, r.ID, r.AirlineID)
		}

		g.adj[r.OriginID] = append(g.adj[r.OriginID], Edge{
			Airline:    airline.IATA,
			From:       r.OriginID,
			To:         r.DestinationID,
			DistanceKM: r.DistanceKM,
		})
	}

	// Deterministic traversal order: destination label, then airline.
	for id := range g.adj {
		edges := g.adj[id]
		sort.Slice(edges, func(i, j int) bool {
			li, lj := g.labels[edges[i].To], g.labels[edges[j].To]
			if li != lj {
				return li < lj
			}
			return edges[i].Airline < edges[j].Airline
		})
	}

	return g, nil
}

// airportLabel is the stable display label for an airport: the IATA code
// when present, else the ICAO code, else the numeric id.
func airportLabel(a store.Airport) string {
	if a.IATA != nil && *a.IATA != "" {
		return *a.IATA
	}
	if a.ICAO != nil && *a.ICAO != "" {
		return *a.ICAO
	}
	return "#" + strconv.FormatInt(a.ID, 10)
}

// Label returns the display label of an airport node.
func (g *Graph) Label(id int64) (string, bool) {
	label, ok := g.labels[id]
	return label, ok
}

// AirportID resolves a display label (IATA or ICAO code) back to an
// airport id.
func (g *Graph) AirportID(label string) (int64, bool) {
	id, ok := g.byCode[label]
	return id, ok
}

// Edges returns the outgoing edges of an airport in traversal order. The
// returned slice is shared; callers must not modify it.
func (g *Graph) Edges(origin int64) []Edge {
	return g.adj[origin]
}

// NodeCount returns the number of airports in the graph.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the total number of directed edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}
	return n
}

// contains reports whether id is a node in the graph.
func (g *Graph) contains(id int64) bool {
	_, ok := g.labels[id]
	return ok
}
