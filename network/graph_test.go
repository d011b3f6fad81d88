package network

import (
	"errors"
	"testing"

	"github.com/vegasq/flightlens/store"
)

// edgeSpec describes one route for test graph construction: origin code,
// destination code, airline code, distance.
type edgeSpec struct {
	from, to, airline string
	distance          float64
}

// buildTestGraph creates a snapshot and graph from airport codes and edges.
// Airports are assigned ids in the order codes are listed, airlines in the
// order they first appear in edges.
func buildTestGraph(t *testing.T, codes []string, edges []edgeSpec) (*store.Snapshot, *Graph) {
	t.Helper()

	airportID := make(map[string]int64)
	airports := make([]store.Airport, 0, len(codes))
	for i, code := range codes {
		id := int64(i + 1)
		airportID[code] = id
		c := code
		airports = append(airports, store.Airport{ID: id, IATA: &c, Name: c + " airport"})
	}

	airlineID := make(map[string]int64)
	var airlines []store.Airline
	var routes []store.Route
	for i, e := range edges {
		id, ok := airlineID[e.airline]
		if !ok {
			id = int64(len(airlines) + 1)
			airlineID[e.airline] = id
			airlines = append(airlines, store.Airline{ID: id, IATA: e.airline, Name: e.airline + " air"})
		}
		routes = append(routes, store.Route{
			ID:            int64(i + 1),
			AirlineID:     id,
			OriginID:      airportID[e.from],
			DestinationID: airportID[e.to],
			DistanceKM:    e.distance,
		})
	}

	snap := store.NewSnapshot(airports, airlines, routes, nil, nil, nil, nil, nil)
	g, err := Build(snap)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return snap, g
}

func TestBuildPreservesParallelEdges(t *testing.T) {
	_, g := buildTestGraph(t,
		[]string{"AAA", "BBB"},
		[]edgeSpec{
			{"AAA", "BBB", "X1", 100},
			{"AAA", "BBB", "X2", 100},
		})

	if g.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges (parallel airlines preserved), got %d", g.EdgeCount())
	}
	if g.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.NodeCount())
	}
}

func TestBuildUnknownAirport(t *testing.T) {
	code := "AAA"
	airports := []store.Airport{{ID: 1, IATA: &code}}
	airlines := []store.Airline{{ID: 1, IATA: "X1"}}
	routes := []store.Route{{ID: 1, AirlineID: 1, OriginID: 1, DestinationID: 99, DistanceKM: 10}}

	snap := store.NewSnapshot(airports, airlines, routes, nil, nil, nil, nil, nil)
	_, err := Build(snap)
	if err == nil {
		t.Fatal("Expected error for route referencing unknown airport")
	}
	if !errors.Is(err, ErrGraphBuild) {
		t.Errorf("Expected ErrGraphBuild, got %v", err)
	}
}

func TestBuildUnknownAirline(t *testing.T) {
	a, b := "AAA", "BBB"
	airports := []store.Airport{{ID: 1, IATA: &a}, {ID: 2, IATA: &b}}
	routes := []store.Route{{ID: 1, AirlineID: 7, OriginID: 1, DestinationID: 2, DistanceKM: 10}}

	snap := store.NewSnapshot(airports, nil, routes, nil, nil, nil, nil, nil)
	_, err := Build(snap)
	if !errors.Is(err, ErrGraphBuild) {
		t.Errorf("Expected ErrGraphBuild for unknown airline, got %v", err)
	}
}

func TestAirportIDRoundTrip(t *testing.T) {
	_, g := buildTestGraph(t, []string{"AAA", "BBB"}, nil)

	id, ok := g.AirportID("BBB")
	if !ok {
		t.Fatal("Expected to resolve BBB")
	}
	label, ok := g.Label(id)
	if !ok || label != "BBB" {
		t.Errorf("Expected label BBB for id %d, got %q", id, label)
	}
	if _, ok := g.AirportID("ZZZ"); ok {
		t.Error("Did not expect to resolve ZZZ")
	}
}

func TestLabelFallsBackToICAOAndID(t *testing.T) {
	icao := "KABC"
	airports := []store.Airport{
		{ID: 1, ICAO: &icao},
		{ID: 2},
	}
	snap := store.NewSnapshot(airports, nil, nil, nil, nil, nil, nil, nil)
	g, err := Build(snap)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if label, _ := g.Label(1); label != "KABC" {
		t.Errorf("Expected ICAO fallback, got %q", label)
	}
	if label, _ := g.Label(2); label != "#2" {
		t.Errorf("Expected id fallback, got %q", label)
	}
}
