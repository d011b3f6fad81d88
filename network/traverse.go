package network

import (
	"fmt"
	"sort"
)

// Reach is one airport reachable from a traversal origin, with the minimum
// number of directed edges needed to get there.
type Reach struct {
	AirportID int64
	Label     string
	Hops      int
}

// Path is one simple directed path from a traversal origin. DistanceKM is
// the sum of edge distances; where parallel airline edges exist between two
// airports, the shortest one contributes.
type Path struct {
	AirportIDs []int64
	Labels     []string
	DistanceKM float64
}

// Limits caps the amount of work a path enumeration may perform. A zero
// value means unlimited.
type Limits struct {
	// MaxPaths aborts the enumeration with ErrResourceLimit once more than
	// this many paths have been produced.
	MaxPaths int
}

// ReachableWithin returns every airport reachable from origin within
// maxHops directed edges, each with its minimum hop count.
//
// Expansion is breadth-first level by level, so the first discovery of an
// airport fixes its hop count and it is never re-emitted at a larger one.
// The origin itself is not part of the result. An origin with no outgoing
// edges yields an empty result. Results are ordered by hop count, then by
// airport label.
func (g *Graph) ReachableWithin(origin int64, maxHops int) ([]Reach, error) {
	if maxHops <= 0 {
		return nil, fmt.Errorf("%w: max hops must be positive, got %d", ErrInvalidArgument, maxHops)
	}
	if !g.contains(origin) {
		return nil, fmt.Errorf("%w: origin airport %d not in graph", ErrInvalidArgument, origin)
	}

	visited := map[int64]bool{origin: true}
	frontier := []int64{origin}
	var result []Reach

	for hops := 1; hops <= maxHops && len(frontier) > 0; hops++ {
		var next []int64
		for _, id := range frontier {
			for _, n := range g.neighbors(id) {
				if visited[n.to] {
					continue
				}
				visited[n.to] = true
				next = append(next, n.to)
				result = append(result, Reach{AirportID: n.to, Label: g.labels[n.to], Hops: hops})
			}
		}
		// Order within the level is discovery order across the frontier;
		// normalize to label order for reproducibility.
		level := result[len(result)-len(next):]
		sort.Slice(level, func(i, j int) bool { return level[i].Label < level[j].Label })
		frontier = next
	}

	return result, nil
}

// EnumeratePaths returns every simple directed path from origin of length
// 1..maxHops, as ordered airport sequences.
//
// A path never revisits an airport already on it, which bounds the work and
// keeps the "up to N hops" contract meaningful on cyclic graphs. Paths are
// ordered by hop count first, then lexicographically by their label
// sequence. Enumeration cost grows exponentially with maxHops on dense
// graphs; callers should keep the bound small or set Limits.MaxPaths.
func (g *Graph) EnumeratePaths(origin int64, maxHops int, limits Limits) ([]Path, error) {
	if maxHops <= 0 {
		return nil, fmt.Errorf("%w: max hops must be positive, got %d", ErrInvalidArgument, maxHops)
	}
	if !g.contains(origin) {
		return nil, fmt.Errorf("%w: origin airport %d not in graph", ErrInvalidArgument, origin)
	}

	var paths []Path
	onPath := map[int64]bool{origin: true}
	trail := []int64{origin}

	var walk func(at int64, depth int, distance float64) error
	walk = func(at int64, depth int, distance float64) error {
		if depth == maxHops {
			return nil
		}
		for _, n := range g.neighbors(at) {
			if onPath[n.to] {
				continue
			}

			trail = append(trail, n.to)
			onPath[n.to] = true
			total := distance + n.distance

			if limits.MaxPaths > 0 && len(paths) >= limits.MaxPaths {
				return fmt.Errorf("%w: path enumeration exceeded %d paths", ErrResourceLimit, limits.MaxPaths)
			}
			paths = append(paths, g.snapshotPath(trail, total))

			if err := walk(n.to, depth+1, total); err != nil {
				return err
			}

			onPath[n.to] = false
			trail = trail[:len(trail)-1]
		}
		return nil
	}

	if err := walk(origin, 0, 0); err != nil {
		return nil, err
	}

	// Shortest paths first; lexicographic label order within a hop count.
	sort.Slice(paths, func(i, j int) bool {
		if len(paths[i].Labels) != len(paths[j].Labels) {
			return len(paths[i].Labels) < len(paths[j].Labels)
		}
		for k := range paths[i].Labels {
			if paths[i].Labels[k] != paths[j].Labels[k] {
				return paths[i].Labels[k] < paths[j].Labels[k]
			}
		}
		return false
	})

	return paths, nil
}

// snapshotPath copies the current trail into a standalone Path.
func (g *Graph) snapshotPath(trail []int64, distance float64) Path {
	ids := make([]int64, len(trail))
	labels := make([]string, len(trail))
	for i, id := range trail {
		ids[i] = id
		labels[i] = g.labels[id]
	}
	return Path{AirportIDs: ids, Labels: labels, DistanceKM: distance}
}

// neighbor is a collapsed outgoing connection: parallel airline edges to
// the same airport merge, keeping the shortest distance.
type neighbor struct {
	to       int64
	distance float64
}

// neighbors returns the distinct destination airports of origin in label
// order. Adjacency lists are pre-sorted by destination label, so parallel
// edges are adjacent and collapse in one pass.
func (g *Graph) neighbors(origin int64) []neighbor {
	edges := g.adj[origin]
	out := make([]neighbor, 0, len(edges))
	for _, e := range edges {
		if n := len(out); n > 0 && out[n-1].to == e.To {
			if e.DistanceKM < out[n-1].distance {
				out[n-1].distance = e.DistanceKM
			}
			continue
		}
		out = append(out, neighbor{to: e.To, distance: e.DistanceKM})
	}
	return out
}
