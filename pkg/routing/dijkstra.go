package routing

import (
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
)

var (
	ErrUnreachable = errors.New("destination is not reachable from source")
)

// ShortestPath runs dijkstra from -> to and returns the node sequence and its total weight in meters.
// from == to gives a single node path. edge weights are geodesic distances so they are never negative.
func ShortestPath(g *graph.Graph, from, to graph.Index) ([]graph.Index, float64, error) {
	n := g.NodeCount()
	if from < 0 || int(from) >= n || to < 0 || int(to) >= n {
		return nil, 0, fmt.Errorf("node index out of range: from %d, to %d, nodes %d", from, to, n)
	}
	if from == to {
		return []graph.Index{from}, 0, nil
	}

	dist := make([]float64, n)
	prev := make([]graph.Index, n)
	settled := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[from] = 0

	// stale entries are left in the heap and skipped when popped
	pq := datastructure.NewMinHeap[graph.Index, float64]()
	pq.Insert(from, 0)

	for !pq.IsEmpty() {
		u, uDist := pq.ExtractMin()
		if settled[u] {
			continue
		}
		settled[u] = true

		if u == to {
			break
		}

		for _, e := range g.Neighbors(u) {
			if settled[e.To] {
				continue
			}
			alt := uDist + e.Weight
			if alt < dist[e.To] {
				dist[e.To] = alt
				prev[e.To] = u
				pq.Insert(e.To, alt)
			}
		}
	}

	if !settled[to] {
		return nil, 0, ErrUnreachable
	}

	path := make([]graph.Index, 0)
	for v := to; v != -1; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if path[0] != from {
		return nil, 0, ErrUnreachable
	}
	return path, dist[to], nil
}
