package graph

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/sidewalk-nav/pkg/compress"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
)

// Snapshot is the serializable form of a Graph. node keys are stored exactly, edge weights are recomputed on load.
type Snapshot struct {
	Precision int        `msgpack:"precision"`
	KeyLats   []int64    `msgpack:"key_lats"`
	KeyLons   []int64    `msgpack:"key_lons"`
	EdgeEnds  []byte     `msgpack:"edge_ends"` // varint packed (u, v) pairs, u < v
	Stats     BuildStats `msgpack:"stats"`
}

func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{
		Precision: g.precision,
		KeyLats:   make([]int64, len(g.nodes)),
		KeyLons:   make([]int64, len(g.nodes)),
		Stats:     g.stats,
	}
	for i, n := range g.nodes {
		snap.KeyLats[i] = n.Key.Lat
		snap.KeyLons[i] = n.Key.Lon
	}

	ends := make([]int, 0, 2*g.edgeCount)
	for u, edges := range g.adjacency {
		for _, e := range edges {
			if Index(u) < e.To {
				ends = append(ends, u, int(e.To))
			}
		}
	}
	snap.EdgeEnds = compress.EncodeIndices(ends)
	return snap
}

// FromSnapshot rebuilds the graph the snapshot was taken from: same node order, same edges. neighbor order may differ.
func FromSnapshot(snap Snapshot) (*Graph, error) {
	if snap.Precision < 0 || snap.Precision > MaxPrecision {
		return nil, fmt.Errorf("snapshot precision %d out of range", snap.Precision)
	}
	if len(snap.KeyLats) != len(snap.KeyLons) {
		return nil, fmt.Errorf("snapshot has %d latitudes and %d longitudes", len(snap.KeyLats), len(snap.KeyLons))
	}
	if len(snap.KeyLats) == 0 {
		return nil, ErrEmptyNetwork
	}

	g := newGraph(snap.Precision)
	g.stats = snap.Stats
	g.nodes = make([]Node, len(snap.KeyLats))
	g.adjacency = make([][]Edge, len(snap.KeyLats))
	for i := range snap.KeyLats {
		key := NodeKey{Lat: snap.KeyLats[i], Lon: snap.KeyLons[i]}
		coord := key.Coordinate(snap.Precision)
		g.nodes[i] = Node{Key: key, Coord: coord}
		g.keyIndex[key] = Index(i)
		g.bounds = g.bounds.AddPoint(s2.LatLngFromDegrees(coord.Lat, coord.Lon))
	}

	ends := compress.DecodeIndices(snap.EdgeEnds)
	if len(ends)%2 != 0 {
		return nil, fmt.Errorf("snapshot edge list has odd length %d", len(ends))
	}
	seen := make(map[[2]int]struct{}, len(ends)/2)
	for i := 0; i < len(ends); i += 2 {
		u, v := ends[i], ends[i+1]
		if u < 0 || v < 0 || u >= len(g.nodes) || v >= len(g.nodes) {
			return nil, fmt.Errorf("snapshot edge (%d, %d) references unknown node", u, v)
		}
		if u == v {
			return nil, fmt.Errorf("snapshot edge (%d, %d) is a self loop", u, v)
		}
		pair := [2]int{min(u, v), max(u, v)}
		if _, dup := seen[pair]; dup {
			return nil, fmt.Errorf("snapshot edge (%d, %d) is duplicated", u, v)
		}
		seen[pair] = struct{}{}
		w := geo.CoordinateDistance(g.nodes[u].Coord, g.nodes[v].Coord)
		g.adjacency[u] = append(g.adjacency[u], Edge{To: Index(v), Weight: w})
		g.adjacency[v] = append(g.adjacency[v], Edge{To: Index(u), Weight: w})
		g.edgeCount++
	}
	return g, nil
}
