package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
)

var (
	ErrEmptyNetwork = errors.New("network has no usable Point or LineString geometry")
)

type BuildStats struct {
	Features           int `msgpack:"features" json:"features"`
	PointFeatures      int `msgpack:"point_features" json:"point_features"`
	LineStringFeatures int `msgpack:"line_string_features" json:"line_string_features"`
	SkippedFeatures    int `msgpack:"skipped_features" json:"skipped_features"`
	SelfLoops          int `msgpack:"self_loops" json:"self_loops"`
	DuplicateEdges     int `msgpack:"duplicate_edges" json:"duplicate_edges"`
}

// Graph is an undirected weighted sidewalk graph. it is read-only once BuildGraph returns,
// so a single instance can serve concurrent route queries.
type Graph struct {
	precision int
	nodes     []Node
	keyIndex  map[NodeKey]Index
	adjacency [][]Edge
	edgeCount int
	bounds    s2.Rect
	stats     BuildStats
}

type Option func(*buildConfig)

type buildConfig struct {
	precision int
}

func WithPrecision(precision int) Option {
	return func(c *buildConfig) {
		c.precision = precision
	}
}

func newGraph(precision int) *Graph {
	return &Graph{
		precision: precision,
		nodes:     make([]Node, 0),
		keyIndex:  make(map[NodeKey]Index),
		adjacency: make([][]Edge, 0),
		bounds:    s2.EmptyRect(),
	}
}

// BuildGraph builds the sidewalk graph from network features. LineString features contribute an edge per
// consecutive coordinate pair, Point features an isolated node. features with invalid coordinates are skipped.
func BuildGraph(features []datastructure.NetworkFeature, opts ...Option) (*Graph, error) {
	cfg := buildConfig{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.precision < 0 || cfg.precision > MaxPrecision {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "node key precision must be in [0, %d], got %d", MaxPrecision, cfg.precision)
	}

	g := newGraph(cfg.precision)
	g.stats.Features = len(features)

	for _, feature := range features {
		if !validFeature(feature) {
			g.stats.SkippedFeatures++
			continue
		}

		switch feature.Kind {
		case datastructure.PointFeature:
			g.stats.PointFeatures++
			g.addNode(feature.Coordinates[0])
		case datastructure.LineStringFeature:
			g.stats.LineStringFeatures++
			if len(feature.Coordinates) == 1 {
				g.addNode(feature.Coordinates[0])
				continue
			}
			prev := g.addNode(feature.Coordinates[0])
			for _, coord := range feature.Coordinates[1:] {
				curr := g.addNode(coord)
				g.addEdge(prev, curr)
				prev = curr
			}
		}
	}

	if len(g.nodes) == 0 {
		return nil, pkg.WrapErrorf(ErrEmptyNetwork, pkg.ErrBadParamInput, "build graph from %d features", len(features))
	}
	return g, nil
}

func validFeature(f datastructure.NetworkFeature) bool {
	if len(f.Coordinates) == 0 {
		return false
	}
	if f.Kind != datastructure.PointFeature && f.Kind != datastructure.LineStringFeature {
		return false
	}
	for _, c := range f.Coordinates {
		if c.Validate() != nil {
			return false
		}
	}
	return true
}

// addNode returns the index of the node for coord's key, creating it on first sight.
func (g *Graph) addNode(coord datastructure.Coordinate) Index {
	key := NewNodeKey(coord, g.precision)
	if idx, ok := g.keyIndex[key]; ok {
		return idx
	}
	idx := Index(len(g.nodes))
	nodeCoord := key.Coordinate(g.precision)
	g.nodes = append(g.nodes, Node{Key: key, Coord: nodeCoord})
	g.adjacency = append(g.adjacency, nil)
	g.keyIndex[key] = idx
	g.bounds = g.bounds.AddPoint(s2.LatLngFromDegrees(nodeCoord.Lat, nodeCoord.Lon))
	return idx
}

func (g *Graph) addEdge(u, v Index) {
	if u == v {
		g.stats.SelfLoops++
		return
	}
	for _, e := range g.adjacency[u] {
		if e.To == v {
			g.stats.DuplicateEdges++
			return
		}
	}
	w := geo.CoordinateDistance(g.nodes[u].Coord, g.nodes[v].Coord)
	g.adjacency[u] = append(g.adjacency[u], Edge{To: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Edge{To: u, Weight: w})
	g.edgeCount++
}

func (g *Graph) Precision() int {
	return g.precision
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount counts undirected edges once.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

func (g *Graph) Node(i Index) Node {
	return g.nodes[i]
}

func (g *Graph) Nodes() []Node {
	return g.nodes
}

func (g *Graph) Neighbors(i Index) []Edge {
	return g.adjacency[i]
}

// Lookup returns the node whose key matches coord at the graph's precision.
func (g *Graph) Lookup(coord datastructure.Coordinate) (Index, bool) {
	idx, ok := g.keyIndex[NewNodeKey(coord, g.precision)]
	return idx, ok
}

// Bounds is the lat/lng rectangle covering every node.
func (g *Graph) Bounds() s2.Rect {
	return g.bounds
}

// Covers reports whether coord lies within the network rectangle expanded by margin meters.
func (g *Graph) Covers(coord datastructure.Coordinate, marginMeters float64) bool {
	if g.bounds.IsEmpty() {
		return false
	}
	ll := s2.LatLngFromDegrees(coord.Lat, coord.Lon)
	if g.bounds.ContainsLatLng(ll) {
		return true
	}
	return g.bounds.DistanceToLatLng(ll) <= s1.Angle(geo.AngularDistance(marginMeters))
}

func (g *Graph) Stats() BuildStats {
	return g.stats
}

func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Sidewalk Graph ===\n")
	fmt.Fprintf(&sb, "Nodes: %d | Edges: %d | Precision: %d\n", g.NodeCount(), g.EdgeCount(), g.precision)
	fmt.Fprintf(&sb, "Features: %d (points %d, lines %d, skipped %d)\n", g.stats.Features, g.stats.PointFeatures,
		g.stats.LineStringFeatures, g.stats.SkippedFeatures)
	return sb.String()
}
