package routing

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func lonLatLine(lonLats ...[2]float64) datastructure.NetworkFeature {
	coords := make([]datastructure.Coordinate, len(lonLats))
	for i, ll := range lonLats {
		coords[i] = datastructure.FromLonLat(ll)
	}
	return datastructure.NewLineStringFeature(coords)
}

func lonLat(lon, lat float64) datastructure.Coordinate {
	return datastructure.FromLonLat([2]float64{lon, lat})
}

func buildGraph(t *testing.T, features ...datastructure.NetworkFeature) *graph.Graph {
	t.Helper()
	g, err := graph.BuildGraph(features)
	require.NoError(t, err)
	return g
}

func TestNearestNode(t *testing.T) {
	g := buildGraph(t, lonLatLine([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2}))

	tests := []struct {
		name  string
		query datastructure.Coordinate
		want  datastructure.Coordinate
	}{
		{name: "near first node", query: lonLat(0, 0.1), want: lonLat(0, 0)},
		{name: "near middle node", query: lonLat(0.2, 1.3), want: lonLat(0, 1)},
		{name: "near last node", query: lonLat(0, 1.9), want: lonLat(0, 2)},
		{name: "exactly on a node", query: lonLat(0, 2), want: lonLat(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, dist, err := NearestNode(g, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Node(idx).Coord)
			assert.InDelta(t, geo.CoordinateDistance(tt.query, tt.want), dist, 1e-9)
		})
	}

	t.Run("tie goes to the first node", func(t *testing.T) {
		idx, _, err := NearestNode(g, lonLat(0, 0.5))
		require.NoError(t, err)
		assert.Equal(t, graph.Index(0), idx)
	})

	t.Run("no nodes", func(t *testing.T) {
		_, _, err := NearestNode(nil, lonLat(0, 0))
		assert.True(t, errors.Is(err, ErrNoNodes))
	})
}

func TestShortestPath(t *testing.T) {
	// square with a long detour: a-b-c direct (2 deg) vs a-d-e-c
	g := buildGraph(t,
		lonLatLine([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2}),
		lonLatLine([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 2}, [2]float64{0, 2}),
		lonLatLine([2]float64{10, 10}, [2]float64{10, 11}),
	)
	a, _ := g.Lookup(lonLat(0, 0))
	b, _ := g.Lookup(lonLat(0, 1))
	c, _ := g.Lookup(lonLat(0, 2))
	island, _ := g.Lookup(lonLat(10, 10))

	t.Run("takes the shorter branch", func(t *testing.T) {
		path, dist, err := ShortestPath(g, a, c)
		require.NoError(t, err)
		assert.Equal(t, []graph.Index{a, b, c}, path)
		assert.InDelta(t, geo.CoordinateDistance(lonLat(0, 0), lonLat(0, 1))+geo.CoordinateDistance(lonLat(0, 1), lonLat(0, 2)), dist, 1e-6)
	})

	t.Run("reverse direction is symmetric", func(t *testing.T) {
		path, _, err := ShortestPath(g, c, a)
		require.NoError(t, err)
		assert.Equal(t, []graph.Index{c, b, a}, path)
	})

	t.Run("same node", func(t *testing.T) {
		path, dist, err := ShortestPath(g, b, b)
		require.NoError(t, err)
		assert.Equal(t, []graph.Index{b}, path)
		assert.Equal(t, 0.0, dist)
	})

	t.Run("disconnected component", func(t *testing.T) {
		_, _, err := ShortestPath(g, a, island)
		assert.True(t, errors.Is(err, ErrUnreachable))
	})

	t.Run("index out of range", func(t *testing.T) {
		_, _, err := ShortestPath(g, a, graph.Index(g.NodeCount()))
		assert.Error(t, err)
	})
}

// bruteForce relaxes every edge n times, enough for any simple path.
func bruteForce(g *graph.Graph, from graph.Index) []float64 {
	dist := make([]float64, g.NodeCount())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[from] = 0
	for round := 0; round < g.NodeCount(); round++ {
		for u := range g.Nodes() {
			for _, e := range g.Neighbors(graph.Index(u)) {
				if dist[u]+e.Weight < dist[e.To] {
					dist[e.To] = dist[u] + e.Weight
				}
			}
		}
	}
	return dist
}

func TestShortestPathMatchesBellmanFord(t *testing.T) {
	rd := rand.New(rand.NewSource(2025))
	features := []datastructure.NetworkFeature{}
	for i := 0; i < 60; i++ {
		line := [][2]float64{}
		for j := 0; j < 3; j++ {
			// coarse grid so lines share vertices
			line = append(line, [2]float64{-88.08 + float64(rd.Intn(8))*0.001, 42.03 + float64(rd.Intn(8))*0.001})
		}
		features = append(features, lonLatLine(line...))
	}
	g := buildGraph(t, features...)

	want := bruteForce(g, 0)
	for v := range g.Nodes() {
		path, dist, err := ShortestPath(g, 0, graph.Index(v))
		if math.IsInf(want[v], 1) {
			assert.True(t, errors.Is(err, ErrUnreachable))
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, want[v], dist, 1e-6)
		assert.Equal(t, graph.Index(0), path[0])
		assert.Equal(t, graph.Index(v), path[len(path)-1])
	}
}

func TestComputeRoute(t *testing.T) {
	g := buildGraph(t, lonLatLine([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2}))

	t.Run("route through intermediate node", func(t *testing.T) {
		start, end := lonLat(0, 0.1), lonLat(0, 1.9)
		route, err := ComputeRoute(start, end, g)
		require.NoError(t, err)

		assert.Equal(t, FallbackNone, route.Fallback)
		assert.Equal(t, []datastructure.Coordinate{start, lonLat(0, 0), lonLat(0, 1), lonLat(0, 2), end}, route.Points)

		network := geo.PathLength([]datastructure.Coordinate{lonLat(0, 0), lonLat(0, 1), lonLat(0, 2)})
		assert.InDelta(t, network+2*geo.CoordinateDistance(start, lonLat(0, 0)), route.Distance, 1e-6)
	})

	t.Run("points on the network are not duplicated", func(t *testing.T) {
		route, err := ComputeRoute(lonLat(0, 0), lonLat(0, 2), g)
		require.NoError(t, err)
		assert.Equal(t, []datastructure.Coordinate{lonLat(0, 0), lonLat(0, 1), lonLat(0, 2)}, route.Points)
	})

	t.Run("identical start and end", func(t *testing.T) {
		p := lonLat(0, 1.2)
		route, err := ComputeRoute(p, p, g)
		require.NoError(t, err)
		assert.Equal(t, []datastructure.Coordinate{p, p}, route.Points)
		assert.InDelta(t, 0, route.Distance, 1e-9)
		assert.Equal(t, FallbackSameNode, route.Fallback)
	})

	t.Run("empty graph", func(t *testing.T) {
		a, b := lonLat(1, 1), lonLat(2, 2)
		route, err := ComputeRoute(a, b, nil)
		require.NoError(t, err)
		assert.Equal(t, []datastructure.Coordinate{a, b}, route.Points)
		assert.Equal(t, FallbackEmptyNetwork, route.Fallback)
		assert.True(t, route.IsFallback())
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := ComputeRoute(datastructure.NewCoordinate(math.NaN(), 0), lonLat(0, 1), g)
		assert.Error(t, err)
		assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))

		_, err = ComputeRoute(lonLat(0, 1), datastructure.NewCoordinate(0, 200), g)
		assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	})
}

func TestComputeRouteDisconnected(t *testing.T) {
	g := buildGraph(t,
		lonLatLine([2]float64{0, 0}, [2]float64{0, 1}),
		lonLatLine([2]float64{5, 0}, [2]float64{5, 1}),
	)
	start, end := lonLat(0.01, 0.5), lonLat(5.01, 0.5)

	route, err := ComputeRoute(start, end, g)
	require.NoError(t, err)
	assert.Equal(t, []datastructure.Coordinate{start, end}, route.Points)
	assert.Equal(t, FallbackUnreachable, route.Fallback)
}

func TestComputeRouteAlwaysTwoPoints(t *testing.T) {
	rd := rand.New(rand.NewSource(99))
	g := buildGraph(t,
		lonLatLine([2]float64{-88.0834, 42.0334}, [2]float64{-88.0830, 42.0334}, [2]float64{-88.0830, 42.0340}),
		lonLatLine([2]float64{-88.0900, 42.0400}, [2]float64{-88.0905, 42.0401}),
	)
	for i := 0; i < 200; i++ {
		a := lonLat(-88.09+rd.Float64()*0.01, 42.03+rd.Float64()*0.01)
		b := lonLat(-88.09+rd.Float64()*0.01, 42.03+rd.Float64()*0.01)
		route, err := ComputeRoute(a, b, g, WithSnapTolerance(0.1))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(route.Points), 2)
		assert.Equal(t, a, route.Points[0])
		assert.Equal(t, b, route.Points[len(route.Points)-1])
		assert.InDelta(t, geo.PathLength(route.Points), route.Distance, 1e-9)
	}
}
