package routing

import (
	"errors"
	"math"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
)

var (
	ErrNoNodes = errors.New("graph has no nodes")
)

// NearestNode scans every node and returns the one closest to p with its distance in meters.
// on ties the node that comes first in graph order wins.
func NearestNode(g *graph.Graph, p datastructure.Coordinate) (graph.Index, float64, error) {
	if g == nil || g.NodeCount() == 0 {
		return -1, 0, ErrNoNodes
	}

	nearest := graph.Index(-1)
	minDist := math.Inf(1)
	for i, node := range g.Nodes() {
		dist := geo.CoordinateDistance(p, node.Coord)
		if dist < minDist {
			minDist = dist
			nearest = graph.Index(i)
		}
	}
	return nearest, minDist, nil
}
