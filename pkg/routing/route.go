package routing

import (
	"errors"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
)

const (
	// DefaultSnapTolerance in meters. a requested point closer than this to its snapped node is not added to the route.
	DefaultSnapTolerance = 0.5
)

type FallbackReason uint8

const (
	FallbackNone FallbackReason = iota
	FallbackEmptyNetwork
	FallbackSameNode
	FallbackUnreachable
)

func (f FallbackReason) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackEmptyNetwork:
		return "empty_network"
	case FallbackSameNode:
		return "same_node"
	case FallbackUnreachable:
		return "unreachable"
	}
	return "unknown"
}

// Route always has at least two points. Distance is the accumulated length of Points in meters.
type Route struct {
	Points   []datastructure.Coordinate
	Distance float64
	Fallback FallbackReason
}

func (r Route) IsFallback() bool {
	return r.Fallback != FallbackNone
}

type RouteOption func(*routeConfig)

type routeConfig struct {
	snapTolerance float64
}

func WithSnapTolerance(meters float64) RouteOption {
	return func(c *routeConfig) {
		c.snapTolerance = meters
	}
}

func straightRoute(start, end datastructure.Coordinate, reason FallbackReason) Route {
	points := []datastructure.Coordinate{start, end}
	return Route{
		Points:   points,
		Distance: geo.PathLength(points),
		Fallback: reason,
	}
}

// ComputeRoute finds the shortest sidewalk path between start and end. the route begins and ends at the requested
// points. an empty network, start and end snapping to the same node, or a disconnected destination all give the
// straight line [start, end]. the only error is a malformed start or end point.
func ComputeRoute(start, end datastructure.Coordinate, g *graph.Graph, opts ...RouteOption) (Route, error) {
	cfg := routeConfig{snapTolerance: DefaultSnapTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := start.Validate(); err != nil {
		return Route{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "invalid start point")
	}
	if err := end.Validate(); err != nil {
		return Route{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "invalid end point")
	}

	startNode, _, err := NearestNode(g, start)
	if errors.Is(err, ErrNoNodes) {
		return straightRoute(start, end, FallbackEmptyNetwork), nil
	}
	endNode, _, _ := NearestNode(g, end)

	if startNode == endNode {
		return straightRoute(start, end, FallbackSameNode), nil
	}

	path, _, err := ShortestPath(g, startNode, endNode)
	if err != nil {
		return straightRoute(start, end, FallbackUnreachable), nil
	}

	points := make([]datastructure.Coordinate, 0, len(path)+2)
	if geo.CoordinateDistance(start, g.Node(path[0]).Coord) > cfg.snapTolerance {
		points = append(points, start)
	}
	for _, idx := range path {
		points = append(points, g.Node(idx).Coord)
	}
	if geo.CoordinateDistance(end, g.Node(path[len(path)-1]).Coord) > cfg.snapTolerance {
		points = append(points, end)
	}

	return Route{
		Points:   points,
		Distance: geo.PathLength(points),
		Fallback: FallbackNone,
	}, nil
}
