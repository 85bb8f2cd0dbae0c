package graph

import (
	"math"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
)

// Index is the position of a node in the graph's node slice. it is only meaningful for the graph that produced it.
type Index int32

const (
	// DefaultPrecision is the number of decimal degrees kept in a node key (~0.11m at the equator).
	// a higher precision gives more distinct nodes and less snapping of nearly coincident sidewalk vertices.
	DefaultPrecision = 6
	MaxPrecision     = 9
)

var pow10 = [MaxPrecision + 1]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// NodeKey is the identity of a node: the coordinate rounded to a fixed number of decimals, stored as scaled integers.
type NodeKey struct {
	Lat int64
	Lon int64
}

func NewNodeKey(c datastructure.Coordinate, precision int) NodeKey {
	scale := pow10[precision]
	return NodeKey{
		Lat: int64(math.Round(c.Lat * scale)),
		Lon: int64(math.Round(c.Lon * scale)),
	}
}

func (k NodeKey) Coordinate(precision int) datastructure.Coordinate {
	scale := pow10[precision]
	return datastructure.NewCoordinate(float64(k.Lat)/scale, float64(k.Lon)/scale)
}

type Node struct {
	Key   NodeKey
	Coord datastructure.Coordinate
}

type Edge struct {
	To     Index
	Weight float64 // meters
}
