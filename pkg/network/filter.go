package network

import (
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
)

// FilterBoundingBox keeps LineStrings that lie entirely inside bb and Points inside bb.
func FilterBoundingBox(features []datastructure.NetworkFeature, bb geo.BoundingBox) []datastructure.NetworkFeature {
	filtered := make([]datastructure.NetworkFeature, 0, len(features))
	for _, f := range features {
		if len(f.Coordinates) == 0 {
			continue
		}
		if bb.PointsContains(f.Coordinates) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
