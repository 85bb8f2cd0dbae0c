package geo

import (
	"testing"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	// schaumburg bbox used to cut the sidewalk dataset
	bb, err := ParseBoundingBox("41.98247,-88.15758,42.08164,-88.02550")
	assert.NoError(t, err)

	t.Run("point inside bbox", func(t *testing.T) {
		assert.True(t, bb.Contains(42.0334, -88.0834))
	})

	t.Run("point outside bbox", func(t *testing.T) {
		assert.False(t, bb.Contains(41.8781, -87.6298))
	})

	t.Run("polyline partially outside", func(t *testing.T) {
		line := []datastructure.Coordinate{
			datastructure.NewCoordinate(42.0334, -88.0834),
			datastructure.NewCoordinate(42.1, -88.0834),
		}
		assert.False(t, bb.PointsContains(line))
		assert.True(t, bb.PointsContains(line[:1]))
	})

	t.Run("malformed bbox", func(t *testing.T) {
		_, err := ParseBoundingBox("1,2,3")
		assert.Error(t, err)
		_, err = ParseBoundingBox("5,0,1,1")
		assert.Error(t, err)
		_, err = ParseBoundingBox("a,b,c,d")
		assert.Error(t, err)
	})
}

func TestGetDestinationPoint(t *testing.T) {
	lat, lon := GetDestinationPoint(42.0334, -88.0834, 90, 1500)
	assert.InDelta(t, 1500, HaversineDistance(42.0334, -88.0834, lat, lon), 1e-3)
}
