package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
)

type BoundingBox struct {
	min, max []float64 // lat, lon
}

func (bb *BoundingBox) GetMin() []float64 {
	return bb.min
}

func (bb *BoundingBox) GetMax() []float64 {
	return bb.max
}

func NewBoundingBox(lats, lons []float64) BoundingBox {
	min, max := []float64{lats[0], lons[0]}, []float64{lats[0], lons[0]}
	for i := 1; i < len(lats); i++ {
		if lats[i] < min[0] {
			min[0] = lats[i]
		}
		if lats[i] > max[0] {
			max[0] = lats[i]
		}
		if lons[i] < min[1] {
			min[1] = lons[i]
		}
		if lons[i] > max[1] {
			max[1] = lons[i]
		}
	}
	return BoundingBox{
		min: min,
		max: max,
	}
}

// ParseBoundingBox parses "minLat,minLon,maxLat,maxLon".
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "bounding box %q must be minLat,minLon,maxLat,maxLon", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BoundingBox{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "bounding box %q", s)
		}
		vals[i] = v
	}
	if vals[0] > vals[2] || vals[1] > vals[3] {
		return BoundingBox{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "bounding box %q has min greater than max", s)
	}
	return NewBoundingBox([]float64{vals[0], vals[2]}, []float64{vals[1], vals[3]}), nil
}

func (bb *BoundingBox) String() string {
	return fmt.Sprintf("%f,%f,%f,%f", bb.min[0], bb.min[1], bb.max[0], bb.max[1])
}

func (bb *BoundingBox) Contains(lat, lon float64) bool {
	if lat < bb.min[0] || lat > bb.max[0] {
		return false
	}
	if lon < bb.min[1] || lon > bb.max[1] {
		return false
	}
	return true
}

func (bb *BoundingBox) PointsContains(coords []datastructure.Coordinate) bool {
	for _, c := range coords {
		if !bb.Contains(c.Lat, c.Lon) {
			return false
		}
	}
	return true
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

// GetDestinationPoint returns the point reached travelling dist meters from (lat1, lon1) along the great circle with the given initial bearing (degrees).
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusM

	bearing = degToRad(bearing)

	lat1 = degToRad(lat1)
	lon1 = degToRad(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)
	lon2 = math.Mod((lon2+3*math.Pi), (2*math.Pi)) - math.Pi

	return radToDeg(lat2), radToDeg(lon2)
}
