package geo

import (
	"math"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
	earthRadiusM  = earthRadiusKM * 1000.0
	kRad          = math.Pi / 180.0
)

// AngularDistance converts a surface distance in meters to the central angle in radians.
func AngularDistance(meters float64) float64 {
	return meters / earthRadiusM
}

// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	return math.Pow(math.Sin(angleRad/2.0), 2)
}

// HaversineDistance returns the great-circle distance in meters between two points given in degrees.
func HaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne, longOne = latOne*kRad, longOne*kRad
	latTwo, longTwo = latTwo*kRad, longTwo*kRad

	h := havFunction(latTwo-latOne) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longTwo-longOne)
	// rounding can push h a hair above 1 for antipodal points
	h = math.Min(1, h)
	centralAngleRad := 2.0 * math.Asin(math.Sqrt(h))
	return earthRadiusM * centralAngleRad
}

func CoordinateDistance(a, b datastructure.Coordinate) float64 {
	return HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// PathLength sums the distance between consecutive points, in meters.
func PathLength(points []datastructure.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += CoordinateDistance(points[i-1], points[i])
	}
	return total
}
