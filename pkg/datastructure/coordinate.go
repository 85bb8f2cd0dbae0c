package datastructure

import (
	"errors"
	"math"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Coordinate is the only point representation used past the ingestion boundary.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// FromLonLat converts a geojson style [lon, lat] tuple.
func FromLonLat(lonLat [2]float64) Coordinate {
	return Coordinate{
		Lat: lonLat[1],
		Lon: lonLat[0],
	}
}

func (c Coordinate) LonLat() [2]float64 {
	return [2]float64{c.Lon, c.Lat}
}

func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return pkg.WrapErrorf(ErrInvalidCoordinate, pkg.ErrBadParamInput, "coordinate (%v, %v) is not a number", c.Lat, c.Lon)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return pkg.WrapErrorf(ErrInvalidCoordinate, pkg.ErrBadParamInput, "latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return pkg.WrapErrorf(ErrInvalidCoordinate, pkg.ErrBadParamInput, "longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}
