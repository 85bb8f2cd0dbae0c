package controllers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
)

// pointInput accepts {"lat":..,"lon":..}, {"latitude":..,"longitude":..} or a [lon, lat] pair.
// it is converted to a datastructure.Coordinate once, here.
type pointInput struct {
	datastructure.Coordinate
}

func (p *pointInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var lonLat []float64
		if err := json.Unmarshal(data, &lonLat); err != nil {
			return err
		}
		if len(lonLat) != 2 {
			return errors.New("point array must be [lon, lat]")
		}
		p.Coordinate = datastructure.FromLonLat([2]float64{lonLat[0], lonLat[1]})
		return nil
	}

	var obj struct {
		Lat       *float64 `json:"lat"`
		Lon       *float64 `json:"lon"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	lat, lon := obj.Lat, obj.Lon
	if lat == nil {
		lat = obj.Latitude
	}
	if lon == nil {
		lon = obj.Longitude
	}
	if lat == nil || lon == nil {
		return errors.New("point needs lat and lon")
	}
	p.Coordinate = datastructure.NewCoordinate(*lat, *lon)
	return nil
}
