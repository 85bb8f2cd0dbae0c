package network

import (
	"errors"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	ErrNotFeatureCollection = errors.New("geojson is not a FeatureCollection")
)

// ParseGeoJSON converts a geojson FeatureCollection into network features. geojson positions are [lon, lat];
// this is the only place they are turned into datastructure.Coordinate. Multi geometries are flattened,
// polygons and null geometries are ignored.
func ParseGeoJSON(data []byte) ([]datastructure.NetworkFeature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "parse geojson")
	}
	if fc.Type != "" && fc.Type != "FeatureCollection" {
		return nil, pkg.WrapErrorf(ErrNotFeatureCollection, pkg.ErrBadParamInput, "geojson type %q", fc.Type)
	}

	features := make([]datastructure.NetworkFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		features = appendGeometry(features, f.Geometry)
	}
	return features, nil
}

func appendGeometry(features []datastructure.NetworkFeature, g orb.Geometry) []datastructure.NetworkFeature {
	switch geom := g.(type) {
	case orb.Point:
		features = append(features, datastructure.NewPointFeature(datastructure.FromLonLat(geom)))
	case orb.MultiPoint:
		for _, p := range geom {
			features = append(features, datastructure.NewPointFeature(datastructure.FromLonLat(p)))
		}
	case orb.LineString:
		features = append(features, datastructure.NewLineStringFeature(lineCoordinates(geom)))
	case orb.MultiLineString:
		for _, ls := range geom {
			features = append(features, datastructure.NewLineStringFeature(lineCoordinates(ls)))
		}
	case orb.Collection:
		for _, inner := range geom {
			features = appendGeometry(features, inner)
		}
	}
	return features
}

func lineCoordinates(ls orb.LineString) []datastructure.Coordinate {
	coords := make([]datastructure.Coordinate, len(ls))
	for i, p := range ls {
		coords[i] = datastructure.FromLonLat(p)
	}
	return coords
}

// MarshalGeoJSON writes network features back out as a FeatureCollection.
func MarshalGeoJSON(features []datastructure.NetworkFeature) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		switch f.Kind {
		case datastructure.PointFeature:
			fc.Append(geojson.NewFeature(orb.Point(f.Coordinates[0].LonLat())))
		case datastructure.LineStringFeature:
			ls := make(orb.LineString, len(f.Coordinates))
			for i, c := range f.Coordinates {
				ls[i] = orb.Point(c.LonLat())
			}
			fc.Append(geojson.NewFeature(ls))
		}
	}
	return fc.MarshalJSON()
}

// RouteFeature renders route points as a geojson LineString feature.
func RouteFeature(points []datastructure.Coordinate, properties map[string]interface{}) *geojson.Feature {
	ls := make(orb.LineString, len(points))
	for i, c := range points {
		ls[i] = orb.Point(c.LonLat())
	}
	f := geojson.NewFeature(ls)
	for k, v := range properties {
		f.Properties[k] = v
	}
	return f
}
