package datastructure

type FeatureKind uint8

const (
	PointFeature FeatureKind = iota
	LineStringFeature
)

func (k FeatureKind) String() string {
	switch k {
	case PointFeature:
		return "Point"
	case LineStringFeature:
		return "LineString"
	}
	return "Unknown"
}

// NetworkFeature is one entry of a sidewalk network dataset, already in canonical coordinates.
// a Point feature has exactly one coordinate, a LineString feature an ordered polyline.
type NetworkFeature struct {
	Kind        FeatureKind
	Coordinates []Coordinate
}

func NewPointFeature(c Coordinate) NetworkFeature {
	return NetworkFeature{
		Kind:        PointFeature,
		Coordinates: []Coordinate{c},
	}
}

func NewLineStringFeature(coords []Coordinate) NetworkFeature {
	return NetworkFeature{
		Kind:        LineStringFeature,
		Coordinates: coords,
	}
}
