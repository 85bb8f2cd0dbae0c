package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleNetwork = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"highway": "footway"},
     "geometry": {"type": "LineString", "coordinates": [[106.8, -6.2], [106.801, -6.2], [106.802, -6.201]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "Point", "coordinates": [106.9, -6.3]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "MultiLineString", "coordinates": [[[106.7, -6.1], [106.71, -6.1]], [[106.72, -6.1], [106.73, -6.1]]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}}
  ]
}`

func TestParseGeoJSON(t *testing.T) {
	t.Run("converts lon lat positions once", func(t *testing.T) {
		features, err := ParseGeoJSON([]byte(sampleNetwork))
		require.NoError(t, err)
		require.Len(t, features, 4)

		assert.Equal(t, datastructure.LineStringFeature, features[0].Kind)
		assert.Equal(t, datastructure.NewCoordinate(-6.2, 106.8), features[0].Coordinates[0])
		assert.Len(t, features[0].Coordinates, 3)

		assert.Equal(t, datastructure.PointFeature, features[1].Kind)
		assert.Equal(t, datastructure.NewCoordinate(-6.3, 106.9), features[1].Coordinates[0])

		assert.Equal(t, datastructure.LineStringFeature, features[2].Kind)
		assert.Equal(t, datastructure.LineStringFeature, features[3].Kind)
		assert.Equal(t, datastructure.NewCoordinate(-6.1, 106.72), features[3].Coordinates[0])
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseGeoJSON([]byte(`{"type": "FeatureCollection", "features": [`))
		require.Error(t, err)
		assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
	})

	t.Run("empty collection", func(t *testing.T) {
		features, err := ParseGeoJSON([]byte(`{"type": "FeatureCollection", "features": []}`))
		require.NoError(t, err)
		assert.Empty(t, features)
	})
}

func TestMarshalGeoJSONRoundTrip(t *testing.T) {
	features, err := ParseGeoJSON([]byte(sampleNetwork))
	require.NoError(t, err)

	data, err := MarshalGeoJSON(features)
	require.NoError(t, err)

	again, err := ParseGeoJSON(data)
	require.NoError(t, err)
	assert.Equal(t, features, again)
}

func TestFilterBoundingBox(t *testing.T) {
	features, err := ParseGeoJSON([]byte(sampleNetwork))
	require.NoError(t, err)

	bb, err := geo.ParseBoundingBox("-6.25,106.75,-6.15,106.85")
	require.NoError(t, err)

	filtered := FilterBoundingBox(features, bb)
	require.Len(t, filtered, 1)
	assert.Equal(t, datastructure.NewCoordinate(-6.2, 106.8), filtered[0].Coordinates[0])
}

func TestIsWalkable(t *testing.T) {
	cases := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{"footway", osm.Tags{{Key: "highway", Value: "footway"}}, true},
		{"motorway", osm.Tags{{Key: "highway", Value: "motorway"}}, false},
		{"primary with sidewalk", osm.Tags{{Key: "highway", Value: "primary"}, {Key: "sidewalk", Value: "both"}}, true},
		{"primary with foot designated", osm.Tags{{Key: "highway", Value: "primary"}, {Key: "foot", Value: "designated"}}, true},
		{"foot no", osm.Tags{{Key: "highway", Value: "footway"}, {Key: "foot", Value: "no"}}, false},
		{"private", osm.Tags{{Key: "highway", Value: "service"}, {Key: "access", Value: "private"}}, false},
		{"area", osm.Tags{{Key: "highway", Value: "pedestrian"}, {Key: "area", Value: "yes"}}, false},
		{"no highway", osm.Tags{{Key: "building", Value: "yes"}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, isWalkable(c.tags))
		})
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sidewalks.geojson":
			w.Header().Set("Content-Type", "application/geo+json")
			_, _ = w.Write([]byte(sampleNetwork))
		case "/slow":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("ok", func(t *testing.T) {
		data, err := Fetch(context.Background(), srv.Client(), srv.URL+"/sidewalks.geojson")
		require.NoError(t, err)
		assert.Equal(t, sampleNetwork, string(data))
	})

	t.Run("status error", func(t *testing.T) {
		_, err := Fetch(context.Background(), srv.Client(), srv.URL+"/missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("context deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := Fetch(ctx, srv.Client(), srv.URL+"/slow")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("remote source", func(t *testing.T) {
		src := NewSource(zap.NewNop(), srv.URL+"/sidewalks.geojson", FormatGeoJSON)
		src.Client = srv.Client()
		ds, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, ds.Features, 4)
		assert.Len(t, ds.Digest, 64)
	})
}

func TestSourceLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sidewalks.geojson")
	require.NoError(t, os.WriteFile(path, []byte(sampleNetwork), 0o600))

	src := NewSource(zap.NewNop(), path, FormatGeoJSON)
	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Features, 4)

	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ds.Digest, again.Digest)

	bb, err := geo.ParseBoundingBox("-6.25,106.75,-6.15,106.85")
	require.NoError(t, err)
	src.BBox = &bb
	filtered, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, filtered.Features, 1)
	assert.NotEqual(t, ds.Digest, filtered.Digest)

	_, err = NewSource(zap.NewNop(), filepath.Join(dir, "missing.geojson"), FormatGeoJSON).Load(context.Background())
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("OSM")
	require.NoError(t, err)
	assert.Equal(t, FormatOSM, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatGeoJSON, f)

	_, err = ParseFormat("shapefile")
	assert.Equal(t, pkg.ErrBadParamInput, pkg.ErrorCode(err))
}
