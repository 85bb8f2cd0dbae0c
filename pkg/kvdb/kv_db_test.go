package kvdb

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) *KVDB {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "graph.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv, err := NewKVDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	features := []datastructure.NetworkFeature{
		datastructure.NewLineStringFeature([]datastructure.Coordinate{
			datastructure.NewCoordinate(-7.7956, 110.3695),
			datastructure.NewCoordinate(-7.7960, 110.3700),
			datastructure.NewCoordinate(-7.7965, 110.3702),
		}),
		datastructure.NewLineStringFeature([]datastructure.Coordinate{
			datastructure.NewCoordinate(-7.7960, 110.3700),
			datastructure.NewCoordinate(-7.7955, 110.3710),
		}),
		datastructure.NewPointFeature(datastructure.NewCoordinate(-7.8, 110.4)),
	}
	g, err := graph.BuildGraph(features)
	require.NoError(t, err)
	return g
}

func TestSaveLoadGraph(t *testing.T) {
	kv := openTestDB(t)
	g := testGraph(t)

	require.NoError(t, kv.SaveGraph("abc", g))

	loaded, err := kv.LoadGraph("abc")
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), loaded.NodeCount())
	assert.Equal(t, g.EdgeCount(), loaded.EdgeCount())
	assert.Equal(t, g.Nodes(), loaded.Nodes())
	assert.Equal(t, g.Stats(), loaded.Stats())

	latest, err := kv.LatestKey()
	require.NoError(t, err)
	assert.Equal(t, "abc", latest)

	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, keys)
}

func TestLoadGraphMissing(t *testing.T) {
	kv := openTestDB(t)

	_, err := kv.LoadGraph("nope")
	assert.True(t, errors.Is(err, ErrorsKeyNotExists))

	_, err = kv.LatestKey()
	assert.True(t, errors.Is(err, ErrorsKeyNotExists))
}

func TestDeleteGraph(t *testing.T) {
	kv := openTestDB(t)
	require.NoError(t, kv.SaveGraph("abc", testGraph(t)))
	require.NoError(t, kv.DeleteGraph("abc"))

	_, err := kv.LoadGraph("abc")
	assert.True(t, errors.Is(err, ErrorsKeyNotExists))
}
