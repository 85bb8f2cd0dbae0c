package kvdb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_GRAPH_BUCKET = "graphs"
	BBOLTDB_META_BUCKET  = "meta"

	latestDigestKey = "latest"
)

// KVDB persists built graph snapshots keyed by dataset digest.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{BBOLTDB_GRAPH_BUCKET, BBOLTDB_META_BUCKET} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &KVDB{db: db, encoder: encoder, decoder: decoder}, nil
}

// SaveGraph stores g under key and marks key as the latest snapshot.
func (db *KVDB) SaveGraph(key string, g *graph.Graph) error {
	payload, err := db.serializeGraph(g)
	if err != nil {
		return err
	}

	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(BBOLTDB_GRAPH_BUCKET)).Put([]byte(key), payload); err != nil {
			return err
		}
		return tx.Bucket([]byte(BBOLTDB_META_BUCKET)).Put([]byte(latestDigestKey), []byte(key))
	})
}

func (db *KVDB) LoadGraph(key string) (*graph.Graph, error) {
	var payload []byte
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_GRAPH_BUCKET)).Get([]byte(key))
		if b == nil {
			return ErrorsKeyNotExists
		}
		// bbolt memory is only valid inside the transaction
		payload = append([]byte(nil), b...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return db.deserializeGraph(payload)
}

// LatestKey returns the key of the most recently saved snapshot.
func (db *KVDB) LatestKey() (string, error) {
	var key string
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_META_BUCKET)).Get([]byte(latestDigestKey))
		if b == nil {
			return ErrorsKeyNotExists
		}
		key = string(b)
		return nil
	})
	return key, err
}

func (db *KVDB) DeleteGraph(key string) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BBOLTDB_GRAPH_BUCKET)).Delete([]byte(key))
	})
}

func (db *KVDB) Keys() ([]string, error) {
	keys := []string{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BBOLTDB_GRAPH_BUCKET)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

func (db *KVDB) Close() error {
	db.decoder.Close()
	return db.encoder.Close()
}

func (db *KVDB) serializeGraph(g *graph.Graph) ([]byte, error) {
	raw, err := msgpack.Marshal(g.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encode graph snapshot: %w", err)
	}
	return db.encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

func (db *KVDB) deserializeGraph(payload []byte) (*graph.Graph, error) {
	raw, err := db.decoder.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress graph snapshot: %w", err)
	}
	var snap graph.Snapshot
	if err := msgpack.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode graph snapshot: %w", err)
	}
	return graph.FromSnapshot(snap)
}
