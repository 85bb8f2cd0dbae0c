package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/concurrent"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
	"github.com/lintang-b-s/sidewalk-nav/pkg/kvdb"
	"github.com/lintang-b-s/sidewalk-nav/pkg/routing"
	"go.uber.org/zap"
)

const (
	// meters around the network rectangle still considered inside the network area
	coverageMargin = 1000.0
)

var (
	ErrNetworkNotLoaded = errors.New("sidewalk network not loaded")
)

type Config struct {
	Precision     int
	SnapTolerance float64
	Speeds        routing.Speeds
	BatchWorkers  int
}

func DefaultConfig() Config {
	return Config{
		Precision:     graph.DefaultPrecision,
		SnapTolerance: routing.DefaultSnapTolerance,
		Speeds:        routing.DefaultSpeeds(),
	}
}

type loadedGraph struct {
	g            *graph.Graph
	key          string
	loadedAt     time.Time
	fromSnapshot bool
}

// RouteService answers route and eta queries against the currently loaded graph. Reload swaps the graph
// atomically, queries in flight keep the graph they started with.
type RouteService struct {
	log      *zap.Logger
	source   NetworkSource
	store    GraphStore
	cfg      Config
	current  atomic.Pointer[loadedGraph]
	reloadMu sync.Mutex
}

func New(log *zap.Logger, source NetworkSource, store GraphStore, cfg Config) *RouteService {
	if cfg.Speeds == nil {
		cfg.Speeds = routing.DefaultSpeeds()
	}
	return &RouteService{
		log:    log,
		source: source,
		store:  store,
		cfg:    cfg,
	}
}

type RouteResult struct {
	Route routing.Route
	Mode  routing.TravelMode
	ETA   routing.ETA
	// OutsideNetwork is set when no graph is loaded or an endpoint lies more than coverageMargin
	// meters from the network rectangle.
	OutsideNetwork bool
}

type RouteQuery struct {
	Start datastructure.Coordinate
	End   datastructure.Coordinate
}

type BatchResult struct {
	Result RouteResult
	Err    error
}

type NetworkStats struct {
	Key          string
	LoadedAt     time.Time
	FromSnapshot bool
	Precision    int
	Nodes        int
	Edges        int
	Bounds       [4]float64 // minLat, minLon, maxLat, maxLon
	Build        graph.BuildStats
}

func (s *RouteService) snapshotKey(digest string) string {
	return fmt.Sprintf("%s-p%d", digest, s.cfg.Precision)
}

// Reload reads the network source and swaps in the graph for it. a stored snapshot for the same dataset is reused
// instead of rebuilding. when the source cannot be read and nothing is loaded yet, the latest stored snapshot is used.
func (s *RouteService) Reload(ctx context.Context) (NetworkStats, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	digest, data, err := s.source.Peek(ctx)
	if err != nil {
		if s.current.Load() == nil {
			if lg, ok := s.latestSnapshot(); ok {
				s.log.Warn("network source unavailable, serving latest stored snapshot",
					zap.Error(err), zap.String("key", lg.key))
				s.current.Store(lg)
				return s.Stats()
			}
		}
		return NetworkStats{}, fmt.Errorf("read network source: %w", err)
	}

	key := s.snapshotKey(digest)
	if cur := s.current.Load(); cur != nil && cur.key == key {
		s.log.Info("network unchanged", zap.String("key", key))
		return s.Stats()
	}

	if lg, ok := s.storedSnapshot(key); ok {
		s.current.Store(lg)
		s.log.Info("graph loaded from snapshot", zap.String("key", key),
			zap.Int("nodes", lg.g.NodeCount()), zap.Int("edges", lg.g.EdgeCount()))
		return s.Stats()
	}

	dataset, err := s.source.Parse(ctx, digest, data)
	if err != nil {
		return NetworkStats{}, err
	}

	start := time.Now()
	g, err := graph.BuildGraph(dataset.Features, graph.WithPrecision(s.cfg.Precision))
	if err != nil {
		return NetworkStats{}, err
	}
	s.log.Info("graph built", zap.String("key", key), zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()), zap.Int("skipped_features", g.Stats().SkippedFeatures),
		zap.Duration("took", time.Since(start)))

	if s.store != nil {
		if err := s.store.SaveGraph(key, g); err != nil {
			s.log.Warn("failed to store graph snapshot", zap.String("key", key), zap.Error(err))
		}
	}

	s.current.Store(&loadedGraph{g: g, key: key, loadedAt: time.Now()})
	return s.Stats()
}

func (s *RouteService) storedSnapshot(key string) (*loadedGraph, bool) {
	if s.store == nil {
		return nil, false
	}
	g, err := s.store.LoadGraph(key)
	if err != nil {
		if !errors.Is(err, kvdb.ErrorsKeyNotExists) {
			s.log.Warn("failed to load graph snapshot", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if g.Precision() != s.cfg.Precision {
		return nil, false
	}
	return &loadedGraph{g: g, key: key, loadedAt: time.Now(), fromSnapshot: true}, true
}

func (s *RouteService) latestSnapshot() (*loadedGraph, bool) {
	if s.store == nil {
		return nil, false
	}
	key, err := s.store.LatestKey()
	if err != nil {
		return nil, false
	}
	return s.storedSnapshot(key)
}

// SetGraph replaces the loaded graph directly, bypassing the network source.
func (s *RouteService) SetGraph(key string, g *graph.Graph) {
	s.current.Store(&loadedGraph{g: g, key: key, loadedAt: time.Now()})
}

func (s *RouteService) currentGraph() *graph.Graph {
	if lg := s.current.Load(); lg != nil {
		return lg.g
	}
	return nil
}

// Route computes the sidewalk route between start and end and its eta for mode.
// with no graph loaded the route is the straight line between the two points.
func (s *RouteService) Route(ctx context.Context, start, end datastructure.Coordinate, mode routing.TravelMode) (RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return RouteResult{}, err
	}
	if _, ok := s.cfg.Speeds[mode]; !ok {
		return RouteResult{}, pkg.WrapErrorf(routing.ErrUnknownTravelMode, pkg.ErrBadParamInput, "travel mode %q", mode)
	}

	g := s.currentGraph()
	route, err := routing.ComputeRoute(start, end, g, routing.WithSnapTolerance(s.cfg.SnapTolerance))
	if err != nil {
		return RouteResult{}, err
	}
	outside := g == nil
	if g != nil {
		startCovered, endCovered := g.Covers(start, coverageMargin), g.Covers(end, coverageMargin)
		if !startCovered || !endCovered {
			outside = true
			s.log.Debug("route point outside the sidewalk network area",
				zap.Bool("start_covered", startCovered), zap.Bool("end_covered", endCovered))
		}
	}
	if route.IsFallback() {
		s.log.Debug("straight line route", zap.String("reason", route.Fallback.String()),
			zap.Float64("start_lat", start.Lat), zap.Float64("start_lon", start.Lon),
			zap.Float64("end_lat", end.Lat), zap.Float64("end_lon", end.Lon))
	}

	eta, err := routing.EstimateETA(route.Distance, mode, s.cfg.Speeds)
	if err != nil {
		return RouteResult{}, err
	}
	return RouteResult{Route: route, Mode: mode, ETA: eta, OutsideNetwork: outside}, nil
}

// BatchRoute runs Route for every query on a bounded worker pool. results keep query order.
func (s *RouteService) BatchRoute(ctx context.Context, queries []RouteQuery, mode routing.TravelMode) []BatchResult {
	return concurrent.Map(ctx, s.cfg.BatchWorkers, queries, func(ctx context.Context, q RouteQuery) BatchResult {
		res, err := s.Route(ctx, q.Start, q.End, mode)
		return BatchResult{Result: res, Err: err}
	})
}

func (s *RouteService) ETA(distance float64, mode routing.TravelMode) (routing.ETA, error) {
	return routing.EstimateETA(distance, mode, s.cfg.Speeds)
}

func (s *RouteService) Speeds() routing.Speeds {
	return s.cfg.Speeds
}

func (s *RouteService) Stats() (NetworkStats, error) {
	lg := s.current.Load()
	if lg == nil {
		return NetworkStats{}, pkg.WrapErrorf(ErrNetworkNotLoaded, pkg.ErrNotFound, "no graph")
	}
	rect := lg.g.Bounds()
	return NetworkStats{
		Key:          lg.key,
		LoadedAt:     lg.loadedAt,
		FromSnapshot: lg.fromSnapshot,
		Precision:    lg.g.Precision(),
		Nodes:        lg.g.NodeCount(),
		Edges:        lg.g.EdgeCount(),
		Bounds:       [4]float64{rect.Lo().Lat.Degrees(), rect.Lo().Lng.Degrees(), rect.Hi().Lat.Degrees(), rect.Hi().Lng.Degrees()},
		Build:        lg.g.Stats(),
	}, nil
}
