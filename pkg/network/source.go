package network

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
	"go.uber.org/zap"
)

type Format string

const (
	FormatGeoJSON Format = "geojson"
	FormatOSM     Format = "osm"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "geojson", "json":
		return FormatGeoJSON, nil
	case "osm", "pbf", "osm.pbf":
		return FormatOSM, nil
	}
	return "", pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown network format %q", s)
}

// Source describes where the sidewalk network comes from.
type Source struct {
	Location     string
	Format       Format
	BBox         *geo.BoundingBox
	Client       *http.Client
	FetchTimeout time.Duration
	log          *zap.Logger
}

func NewSource(log *zap.Logger, location string, format Format) *Source {
	return &Source{
		Location:     location,
		Format:       format,
		FetchTimeout: 30 * time.Second,
		log:          log,
	}
}

// Dataset is a loaded network. Digest identifies the raw bytes plus the bbox filter.
type Dataset struct {
	Features []datastructure.NetworkFeature
	Digest   string
}

func (s *Source) IsRemote() bool {
	return strings.HasPrefix(s.Location, "http://") || strings.HasPrefix(s.Location, "https://")
}

func (s *Source) read(ctx context.Context) ([]byte, error) {
	if !s.IsRemote() {
		return LoadFile(s.Location)
	}
	if s.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.FetchTimeout)
		defer cancel()
	}
	start := time.Now()
	data, err := Fetch(ctx, s.Client, s.Location)
	if err != nil {
		return nil, err
	}
	s.log.Info("network dataset fetched", zap.String("url", s.Location),
		zap.Int("bytes", len(data)), zap.Duration("took", time.Since(start)))
	return data, nil
}

func (s *Source) digest(data []byte) string {
	h := sha256.New()
	h.Write([]byte(s.Format))
	h.Write([]byte{0})
	h.Write(data)
	if s.BBox != nil {
		h.Write([]byte{0})
		h.Write([]byte(s.BBox.String()))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Peek reads the raw dataset and returns its digest without parsing it.
func (s *Source) Peek(ctx context.Context) (string, []byte, error) {
	data, err := s.read(ctx)
	if err != nil {
		return "", nil, err
	}
	return s.digest(data), data, nil
}

// Load reads and parses the dataset, applying the bbox filter when one is set.
func (s *Source) Load(ctx context.Context) (Dataset, error) {
	digest, data, err := s.Peek(ctx)
	if err != nil {
		return Dataset{}, err
	}
	return s.Parse(ctx, digest, data)
}

// Parse turns bytes returned by Peek into features.
func (s *Source) Parse(ctx context.Context, digest string, data []byte) (Dataset, error) {
	var (
		features []datastructure.NetworkFeature
		err      error
	)
	switch s.Format {
	case FormatOSM:
		features, err = s.parseOSM(ctx, data)
	default:
		features, err = ParseGeoJSON(data)
	}
	if err != nil {
		return Dataset{}, err
	}

	total := len(features)
	if s.BBox != nil {
		features = FilterBoundingBox(features, *s.BBox)
	}
	s.log.Info("network dataset parsed", zap.String("source", s.Location),
		zap.String("format", string(s.Format)), zap.Int("features", total),
		zap.Int("kept", len(features)))

	return Dataset{Features: features, Digest: digest}, nil
}

func (s *Source) parseOSM(ctx context.Context, data []byte) ([]datastructure.NetworkFeature, error) {
	if !s.IsRemote() {
		return LoadOSM(ctx, s.Location)
	}
	tmp, err := os.CreateTemp("", "sidewalk-*.osm.pbf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write osm temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	return LoadOSM(ctx, tmp.Name())
}
