package network_di

import (
	"net/http"
	"strings"

	"github.com/lintang-b-s/sidewalk-nav/pkg/di/config"
	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
	"github.com/lintang-b-s/sidewalk-nav/pkg/http/usecases"
	"github.com/lintang-b-s/sidewalk-nav/pkg/network"
	"github.com/lintang-b-s/sidewalk-nav/pkg/routing"

	"go.uber.org/zap"
)

func NewSource(log *zap.Logger, cfg *config.Config) (*network.Source, error) {
	format, err := network.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	src := network.NewSource(log, cfg.Source, format)
	src.FetchTimeout = cfg.FetchTimeout
	src.Client = &http.Client{}
	if strings.TrimSpace(cfg.BBox) != "" {
		bb, err := geo.ParseBoundingBox(cfg.BBox)
		if err != nil {
			return nil, err
		}
		src.BBox = &bb
	}
	return src, nil
}

func NewRouteConfig(cfg *config.Config) usecases.Config {
	return usecases.Config{
		Precision:     cfg.Precision,
		SnapTolerance: cfg.SnapTolerance,
		Speeds: routing.Speeds{
			routing.Walking: cfg.WalkingSpeed,
			routing.Biking:  cfg.BikingSpeed,
		},
	}
}
