package controllers

import (
	"context"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/http/usecases"
	"github.com/lintang-b-s/sidewalk-nav/pkg/routing"
)

type RouteService interface {
	Route(ctx context.Context, start, end datastructure.Coordinate, mode routing.TravelMode) (usecases.RouteResult, error)
	BatchRoute(ctx context.Context, queries []usecases.RouteQuery, mode routing.TravelMode) []usecases.BatchResult
	ETA(distance float64, mode routing.TravelMode) (routing.ETA, error)
	Stats() (usecases.NetworkStats, error)
	Reload(ctx context.Context) (usecases.NetworkStats, error)
}
