//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/sidewalk-nav/pkg/di/config"
	shortcontext "github.com/lintang-b-s/sidewalk-nav/pkg/di/context"
	kv_di "github.com/lintang-b-s/sidewalk-nav/pkg/di/kv"
	logger_di "github.com/lintang-b-s/sidewalk-nav/pkg/di/logger"
	network_di "github.com/lintang-b-s/sidewalk-nav/pkg/di/network"
	routeHttp "github.com/lintang-b-s/sidewalk-nav/pkg/http"
	"github.com/lintang-b-s/sidewalk-nav/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/sidewalk-nav/pkg/http/usecases"
	"github.com/lintang-b-s/sidewalk-nav/pkg/kvdb"
	"github.com/lintang-b-s/sidewalk-nav/pkg/network"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	network_di.NewSource,
	network_di.NewRouteConfig,
)

var routeSet = wire.NewSet(
	defaultSet,
	NewRouteService,
	NewRouteAPIServer,
)

// NewRouteService loads the network before the server starts accepting requests.
func NewRouteService(ctx context.Context, log *zap.Logger, source *network.Source, store *kvdb.KVDB,
	cfg usecases.Config) (controllers.RouteService, error) {
	svc := usecases.New(log, source, store, cfg)
	if _, err := svc.Reload(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func NewRouteAPIServer(ctx context.Context, log *zap.Logger,
	routeService controllers.RouteService) (*routeHttp.Server, error) {
	api := routeHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, routeService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeRouteService() (*routeHttp.Server, func(), error) {
	panic(wire.Build(routeSet))
}
