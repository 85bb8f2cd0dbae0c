package http_router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lintang-b-s/sidewalk-nav/docs"
	"github.com/lintang-b-s/sidewalk-nav/pkg/http/http-router/controllers"
	router_helper "github.com/lintang-b-s/sidewalk-nav/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/sidewalk-nav/pkg/http/server"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler wires the routes and the middleware chain.
func (api *API) Handler(routeService controllers.RouteService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	routeRoutes := controllers.New(routeService, api.log)
	routeRoutes.Routes(group)

	router.Handler(http.MethodGet, "/doc/*any", httpSwagger.WrapHandler)

	return alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Labels, Logger(api.log)).Then(router)
}

// Run serves the API until ctx is cancelled, then shuts the server down gracefully.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	routeService controllers.RouteService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(routeService), config)

	errC := make(chan error, 1)
	go func() {
		api.log.Info(fmt.Sprintf("API run on port %d", config.Port))
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	api.log.Info("shutting down API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown API: %w", err)
	}
	return nil
}
