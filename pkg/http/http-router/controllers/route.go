package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	helper "github.com/lintang-b-s/sidewalk-nav/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/sidewalk-nav/pkg/http/usecases"
	"github.com/lintang-b-s/sidewalk-nav/pkg/network"
	"github.com/lintang-b-s/sidewalk-nav/pkg/routing"
	"github.com/paulmach/orb/geojson"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

type routeAPI struct {
	routeService RouteService
	log          *zap.Logger
	validate     *validator.Validate
	trans        ut.Translator
}

func New(routeService RouteService, log *zap.Logger) *routeAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, found := uni.GetTranslator("en")
	if !found {
		log.Error("english validator translator not found")
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Error("register validator translations", zap.Error(err))
	}

	return &routeAPI{
		routeService: routeService,
		log:          log,
		validate:     validate,
		trans:        trans,
	}
}

func (api *routeAPI) Routes(group *helper.RouteGroup) {
	group.POST("/route", api.route)
	group.POST("/routes", api.batchRoute)
	group.POST("/eta", api.eta)
	group.GET("/network", api.networkStats)
	group.POST("/network/reload", api.reloadNetwork)
}

// routeRequest model info
//
//	@Description	request body for a sidewalk route. points are {lat, lon}, {latitude, longitude} or [lon, lat].
type routeRequest struct {
	Start *pointInput `json:"start" validate:"required" swaggertype:"object"`                             // route origin.
	End   *pointInput `json:"end" validate:"required" swaggertype:"object"`                               // route destination.
	Mode  string      `json:"mode" validate:"omitempty,oneof=walk walking foot bike biking bicycle cycling"` // walking (default) or biking.
}

type pointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// routeResponse model info
//
//	@Description	response body for a sidewalk route.
type routeResponse struct {
	Points          []pointResponse  `json:"points"`                        // route polyline, at least two points.
	Distance        float64          `json:"distance"`                      // accumulated route length in meters.
	DurationSeconds float64          `json:"duration_seconds"`              // travel time at the configured speed of mode.
	Arrival         time.Time        `json:"arrival"`                       // now plus duration.
	Mode            string           `json:"mode"`                          // walking or biking.
	Fallback        string           `json:"fallback"`                      // none, empty_network, same_node or unreachable.
	OutsideNetwork  bool             `json:"outside_network"`               // an endpoint lies beyond the sidewalk network area.
	Geometry        *geojson.Feature `json:"geometry" swaggertype:"object"` // the route as a geojson LineString feature.
}

func newRouteResponse(res usecases.RouteResult) routeResponse {
	points := make([]pointResponse, len(res.Route.Points))
	for i, p := range res.Route.Points {
		points[i] = pointResponse{Lat: p.Lat, Lon: p.Lon}
	}
	return routeResponse{
		Points:          points,
		Distance:        res.Route.Distance,
		DurationSeconds: res.ETA.Duration.Seconds(),
		Arrival:         res.ETA.Arrival,
		Mode:            string(res.Mode),
		Fallback:        res.Route.Fallback.String(),
		OutsideNetwork:  res.OutsideNetwork,
		Geometry: network.RouteFeature(res.Route.Points, map[string]interface{}{
			"distance": res.Route.Distance,
			"mode":     string(res.Mode),
		}),
	}
}

func (api *routeAPI) validateRequest(request interface{}) error {
	if err := api.validate.Struct(request); err != nil {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "validation error: %s", joinErrors(translateError(err, api.trans)))
	}
	return nil
}

func parseMode(s string) (routing.TravelMode, error) {
	if s == "" {
		return routing.Walking, nil
	}
	return routing.ParseTravelMode(s)
}

// route godoc
// @Summary		compute the shortest sidewalk route between two points with its eta.
// @Description	compute the shortest sidewalk route between two points with its eta. when the points cannot be connected over the network the route is the straight line between them.
// @Tags			routing
// @ID route
// @Param			body	body	routeRequest	true	"route request"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/route [post]
// @Success		200	{object}	routeResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routeAPI) route(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request routeRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	mode, err := parseMode(request.Mode)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	result, err := api.routeService.Route(r.Context(), request.Start.Coordinate, request.End.Coordinate, mode)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newRouteResponse(result)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type routeQueryRequest struct {
	Start *pointInput `json:"start" validate:"required" swaggertype:"object"`
	End   *pointInput `json:"end" validate:"required" swaggertype:"object"`
}

// batchRouteRequest model info
//
//	@Description	request body for routing many point pairs with one travel mode.
type batchRouteRequest struct {
	Queries []routeQueryRequest `json:"queries" validate:"required,min=1,max=100,dive"`
	Mode    string              `json:"mode" validate:"omitempty,oneof=walk walking foot bike biking bicycle cycling"`
}

type batchRouteItem struct {
	Route *routeResponse `json:"route,omitempty"`
	Error string         `json:"error,omitempty"`
}

// batchRouteResponse model info
//
//	@Description	one item per query, in query order.
type batchRouteResponse struct {
	Data []batchRouteItem `json:"data"`
}

// batchRoute godoc
// @Summary		compute sidewalk routes for up to 100 point pairs.
// @Description	compute sidewalk routes for up to 100 point pairs. a query with invalid points gets an error item, the others are still routed.
// @Tags			routing
// @ID batch-route
// @Param			body	body	batchRouteRequest	true	"batch route request"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/routes [post]
// @Success		200	{object}	batchRouteResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routeAPI) batchRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request batchRouteRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	mode, err := parseMode(request.Mode)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	queries := make([]usecases.RouteQuery, len(request.Queries))
	for i, q := range request.Queries {
		queries[i] = usecases.RouteQuery{Start: q.Start.Coordinate, End: q.End.Coordinate}
	}

	results := api.routeService.BatchRoute(r.Context(), queries, mode)
	items := make([]batchRouteItem, len(results))
	for i, res := range results {
		if res.Err != nil {
			if getStatusCode(res.Err) == http.StatusInternalServerError {
				api.logError(r, res.Err)
				items[i].Error = pkg.MessageInternalServerError
			} else {
				items[i].Error = res.Err.Error()
			}
			continue
		}
		resp := newRouteResponse(res.Result)
		items[i].Route = &resp
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": items}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// etaRequest model info
//
//	@Description	request body for an eta over a known distance.
type etaRequest struct {
	Distance *float64 `json:"distance" validate:"required,min=0"` // meters.
	Mode     string   `json:"mode" validate:"omitempty,oneof=walk walking foot bike biking bicycle cycling"`
}

// etaResponse model info
//
//	@Description	travel time and arrival for a distance.
type etaResponse struct {
	DurationSeconds float64   `json:"duration_seconds"`
	Arrival         time.Time `json:"arrival"`
	Mode            string    `json:"mode"`
}

// eta godoc
// @Summary		estimate travel time for a distance.
// @Description	estimate travel time for a distance in meters at the configured speed of the travel mode.
// @Tags			routing
// @ID eta
// @Param			body	body	etaRequest	true	"eta request"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/eta [post]
// @Success		200	{object}	etaResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *routeAPI) eta(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request etaRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	mode, err := parseMode(request.Mode)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	eta, err := api.routeService.ETA(*request.Distance, mode)
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}

	resp := etaResponse{DurationSeconds: eta.Duration.Seconds(), Arrival: eta.Arrival, Mode: string(mode)}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// networkStatsResponse model info
//
//	@Description	the currently loaded sidewalk graph.
type networkStatsResponse struct {
	Key          string     `json:"key"`
	LoadedAt     time.Time  `json:"loaded_at"`
	FromSnapshot bool       `json:"from_snapshot"`
	Precision    int        `json:"precision"`
	Nodes        int        `json:"nodes"`
	Edges        int        `json:"edges"`
	Bounds       [4]float64 `json:"bounds"` // minLat, minLon, maxLat, maxLon
	Features     int        `json:"features"`
	Skipped      int        `json:"skipped_features"`
}

func newNetworkStatsResponse(s usecases.NetworkStats) networkStatsResponse {
	return networkStatsResponse{
		Key:          s.Key,
		LoadedAt:     s.LoadedAt,
		FromSnapshot: s.FromSnapshot,
		Precision:    s.Precision,
		Nodes:        s.Nodes,
		Edges:        s.Edges,
		Bounds:       s.Bounds,
		Features:     s.Build.Features,
		Skipped:      s.Build.SkippedFeatures,
	}
}

// networkStats godoc
// @Summary		describe the loaded sidewalk graph.
// @Tags			network
// @ID network-stats
// @Produce		application/json
// @Router			/api/network [get]
// @Success		200	{object}	networkStatsResponse
// @Failure		404	{object}	errorResponse
func (api *routeAPI) networkStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := api.routeService.Stats()
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newNetworkStatsResponse(stats)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// reloadNetwork godoc
// @Summary		reload the sidewalk network from its source.
// @Description	reload the sidewalk network from its source. an unchanged dataset keeps the loaded graph.
// @Tags			network
// @ID network-reload
// @Produce		application/json
// @Router			/api/network/reload [post]
// @Success		200	{object}	networkStatsResponse
// @Failure		500	{object}	errorResponse
func (api *routeAPI) reloadNetwork(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := api.routeService.Reload(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, err)
		return
	}
	api.log.Info("network reloaded", zap.String("key", stats.Key), zap.Int("nodes", stats.Nodes))
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newNetworkStatsResponse(stats)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s", e.Translate(trans)))
	}
	return errs
}
