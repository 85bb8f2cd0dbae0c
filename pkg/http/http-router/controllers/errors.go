package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (api *routeAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed", zap.Error(err),
		zap.String("method", r.Method), zap.String("url", r.URL.String()))
}

func (api *routeAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	if err := api.writeJSON(w, status, envelope{"error": message}, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *routeAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}

func (api *routeAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *routeAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

// getStatusCode maps an error code from pkg to the response status.
func getStatusCode(err error) int {
	switch {
	case errors.Is(pkg.ErrorCode(err), pkg.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(pkg.ErrorCode(err), pkg.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(pkg.ErrorCode(err), pkg.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (api *routeAPI) ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch status := getStatusCode(err); status {
	case http.StatusInternalServerError:
		api.ServerErrorResponse(w, r, err)
	default:
		api.errorResponse(w, r, status, err.Error())
	}
}
