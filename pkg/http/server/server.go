package http_server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New builds an http.Server whose request contexts derive from ctx.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:    ":" + strconv.Itoa(config.Port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       config.Timeout,
		WriteTimeout:      config.Timeout + 5*time.Second,
		IdleTimeout:       2 * config.Timeout,
	}
}
