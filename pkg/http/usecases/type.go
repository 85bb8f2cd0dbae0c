package usecases

import (
	"context"

	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
	"github.com/lintang-b-s/sidewalk-nav/pkg/network"
)

type GraphStore interface {
	SaveGraph(key string, g *graph.Graph) error
	LoadGraph(key string) (*graph.Graph, error)
	LatestKey() (string, error)
}

type NetworkSource interface {
	Peek(ctx context.Context) (string, []byte, error)
	Parse(ctx context.Context, digest string, data []byte) (network.Dataset, error)
}
