package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/lintang-b-s/sidewalk-nav/pkg"
)

const (
	maxDatasetBytes = 512 << 20
)

// Fetch downloads a dataset. the caller owns the timeout through ctx.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "network url %q", url)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch network %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch network %s: HTTP error! status: %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read network body: %w", err)
	}
	if len(data) > maxDatasetBytes {
		return nil, fmt.Errorf("network dataset larger than %d bytes", maxDatasetBytes)
	}
	return data, nil
}

func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening network file: %w", err)
	}
	return data, nil
}
