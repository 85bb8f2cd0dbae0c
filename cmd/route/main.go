package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/lintang-b-s/sidewalk-nav/pkg/graph"
	"github.com/lintang-b-s/sidewalk-nav/pkg/network"
	"github.com/lintang-b-s/sidewalk-nav/pkg/routing"
	"go.uber.org/zap"
)

var (
	networkFile = flag.String("f", "sidewalks.geojson", "sidewalk network, a geojson file path or http(s) url")
	format      = flag.String("format", "geojson", "network format: geojson or osm")
	from        = flag.String("from", "", "start point as lat,lon")
	to          = flag.String("to", "", "end point as lat,lon")
	mode        = flag.String("mode", "walking", "walking or biking")
	precision   = flag.Int("precision", graph.DefaultPrecision, "decimals used to merge network coordinates")
	asGeoJSON   = flag.Bool("geojson", false, "print the route as a geojson feature")
)

func parsePoint(s string) (datastructure.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return datastructure.Coordinate{}, fmt.Errorf("point %q must be lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return datastructure.Coordinate{}, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return datastructure.Coordinate{}, err
	}
	return datastructure.NewCoordinate(lat, lon), nil
}

func main() {
	flag.Parse()

	start, err := parsePoint(*from)
	if err != nil {
		log.Fatal(err)
	}
	end, err := parsePoint(*to)
	if err != nil {
		log.Fatal(err)
	}
	travelMode, err := routing.ParseTravelMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	srcFormat, err := network.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dataset, err := network.NewSource(zap.NewNop(), *networkFile, srcFormat).Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	var g *graph.Graph
	g, err = graph.BuildGraph(dataset.Features, graph.WithPrecision(*precision))
	if err != nil {
		log.Printf("routing without a network: %v", err)
	}

	route, err := routing.ComputeRoute(start, end, g)
	if err != nil {
		log.Fatal(err)
	}
	eta, err := routing.EstimateETA(route.Distance, travelMode, routing.DefaultSpeeds())
	if err != nil {
		log.Fatal(err)
	}

	var out interface{}
	if *asGeoJSON {
		out = network.RouteFeature(route.Points, map[string]interface{}{
			"distance":         route.Distance,
			"duration_seconds": eta.Duration.Seconds(),
			"mode":             string(travelMode),
			"fallback":         route.Fallback.String(),
		})
	} else {
		out = map[string]interface{}{
			"points":           route.Points,
			"distance":         route.Distance,
			"duration_seconds": eta.Duration.Seconds(),
			"arrival":          eta.Arrival.Format(time.RFC3339),
			"mode":             string(travelMode),
			"fallback":         route.Fallback.String(),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}
