package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/lintang-b-s/sidewalk-nav/pkg/geo"
	"github.com/lintang-b-s/sidewalk-nav/pkg/network"
)

var (
	mapFile = flag.String("f", "yogyakarta.osm.pbf", "openstreetmap pbf file to extract the sidewalk network from")
	outFile = flag.String("o", "sidewalks.geojson", "output geojson FeatureCollection")
	bbox    = flag.String("bbox", "", "optional minLat,minLon,maxLat,maxLon filter")
)

func main() {
	flag.Parse()

	features, err := network.LoadOSM(context.Background(), *mapFile)
	if err != nil {
		log.Fatal(err)
	}

	if *bbox != "" {
		bb, err := geo.ParseBoundingBox(*bbox)
		if err != nil {
			log.Fatal(err)
		}
		features = network.FilterBoundingBox(features, bb)
	}

	data, err := network.MarshalGeoJSON(features)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outFile, data, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d sidewalk ways to %s", len(features), *outFile)
}
