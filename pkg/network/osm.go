package network

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/go-ansi"
	"github.com/lintang-b-s/sidewalk-nav/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

var walkableHighways = map[string]bool{
	"footway":       true,
	"path":          true,
	"pedestrian":    true,
	"cycleway":      true,
	"living_street": true,
	"steps":         true,
	"residential":   true,
	"service":       true,
	"track":         true,
	"unclassified":  true,
	"bridleway":     true,
	"crossing":      true,
}

var sidewalkValues = map[string]bool{
	"both":     true,
	"left":     true,
	"right":    true,
	"yes":      true,
	"separate": true,
}

// isWalkable reports whether a way belongs in the sidewalk network.
func isWalkable(tags osm.Tags) bool {
	if tags.Find("area") == "yes" {
		return false
	}
	foot := tags.Find("foot")
	if foot == "no" || tags.Find("access") == "private" {
		return false
	}
	if foot == "yes" || foot == "designated" {
		return true
	}
	if sidewalkValues[tags.Find("sidewalk")] {
		return true
	}
	return walkableHighways[tags.Find("highway")]
}

type osmWay struct {
	ID      int64
	NodeIDs []osm.NodeID
}

// LoadOSM extracts walkable ways from an openstreetmap pbf file as LineString features.
func LoadOSM(ctx context.Context, mapfile string) ([]datastructure.NetworkFeature, error) {
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, fmt.Errorf("open osm file: %w", err)
	}
	defer f.Close()

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Parsing osm ways..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	bar.Add(1)

	ways := []osmWay{}
	wayNodes := make(map[osm.NodeID]bool)

	scannerWay := osmpbf.New(ctx, f, 1)
	scannerWay.SkipNodes = true
	scannerWay.SkipRelations = true
	for scannerWay.Scan() {
		way, ok := scannerWay.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !isWalkable(way.Tags) {
			continue
		}
		nodeIDs := make([]osm.NodeID, len(way.Nodes))
		for i, n := range way.Nodes {
			nodeIDs[i] = n.ID
			wayNodes[n.ID] = true
		}
		ways = append(ways, osmWay{ID: int64(way.ID), NodeIDs: nodeIDs})
	}
	if err := scannerWay.Err(); err != nil {
		scannerWay.Close()
		return nil, fmt.Errorf("scan osm ways: %w", err)
	}
	scannerWay.Close()
	bar.Describe("[cyan][2/2]Parsing osm nodes...")
	bar.Add(1)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	nodeCoords := make(map[osm.NodeID]datastructure.Coordinate, len(wayNodes))
	scannerNode := osmpbf.New(ctx, f, 1)
	defer scannerNode.Close()
	scannerNode.SkipWays = true
	scannerNode.SkipRelations = true
	for scannerNode.Scan() {
		node, ok := scannerNode.Object().(*osm.Node)
		if !ok || !wayNodes[node.ID] {
			continue
		}
		nodeCoords[node.ID] = datastructure.NewCoordinate(node.Lat, node.Lon)
	}
	if err := scannerNode.Err(); err != nil {
		return nil, fmt.Errorf("scan osm nodes: %w", err)
	}

	features := make([]datastructure.NetworkFeature, 0, len(ways))
	for _, way := range ways {
		coords := make([]datastructure.Coordinate, 0, len(way.NodeIDs))
		for _, id := range way.NodeIDs {
			// ways clipped by an extract can reference nodes outside it
			if c, ok := nodeCoords[id]; ok {
				coords = append(coords, c)
			}
		}
		if len(coords) < 2 {
			continue
		}
		features = append(features, datastructure.NewLineStringFeature(coords))
	}
	bar.Add(1)
	return features, nil
}
