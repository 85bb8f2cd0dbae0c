package main

import (
	"log"

	"github.com/lintang-b-s/sidewalk-nav/pkg/di"
)

//	@title			sidewalk-nav API
//	@version		1.0
//	@description	pedestrian and bike routing over a sidewalk network with eta estimates.
//	@host			localhost:6060
//	@BasePath		/
func main() {
	server, cleanup, err := di.InitializeRouteService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error(err.Error())
	}
}
