// Package main is the entry point for the replenishment-service application.
//
// @title           Replenishment Service API
// @version         1.0.0
// @description     API for computing depot replenishment needs from uploaded order, stock and transit data.
//
//	The service ingests Excel workbooks, computes per-depot shortfall quantities,
//	converts them to pallet and truck counts and suggests articles to fill
//	partially loaded trucks.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Datasets
// @tag.description Dataset upload operations
//
// @tag.name        Replenishment
// @tag.description Replenishment calculation operations
//
// @tag.name        Depots
// @tag.description Depot truck planning operations
//
// @tag.name        Configuration
// @tag.description Depot-article configuration
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/restockd/replenishment-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/restockd/replenishment-service/config"
	"github.com/restockd/replenishment-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
