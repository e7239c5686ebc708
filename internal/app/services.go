// Package app provides service initialization.
package app

import (
	"github.com/restockd/replenishment-service/config"
	"github.com/restockd/replenishment-service/internal/ingest"
	"github.com/restockd/replenishment-service/internal/refdata"
	"github.com/restockd/replenishment-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.ReplenishmentCalculator
	Advisor    service.TruckCompletionAdvisor
	Parser     *ingest.Parser
	RefData    refdata.RefData
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.ReplenishmentConfig) *ServiceComponents {
	ref := buildRefData(cfg)

	calculator := service.NewCalculatorService(
		service.WithRefData(ref),
		service.WithTruckCapacity(cfg.TruckCapacity),
	)

	advisor := service.NewAdvisorService(
		service.WithAdvisorRefData(ref),
		service.WithAdvisorTruckCapacity(cfg.TruckCapacity),
		service.WithFallbackUnitsPerPallet(cfg.FallbackUnitsPerPallet),
	)

	parser := ingest.NewParser(cfg.CentralWarehouse, ref)

	return &ServiceComponents{
		Calculator: calculator,
		Advisor:    advisor,
		Parser:     parser,
		RefData:    ref,
	}
}

// buildRefData assembles the reference data from configuration, falling back
// to the shipped defaults where the configuration is silent.
func buildRefData(cfg config.ReplenishmentConfig) refdata.RefData {
	ref := refdata.Default()

	if len(cfg.LocalArticles) > 0 {
		ref.LocalArticles = refdata.NewArticleSet(cfg.LocalArticles)
	}

	depots := refdata.DepotFilter{
		Allowed:   refdata.NewArticleSet(cfg.ExtraDepots),
		Prefix:    cfg.DepotPrefix,
		RangeLow:  cfg.DepotRangeLow,
		RangeHigh: cfg.DepotRangeHigh,
	}
	if depots.Prefix != "" {
		ref.Depots = depots
	}

	return ref
}
