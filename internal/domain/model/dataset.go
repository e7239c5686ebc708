// Package model defines the core domain entities for the replenishment service.
package model

// DatasetType identifies one of the three logical datasets the service ingests.
type DatasetType string

const (
	// DatasetOrders is the uploaded depot order data.
	DatasetOrders DatasetType = "orders"
	// DatasetCentralStock is the uploaded central warehouse stock data.
	DatasetCentralStock DatasetType = "stock"
	// DatasetTransit is the uploaded in-transit shipment data.
	DatasetTransit DatasetType = "transit"
)

// OrderLine is one cleaned row of uploaded order data.
//
// A line is the average demand of a depot for one article, together with the
// stock already sitting at that depot. Rows targeting the central warehouse
// itself are dropped during ingestion and never reach the calculator.
type OrderLine struct {
	// Article is the article code, compared as a trimmed string.
	Article string `json:"article"`
	// Depot is the destination depot code. Never the central warehouse.
	Depot string `json:"depot"`
	// Packaging is the normalized packaging label (verre, pet, canette, bib).
	// Unrecognized labels pass through unchanged.
	Packaging string `json:"packaging"`
	// OrderedQuantity is the per-period demand rate from the source data.
	OrderedQuantity float64 `json:"ordered_quantity"`
	// FreeStock is stock already present at the depot. Missing values are 0.
	FreeStock float64 `json:"free_stock"`
	// UnitsPerPallet is how many units fit on one pallet. Always > 0.
	UnitsPerPallet float64 `json:"units_per_pallet"`
}

// CentralStockEntry is one row of central warehouse stock. Only rows whose
// division equals the central warehouse code survive ingestion.
type CentralStockEntry struct {
	Article           string  `json:"article"`
	AvailableQuantity float64 `json:"available_quantity"`
}

// TransitEntry is one row of in-transit shipment data. Only rows originating
// from the central warehouse survive ingestion.
type TransitEntry struct {
	Article          string  `json:"article"`
	DestinationDepot string  `json:"destination_depot"`
	Quantity         float64 `json:"quantity"`
}

// DepotArticleConfig restricts which (depot, article) combinations the
// calculator considers. It is replaced wholesale on save and read-only during
// calculation. An enabled config with an empty mapping is a no-op.
type DepotArticleConfig struct {
	// Mapping is depot code to the list of allowed article codes.
	Mapping map[string][]string `json:"mapping"`
	// Enabled switches the restriction on.
	Enabled bool `json:"enabled"`
}

// Allows reports whether the (depot, article) pair passes the configuration.
// A disabled or empty configuration allows everything.
func (c DepotArticleConfig) Allows(depot, article string) bool {
	if !c.Enabled || len(c.Mapping) == 0 {
		return true
	}
	for _, a := range c.Mapping[depot] {
		if a == article {
			return true
		}
	}
	return false
}

// ProductionPlanEntry adds expected future production to the central stock
// lookup for the duration of a single calculation.
type ProductionPlanEntry struct {
	Article  string  `json:"article"`
	Quantity float64 `json:"quantity"`
}

// Snapshot is the immutable view of the three datasets and the depot-article
// configuration that a single calculation runs against. Callers build it from
// the store; the calculator never touches shared state.
type Snapshot struct {
	Orders       []OrderLine
	CentralStock []CentralStockEntry
	Transit      []TransitEntry
	DepotConfig  DepotArticleConfig

	// HasOrders distinguishes "never uploaded" from "uploaded but empty".
	HasOrders       bool
	HasCentralStock bool
	HasTransit      bool
}
