package model

// Line status display values. The business vocabulary is French: a line is
// either fully covered, deliverable from central stock, or not coverable.
const (
	StatusOK        = "OK"
	StatusPartial   = "À livrer"
	StatusUncovered = "Non couvert"
)

// Status color hints for the UI layer.
const (
	StatusColorOK        = "#16a34a"
	StatusColorPartial   = "#f59e0b"
	StatusColorUncovered = "#dc2626"
)

// Sourcing classification for an article.
const (
	SourcingLocal    = "local"
	SourcingExternal = "external"

	SourcingTextLocal    = "Production locale"
	SourcingTextExternal = "Approvisionnement externe"
)

// Truck efficiency labels for a depot load.
const (
	EfficiencyEfficient   = "Efficient"
	EfficiencyInefficient = "Inefficient"
)

// ReplenishmentLine is one computed (article, depot, packaging) aggregate.
// It is derived per calculation and never persisted.
type ReplenishmentLine struct {
	Article   string `json:"article"`
	Depot     string `json:"depot"`
	Packaging string `json:"packaging"`

	// DailyDemand is the summed ordered quantity of the group (the source
	// data's CQM column, a per-period demand rate).
	DailyDemand float64 `json:"daily_demand"`
	// CurrentStock is the depot's free stock, taken from the first row of the
	// group. Rows in a group share depot-level free stock.
	CurrentStock float64 `json:"current_stock"`
	// TransitQty is the quantity already under way from the central warehouse.
	TransitQty float64 `json:"transit_qty"`
	// RequiredQuantity is DailyDemand * days.
	RequiredQuantity float64 `json:"required_quantity"`
	// QuantityToShip is the shortfall: max(0, required - stock - transit).
	QuantityToShip float64 `json:"quantity_to_ship"`
	// CentralAvailable is the central warehouse stock for the article,
	// including any production plan quantities.
	CentralAvailable float64 `json:"central_available"`
	UnitsPerPallet   float64 `json:"units_per_pallet"`
	// PalettesNeeded is ceil(QuantityToShip / UnitsPerPallet). One unit still
	// occupies a full pallet.
	PalettesNeeded int `json:"palettes_needed"`
	// DaysOfCoverage is (stock + transit) / demand rate, rounded to one
	// decimal. It is an absolute runway metric, deliberately independent of
	// the requested coverage horizon.
	DaysOfCoverage float64 `json:"days_of_coverage"`

	Status      string `json:"status"`
	StatusColor string `json:"status_color"`

	SourcingStatus string `json:"sourcing_status"`
	SourcingText   string `json:"sourcing_text"`
	IsLocallyMade  bool   `json:"is_locally_made"`
}

// DepotLoad aggregates the pallet load of a single depot.
type DepotLoad struct {
	Depot         string `json:"depot"`
	TotalPalettes int    `json:"total_palettes"`
	// TotalItems is the number of replenishment lines for the depot.
	TotalItems   int    `json:"total_items"`
	TrucksNeeded int    `json:"trucks_needed"`
	Efficiency   string `json:"efficiency"`
	// MissingPalettes is how many pallets short of a full truck the load is.
	// Zero when the load is an exact multiple of the truck capacity.
	MissingPalettes int `json:"missing_palettes"`
}

// Summary holds the global counts of a calculation.
type Summary struct {
	TotalLines     int `json:"total_lines"`
	OKCount        int `json:"ok_count"`
	PartialCount   int `json:"partial_count"`
	UncoveredCount int `json:"uncovered_count"`
	// LocalPercent and ExternalPercent are sourcing shares rounded to one
	// decimal, 0 when there are no lines.
	LocalPercent    float64 `json:"local_percent"`
	ExternalPercent float64 `json:"external_percent"`
}

// CalculationResult is the complete output of a replenishment calculation.
type CalculationResult struct {
	Lines   []ReplenishmentLine `json:"lines"`
	Depots  []DepotLoad         `json:"depots"`
	Summary Summary             `json:"summary"`

	HasStockData   bool `json:"has_stock_data"`
	HasTransitData bool `json:"has_transit_data"`
}
