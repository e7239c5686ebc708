package model

// TruckSuggestion proposes one article to top off a depot's truck load.
// Only articles the depot already orders are ever proposed.
type TruckSuggestion struct {
	Article          string  `json:"article"`
	Packaging        string  `json:"packaging"`
	CentralAvailable float64 `json:"central_available"`
	SuggestedQuantity float64 `json:"suggested_quantity"`
	SuggestedPalettes int     `json:"suggested_palettes"`
	// CanFulfill is true when the suggested quantity fits in central stock.
	CanFulfill      bool   `json:"can_fulfill"`
	FeasibilityText string `json:"feasibility_text"`
	ReasonText      string `json:"reason_text"`
}

// TruckPlan is the truck-fill-completion recommendation for one depot.
type TruckPlan struct {
	Depot           string            `json:"depot"`
	CurrentPalettes int               `json:"current_palettes"`
	CurrentTrucks   int               `json:"current_trucks"`
	TargetPalettes  int               `json:"target_palettes"`
	PalettesToAdd   int               `json:"palettes_to_add"`
	EfficiencyStatus string           `json:"efficiency_status"`
	Suggestions     []TruckSuggestion `json:"suggestions"`
	// Message explains a zero-state plan, e.g. when the depot has no orders.
	Message string `json:"message,omitempty"`
}
