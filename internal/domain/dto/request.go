// Package dto defines Data Transfer Objects for HTTP request and response
// handling, decoupling the HTTP layer from the domain model.
package dto

import "github.com/restockd/replenishment-service/internal/domain/model"

// CalculateRequest is the JSON body of the replenishment calculation and
// export endpoints.
//
// @Description Replenishment calculation parameters
type CalculateRequest struct {
	// Days is the coverage horizon the shipment must cover.
	Days int `json:"days" binding:"min=0" example:"10" minimum:"0"`
	// Packaging restricts the calculation to the listed packaging values.
	// Empty means no restriction.
	Packaging []string `json:"packaging,omitempty" example:"verre,pet"`
	// ProductionPlan adds expected production quantities to central stock for
	// this calculation only.
	ProductionPlan []ProductionPlanEntry `json:"production_plan,omitempty"`
} // @name CalculateRequest

// ProductionPlanEntry is one article quantity expected from production.
type ProductionPlanEntry struct {
	Article  string  `json:"article" binding:"required" example:"10105"`
	Quantity float64 `json:"quantity" binding:"min=0" example:"500"`
} // @name ProductionPlanEntry

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNegativeDays is returned when days is negative.
	ErrNegativeDays = &ValidationError{
		Field:   "days",
		Message: "must not be negative",
	}
	// ErrPlanArticleMissing is returned when a production plan entry has no
	// article code.
	ErrPlanArticleMissing = &ValidationError{
		Field:   "production_plan.article",
		Message: "must not be empty",
	}
)

// Validate performs custom validation beyond the binding tags.
func (r *CalculateRequest) Validate() error {
	if r.Days < 0 {
		return ErrNegativeDays
	}
	for _, p := range r.ProductionPlan {
		if p.Article == "" {
			return ErrPlanArticleMissing
		}
	}
	return nil
}

// Plan converts the production plan entries to their domain form.
func (r *CalculateRequest) Plan() []model.ProductionPlanEntry {
	if len(r.ProductionPlan) == 0 {
		return nil
	}
	plan := make([]model.ProductionPlanEntry, len(r.ProductionPlan))
	for i, p := range r.ProductionPlan {
		plan[i] = model.ProductionPlanEntry(p)
	}
	return plan
}

// DepotConfigRequest is the JSON body replacing the depot-article
// configuration wholesale.
//
// @Description Depot-article configuration (full replace)
type DepotConfigRequest struct {
	// Mapping is depot code to allowed article codes.
	Mapping map[string][]string `json:"mapping"`
	// Enabled switches the restriction on.
	Enabled bool `json:"enabled" example:"true"`
} // @name DepotConfigRequest

// Config converts the request to its domain form.
func (r *DepotConfigRequest) Config() model.DepotArticleConfig {
	return model.DepotArticleConfig{
		Mapping: r.Mapping,
		Enabled: r.Enabled,
	}
}
