package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/restockd/replenishment-service/internal/apperr"
	"github.com/restockd/replenishment-service/internal/domain/model"
	"github.com/restockd/replenishment-service/internal/refdata"
)

const (
	// DefaultFallbackUnitsPerPallet is used when an article's pallet size
	// cannot be determined from the order data.
	DefaultFallbackUnitsPerPallet = 30
	// defaultMaxSuggestions bounds the number of articles proposed per plan.
	defaultMaxSuggestions = 5
	// defaultMaxPalettesPerSuggestion caps a single suggestion so the
	// recommendation spreads across several articles.
	defaultMaxPalettesPerSuggestion = 3
)

// TruckPlanInput carries a single truck plan request and the snapshot it runs
// against.
type TruckPlanInput struct {
	Depot    string
	Days     int
	Snapshot model.Snapshot
}

// TruckCompletionAdvisor suggests articles to round a depot's load up to a
// full truck.
type TruckCompletionAdvisor interface {
	Plan(ctx context.Context, in TruckPlanInput) (*model.TruckPlan, error)
}

// AdvisorOption configures an AdvisorService.
type AdvisorOption func(*AdvisorService)

// WithAdvisorRefData sets the reference data used by the advisor.
func WithAdvisorRefData(ref refdata.RefData) AdvisorOption {
	return func(s *AdvisorService) {
		s.ref = ref
	}
}

// WithAdvisorTruckCapacity sets the truck capacity in pallets.
func WithAdvisorTruckCapacity(capacity int) AdvisorOption {
	return func(s *AdvisorService) {
		if capacity > 0 {
			s.truckCapacity = capacity
		}
	}
}

// WithFallbackUnitsPerPallet sets the pallet size assumed for articles whose
// pallet size is unknown.
func WithFallbackUnitsPerPallet(units float64) AdvisorOption {
	return func(s *AdvisorService) {
		if units > 0 {
			s.fallbackUnitsPerPallet = units
		}
	}
}

// AdvisorService implements TruckCompletionAdvisor.
//
// For the requested depot it recomputes the pallet load line by line with the
// same shortfall formula as the calculator, determines how many pallets are
// missing to the next full truck, and ranks candidate articles by descending
// central stock. Candidates come only from the depot's own order rows: a
// truck-fill optimizer never introduces an article the depot has never
// ordered.
type AdvisorService struct {
	ref                      refdata.RefData
	truckCapacity            int
	fallbackUnitsPerPallet   float64
	maxSuggestions           int
	maxPalettesPerSuggestion int
}

// NewAdvisorService creates an AdvisorService with the given options.
func NewAdvisorService(opts ...AdvisorOption) *AdvisorService {
	s := &AdvisorService{
		ref:                      refdata.Default(),
		truckCapacity:            DefaultTruckCapacity,
		fallbackUnitsPerPallet:   DefaultFallbackUnitsPerPallet,
		maxSuggestions:           defaultMaxSuggestions,
		maxPalettesPerSuggestion: defaultMaxPalettesPerSuggestion,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// candidate is an article eligible for a top-off suggestion.
type candidate struct {
	article          string
	packaging        string
	unitsPerPallet   float64
	centralAvailable float64
}

// Plan computes the truck completion plan for one depot.
func (s *AdvisorService) Plan(_ context.Context, in TruckPlanInput) (*model.TruckPlan, error) {
	if !in.Snapshot.HasOrders {
		return nil, apperr.ErrNoOrderData
	}
	depot := strings.TrimSpace(in.Depot)
	if depot == "" {
		return nil, apperr.ErrMissingDepotName
	}

	rows := make([]model.OrderLine, 0)
	for _, r := range in.Snapshot.Orders {
		if strings.TrimSpace(r.Depot) == depot {
			rows = append(rows, r)
		}
	}

	transit := transitLookup(in.Snapshot.Transit)
	central := make(map[string]float64, len(in.Snapshot.CentralStock))
	for _, e := range in.Snapshot.CentralStock {
		central[strings.TrimSpace(e.Article)] += e.AvailableQuantity
	}

	// Each row is recomputed independently with its own pallet size, free
	// stock and transit, then summed into the current load.
	days := float64(in.Days)
	currentPalettes := 0
	for _, r := range rows {
		article := strings.TrimSpace(r.Article)
		toShip := r.OrderedQuantity*days - r.FreeStock - transit[transitKey{article: article, depot: depot}]
		if toShip < 0 {
			toShip = 0
		}
		currentPalettes += palettesFor(toShip, r.UnitsPerPallet)
	}

	currentTrucks := 1
	if currentPalettes > 0 {
		currentTrucks = ceilDiv(currentPalettes, s.truckCapacity)
	}
	targetPalettes := currentTrucks * s.truckCapacity

	plan := &model.TruckPlan{
		Depot:            depot,
		CurrentPalettes:  currentPalettes,
		CurrentTrucks:    currentTrucks,
		TargetPalettes:   targetPalettes,
		PalettesToAdd:    targetPalettes - currentPalettes,
		EfficiencyStatus: model.EfficiencyInefficient,
		Suggestions:      []model.TruckSuggestion{},
	}
	if currentPalettes > 0 && currentPalettes%s.truckCapacity == 0 {
		plan.EfficiencyStatus = model.EfficiencyEfficient
	}

	if len(rows) == 0 {
		plan.Message = fmt.Sprintf("Aucune commande trouvée pour le dépôt %s", depot)
		return plan, nil
	}

	if plan.PalettesToAdd > 0 && in.Snapshot.HasCentralStock {
		plan.Suggestions = s.suggest(rows, central, plan.PalettesToAdd)
	}
	return plan, nil
}

// suggest walks the depot's own articles in descending central stock order and
// proposes capped pallet quantities until the gap is closed or the suggestion
// limit is reached.
func (s *AdvisorService) suggest(rows []model.OrderLine, central map[string]float64, palettesToAdd int) []model.TruckSuggestion {
	seen := make(map[string]struct{}, len(rows))
	candidates := make([]candidate, 0, len(rows))
	for _, r := range rows {
		article := strings.TrimSpace(r.Article)
		if _, ok := seen[article]; ok {
			continue
		}
		seen[article] = struct{}{}

		available := central[article]
		if available <= 0 {
			continue
		}
		upp := r.UnitsPerPallet
		if upp <= 0 {
			upp = s.fallbackUnitsPerPallet
		}
		candidates = append(candidates, candidate{
			article:          article,
			packaging:        r.Packaging,
			unitsPerPallet:   upp,
			centralAvailable: available,
		})
	}

	// Largest central stock first: moving high-inventory items out of the
	// warehouse has priority.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].centralAvailable != candidates[j].centralAvailable {
			return candidates[i].centralAvailable > candidates[j].centralAvailable
		}
		return candidates[i].article < candidates[j].article
	})

	suggestions := make([]model.TruckSuggestion, 0, s.maxSuggestions)
	remaining := palettesToAdd
	for _, c := range candidates {
		if remaining <= 0 || len(suggestions) >= s.maxSuggestions {
			break
		}

		palettes := s.maxPalettesPerSuggestion
		if remaining < palettes {
			palettes = remaining
		}
		quantity := float64(palettes) * c.unitsPerPallet
		canFulfill := quantity <= c.centralAvailable

		sg := model.TruckSuggestion{
			Article:           c.article,
			Packaging:         c.packaging,
			CentralAvailable:  c.centralAvailable,
			SuggestedQuantity: quantity,
			SuggestedPalettes: palettes,
			CanFulfill:        canFulfill,
			ReasonText:        fmt.Sprintf("Stock central disponible: %.0f unités", c.centralAvailable),
		}
		if canFulfill {
			sg.FeasibilityText = "Réalisable"
		} else {
			sg.FeasibilityText = "Stock central insuffisant"
		}
		suggestions = append(suggestions, sg)
		remaining -= palettes
	}
	return suggestions
}
