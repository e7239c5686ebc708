// Package service implements the replenishment calculation and truck
// completion recommendation engines.
package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/restockd/replenishment-service/internal/apperr"
	"github.com/restockd/replenishment-service/internal/domain/model"
	"github.com/restockd/replenishment-service/internal/refdata"
)

// DefaultTruckCapacity is the standard truck load in pallets.
const DefaultTruckCapacity = 24

// CalculationInput carries everything a single calculation runs against. The
// snapshot is passed in explicitly; the calculator holds no dataset state.
type CalculationInput struct {
	// Days is the coverage horizon in days, >= 0.
	Days int
	// PackagingFilter restricts lines to the given packaging values when
	// non-empty. Values are normalized before comparison.
	PackagingFilter []string
	// ProductionPlan adds expected production quantities to the central stock
	// lookup for this calculation only.
	ProductionPlan []model.ProductionPlanEntry
	// Snapshot is the dataset view to calculate from.
	Snapshot model.Snapshot
}

// ReplenishmentCalculator computes depot replenishment needs from a dataset
// snapshot.
type ReplenishmentCalculator interface {
	Calculate(ctx context.Context, in CalculationInput) (*model.CalculationResult, error)
}

// CalculatorOption configures a CalculatorService.
type CalculatorOption func(*CalculatorService)

// WithRefData sets the reference data (packaging table, local article set).
func WithRefData(ref refdata.RefData) CalculatorOption {
	return func(s *CalculatorService) {
		s.ref = ref
	}
}

// WithTruckCapacity sets the truck capacity in pallets.
func WithTruckCapacity(capacity int) CalculatorOption {
	return func(s *CalculatorService) {
		if capacity > 0 {
			s.truckCapacity = capacity
		}
	}
}

// CalculatorService implements ReplenishmentCalculator.
//
// The pipeline joins orders, central stock and transit by (article, depot),
// computes the shortfall per (article, depot, packaging) group, converts it to
// pallet and truck counts and classifies each line against central stock
// availability.
type CalculatorService struct {
	ref           refdata.RefData
	truckCapacity int
}

// NewCalculatorService creates a CalculatorService with the given options.
func NewCalculatorService(opts ...CalculatorOption) *CalculatorService {
	s := &CalculatorService{
		ref:           refdata.Default(),
		truckCapacity: DefaultTruckCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type groupKey struct {
	article   string
	depot     string
	packaging string
}

type lineGroup struct {
	dailyDemand float64
	// currentStock and unitsPerPallet come from the first row seen for the
	// key; rows in a group share depot-level free stock.
	currentStock   float64
	unitsPerPallet float64
}

type transitKey struct {
	article string
	depot   string
}

// Calculate runs the replenishment pipeline. It is a pure function of its
// input: the production plan only mutates the in-memory central stock lookup
// built for this call.
func (s *CalculatorService) Calculate(_ context.Context, in CalculationInput) (*model.CalculationResult, error) {
	if !in.Snapshot.HasOrders {
		return nil, apperr.ErrNoOrderData
	}

	rows, err := s.filterRows(in)
	if err != nil {
		return nil, err
	}

	central := s.centralLookup(in.Snapshot.CentralStock, in.ProductionPlan)
	transit := transitLookup(in.Snapshot.Transit)
	groups, order := groupRows(rows)

	days := float64(in.Days)
	lines := make([]model.ReplenishmentLine, 0, len(groups))
	for _, k := range order {
		g := groups[k]
		lines = append(lines, s.buildLine(k, g, days, central, transit))
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Depot != lines[j].Depot {
			return lines[i].Depot < lines[j].Depot
		}
		if lines[i].Article != lines[j].Article {
			return lines[i].Article < lines[j].Article
		}
		return lines[i].Packaging < lines[j].Packaging
	})

	return &model.CalculationResult{
		Lines:          lines,
		Depots:         s.aggregateDepots(lines),
		Summary:        summarize(lines),
		HasStockData:   in.Snapshot.HasCentralStock,
		HasTransitData: in.Snapshot.HasTransit,
	}, nil
}

// filterRows applies the packaging filter and the depot-article configuration,
// in that order. Each filter that empties the dataset fails with its own
// typed error so the caller can tell the two apart.
func (s *CalculatorService) filterRows(in CalculationInput) ([]model.OrderLine, error) {
	rows := in.Snapshot.Orders

	if len(in.PackagingFilter) > 0 {
		want := make(map[string]struct{}, len(in.PackagingFilter))
		for _, p := range in.PackagingFilter {
			want[s.ref.Packaging.Normalize(p)] = struct{}{}
		}
		filtered := make([]model.OrderLine, 0, len(rows))
		for _, r := range rows {
			if _, ok := want[s.ref.Packaging.Normalize(r.Packaging)]; ok {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return nil, apperr.ErrEmptyAfterFilter
		}
		rows = filtered
	}

	cfg := in.Snapshot.DepotConfig
	if cfg.Enabled && len(cfg.Mapping) > 0 {
		filtered := make([]model.OrderLine, 0, len(rows))
		for _, r := range rows {
			if cfg.Allows(strings.TrimSpace(r.Depot), strings.TrimSpace(r.Article)) {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return nil, apperr.ErrNoConfiguredCombinations
		}
		rows = filtered
	}

	return rows, nil
}

// centralLookup builds the article -> available quantity map, augmented by the
// production plan. Plan entries for unknown articles create new entries.
func (s *CalculatorService) centralLookup(stock []model.CentralStockEntry, plan []model.ProductionPlanEntry) map[string]float64 {
	central := make(map[string]float64, len(stock))
	for _, e := range stock {
		central[strings.TrimSpace(e.Article)] += e.AvailableQuantity
	}
	for _, p := range plan {
		if article := strings.TrimSpace(p.Article); article != "" {
			central[article] += p.Quantity
		}
	}
	return central
}

func transitLookup(entries []model.TransitEntry) map[transitKey]float64 {
	transit := make(map[transitKey]float64, len(entries))
	for _, t := range entries {
		k := transitKey{
			article: strings.TrimSpace(t.Article),
			depot:   strings.TrimSpace(t.DestinationDepot),
		}
		transit[k] += t.Quantity
	}
	return transit
}

// groupRows groups order rows by (article, depot, packaging), summing demand
// and keeping the first-seen free stock and pallet size. The insertion order
// is returned so iteration stays deterministic before the final sort.
func groupRows(rows []model.OrderLine) (map[groupKey]*lineGroup, []groupKey) {
	groups := make(map[groupKey]*lineGroup, len(rows))
	order := make([]groupKey, 0, len(rows))
	for _, r := range rows {
		k := groupKey{
			article:   strings.TrimSpace(r.Article),
			depot:     strings.TrimSpace(r.Depot),
			packaging: r.Packaging,
		}
		g, ok := groups[k]
		if !ok {
			g = &lineGroup{
				currentStock:   r.FreeStock,
				unitsPerPallet: r.UnitsPerPallet,
			}
			groups[k] = g
			order = append(order, k)
		}
		g.dailyDemand += r.OrderedQuantity
	}
	return groups, order
}

func (s *CalculatorService) buildLine(k groupKey, g *lineGroup, days float64, central map[string]float64, transit map[transitKey]float64) model.ReplenishmentLine {
	transitQty := transit[transitKey{article: k.article, depot: k.depot}]
	required := g.dailyDemand * days

	toShip := required - g.currentStock - transitQty
	if toShip < 0 {
		toShip = 0
	}

	available := central[k.article]

	line := model.ReplenishmentLine{
		Article:          k.article,
		Depot:            k.depot,
		Packaging:        k.packaging,
		DailyDemand:      g.dailyDemand,
		CurrentStock:     g.currentStock,
		TransitQty:       transitQty,
		RequiredQuantity: required,
		QuantityToShip:   toShip,
		CentralAvailable: available,
		UnitsPerPallet:   g.unitsPerPallet,
		PalettesNeeded:   palettesFor(toShip, g.unitsPerPallet),
	}

	if g.dailyDemand > 0 {
		line.DaysOfCoverage = round1((g.currentStock + transitQty) / g.dailyDemand)
	}

	switch {
	case toShip == 0:
		line.Status = model.StatusOK
		line.StatusColor = model.StatusColorOK
	case toShip <= available:
		line.Status = model.StatusPartial
		line.StatusColor = model.StatusColorPartial
	default:
		line.Status = model.StatusUncovered
		line.StatusColor = model.StatusColorUncovered
	}

	if s.ref.LocalArticles.Contains(k.article) {
		line.IsLocallyMade = true
		line.SourcingStatus = model.SourcingLocal
		line.SourcingText = model.SourcingTextLocal
	} else {
		line.SourcingStatus = model.SourcingExternal
		line.SourcingText = model.SourcingTextExternal
	}

	return line
}

// aggregateDepots sums pallet loads per depot and derives truck counts.
// Depots are ordered by total pallets descending.
func (s *CalculatorService) aggregateDepots(lines []model.ReplenishmentLine) []model.DepotLoad {
	byDepot := make(map[string]*model.DepotLoad)
	order := make([]string, 0)
	for _, l := range lines {
		d, ok := byDepot[l.Depot]
		if !ok {
			d = &model.DepotLoad{Depot: l.Depot}
			byDepot[l.Depot] = d
			order = append(order, l.Depot)
		}
		d.TotalPalettes += l.PalettesNeeded
		d.TotalItems++
	}

	depots := make([]model.DepotLoad, 0, len(byDepot))
	for _, name := range order {
		d := byDepot[name]
		if d.TotalPalettes > 0 {
			d.TrucksNeeded = ceilDiv(d.TotalPalettes, s.truckCapacity)
		}
		if d.TotalPalettes > 0 && d.TotalPalettes%s.truckCapacity == 0 {
			d.Efficiency = model.EfficiencyEfficient
		} else {
			d.Efficiency = model.EfficiencyInefficient
			d.MissingPalettes = s.truckCapacity - d.TotalPalettes%s.truckCapacity
		}
		depots = append(depots, *d)
	}

	sort.Slice(depots, func(i, j int) bool {
		if depots[i].TotalPalettes != depots[j].TotalPalettes {
			return depots[i].TotalPalettes > depots[j].TotalPalettes
		}
		return depots[i].Depot < depots[j].Depot
	})
	return depots
}

func summarize(lines []model.ReplenishmentLine) model.Summary {
	sum := model.Summary{TotalLines: len(lines)}
	local := 0
	for _, l := range lines {
		switch l.Status {
		case model.StatusOK:
			sum.OKCount++
		case model.StatusPartial:
			sum.PartialCount++
		default:
			sum.UncoveredCount++
		}
		if l.IsLocallyMade {
			local++
		}
	}
	if sum.TotalLines > 0 {
		sum.LocalPercent = round1(float64(local) / float64(sum.TotalLines) * 100)
		sum.ExternalPercent = round1(float64(sum.TotalLines-local) / float64(sum.TotalLines) * 100)
	}
	return sum
}

// palettesFor rounds a shortfall up to whole pallets. A shipment of one unit
// still occupies a full pallet.
func palettesFor(quantity, unitsPerPallet float64) int {
	if quantity <= 0 || unitsPerPallet <= 0 {
		return 0
	}
	return int(math.Ceil(quantity / unitsPerPallet))
}

func ceilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
