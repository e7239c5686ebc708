package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/restockd/replenishment-service/internal/domain/dto"
	"github.com/restockd/replenishment-service/internal/domain/model"
	"github.com/restockd/replenishment-service/internal/export"
	"github.com/restockd/replenishment-service/internal/i18n"
	"github.com/restockd/replenishment-service/internal/ingest"
	"github.com/restockd/replenishment-service/internal/metrics"
	"github.com/restockd/replenishment-service/internal/service"
	"github.com/restockd/replenishment-service/internal/store"
)

// defaultTruckPlanDays is the coverage horizon used when the truck plan query
// does not provide one.
const defaultTruckPlanDays = 10

// Handler provides the HTTP handlers for the replenishment routes.
type Handler struct {
	calculator service.ReplenishmentCalculator
	advisor    service.TruckCompletionAdvisor
	datasets   store.DatasetStore
	configs    store.DepotConfigStore
	parser     *ingest.Parser
}

// NewHandler creates a new Handler instance.
func NewHandler(
	calculator service.ReplenishmentCalculator,
	advisor service.TruckCompletionAdvisor,
	datasets store.DatasetStore,
	configs store.DepotConfigStore,
	parser *ingest.Parser,
) *Handler {
	return &Handler{
		calculator: calculator,
		advisor:    advisor,
		datasets:   datasets,
		configs:    configs,
		parser:     parser,
	}
}

// snapshot assembles the dataset view for one request.
func (h *Handler) snapshot(c *gin.Context, builder *ResponseBuilder) (model.Snapshot, bool) {
	snap, err := store.BuildSnapshot(c.Request.Context(), h.datasets, h.configs)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, err)
		return model.Snapshot{}, false
	}
	return snap, true
}

// Calculate handles POST /api/replenishment/calculate requests.
//
// @Summary      Calculate depot replenishment needs
// @Description  Joins the latest order, central stock and in-transit datasets, computes per-line shortfall quantities and converts them to palette and truck counts per depot. An optional production plan augments central stock for this calculation only.
// @Tags         Replenishment
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateRequest true "Calculation parameters"
// @Success      200 {object} dto.SuccessResponse "Calculation result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or empty dataset after filtering"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - dataset store unreachable"
// @Router       /api/replenishment/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.bindCalculateRequest(c, builder)
	if !ok {
		return
	}

	snap, ok := h.snapshot(c, builder)
	if !ok {
		return
	}

	start := time.Now()
	result, err := h.calculator.Calculate(c.Request.Context(), service.CalculationInput{
		Days:            req.Days,
		PackagingFilter: req.Packaging,
		ProductionPlan:  req.Plan(),
		Snapshot:        snap,
	})
	if err != nil {
		metrics.RecordCalculation(time.Since(start), metrics.StatusError)
		builder.DomainError(err)
		return
	}

	metrics.RecordCalculation(time.Since(start), metrics.StatusSuccess)
	builder.SuccessOK(result)
}

// Export handles POST /api/replenishment/export requests.
//
// @Summary      Export a replenishment calculation as a workbook
// @Description  Runs the same calculation as the calculate endpoint and returns the result as a downloadable .xlsx workbook with a line sheet and a depot summary sheet.
// @Tags         Replenishment
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request body dto.CalculateRequest true "Calculation parameters"
// @Success      200 {file} file "Workbook download"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or empty dataset after filtering"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - dataset store unreachable"
// @Router       /api/replenishment/export [post]
func (h *Handler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := h.bindCalculateRequest(c, builder)
	if !ok {
		return
	}

	snap, ok := h.snapshot(c, builder)
	if !ok {
		return
	}

	result, err := h.calculator.Calculate(c.Request.Context(), service.CalculationInput{
		Days:            req.Days,
		PackagingFilter: req.Packaging,
		ProductionPlan:  req.Plan(),
		Snapshot:        snap,
	})
	if err != nil {
		builder.DomainError(err)
		return
	}

	buf, err := export.BuildWorkbook(*result)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	filename := fmt.Sprintf("replenishment-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// TruckPlan handles GET /api/depots/:depot/truck-plan requests.
//
// @Summary      Suggest articles to complete a depot's truck
// @Description  Computes the depot's current pallet load, how many pallets are missing to reach a full multiple of the truck capacity, and suggests up to five articles the depot already orders, prioritized by central warehouse stock.
// @Tags         Depots
// @Produce      json
// @Param        depot path string true "Depot code"
// @Param        days query int false "Coverage horizon in days" default(10)
// @Success      200 {object} dto.SuccessResponse "Truck completion plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing depot or no order data"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - dataset store unreachable"
// @Router       /api/depots/{depot}/truck-plan [get]
func (h *Handler) TruckPlan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	days := defaultTruckPlanDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		days = parsed
	}

	snap, ok := h.snapshot(c, builder)
	if !ok {
		return
	}

	plan, err := h.advisor.Plan(c.Request.Context(), service.TruckPlanInput{
		Depot:    c.Param("depot"),
		Days:     days,
		Snapshot: snap,
	})
	if err != nil {
		metrics.RecordTruckPlan(metrics.StatusError)
		builder.DomainError(err)
		return
	}

	metrics.RecordTruckPlan(metrics.StatusSuccess)
	builder.SuccessOK(plan)
}

func (h *Handler) bindCalculateRequest(c *gin.Context, builder *ResponseBuilder) (*dto.CalculateRequest, bool) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return nil, false
	}
	return &req, true
}
