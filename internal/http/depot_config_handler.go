package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restockd/replenishment-service/internal/domain/dto"
	"github.com/restockd/replenishment-service/internal/i18n"
)

// GetDepotConfig handles GET /api/depot-config requests.
//
// @Summary      Get the depot-article configuration
// @Description  Returns the current depot to article mapping and whether the restriction is enabled. An empty mapping with the restriction disabled means all depot-article combinations are allowed.
// @Tags         Configuration
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.DepotConfigRequest} "Current configuration"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - configuration store unreachable"
// @Router       /api/depot-config [get]
func (h *Handler) GetDepotConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cfg, err := h.configs.Get(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, err)
		return
	}

	builder.SuccessOK(dto.DepotConfigRequest{
		Mapping: cfg.Mapping,
		Enabled: cfg.Enabled,
	})
}

// PutDepotConfig handles PUT /api/depot-config requests.
//
// @Summary      Replace the depot-article configuration
// @Description  Replaces the depot to article mapping wholesale. When enabled, calculations only consider order lines whose depot-article combination appears in the mapping.
// @Tags         Configuration
// @Accept       json
// @Produce      json
// @Param        request body dto.DepotConfigRequest true "New configuration"
// @Success      200 {object} dto.SuccessResponse{data=dto.DepotConfigRequest} "Configuration stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - configuration store unreachable"
// @Router       /api/depot-config [put]
func (h *Handler) PutDepotConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.DepotConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.configs.Set(c.Request.Context(), req.Config()); err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable, err)
		return
	}

	builder.SuccessOK(req)
}
