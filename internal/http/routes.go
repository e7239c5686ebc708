package http

import (
	"github.com/gin-gonic/gin"
)

// registerAPIRoutes wires the replenishment endpoints under the /api group.
func registerAPIRoutes(api *gin.RouterGroup, handler *Handler) {
	if handler == nil {
		return
	}

	datasets := api.Group("/datasets")
	{
		datasets.POST("/orders", handler.UploadOrders)
		datasets.POST("/stock", handler.UploadCentralStock)
		datasets.POST("/transit", handler.UploadTransit)
	}

	replenishment := api.Group("/replenishment")
	{
		replenishment.POST("/calculate", handler.Calculate)
		replenishment.POST("/export", handler.Export)
	}

	api.GET("/depots/:depot/truck-plan", handler.TruckPlan)

	api.GET("/depot-config", handler.GetDepotConfig)
	api.PUT("/depot-config", handler.PutDepotConfig)
}
