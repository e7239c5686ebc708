package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/restockd/replenishment-service/internal/domain/dto"
	"github.com/restockd/replenishment-service/internal/i18n"
	"github.com/restockd/replenishment-service/internal/ingest"
	"github.com/restockd/replenishment-service/internal/metrics"
)

// Dataset type labels used in routes, metrics and upload responses.
const (
	DatasetOrders       = "orders"
	DatasetCentralStock = "stock"
	DatasetTransit      = "transit"
)

// UploadOrders handles POST /api/datasets/orders requests.
//
// @Summary      Upload the order dataset
// @Description  Accepts an .xlsx workbook of depot order lines as multipart form data under the "file" field. Rows are cleaned on ingest: central warehouse rows, unknown depots, rows without article or packaging and rows without a positive units-per-pallet value are dropped. The upload replaces the previous order dataset.
// @Tags         Datasets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Order workbook (.xlsx)"
// @Success      201 {object} dto.SuccessResponse{data=dto.UploadResponse} "Upload stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing file or unreadable workbook"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - dataset store unreachable"
// @Router       /api/datasets/orders [post]
func (h *Handler) UploadOrders(c *gin.Context) {
	h.upload(c, DatasetOrders, func(c *gin.Context, r io.Reader, sessionID string) (ingest.Result, error) {
		lines, res, err := h.parser.ParseOrders(r)
		if err != nil {
			return res, err
		}
		return res, h.datasets.SaveOrders(c.Request.Context(), sessionID, lines)
	})
}

// UploadCentralStock handles POST /api/datasets/stock requests.
//
// @Summary      Upload the central stock dataset
// @Description  Accepts an .xlsx workbook of central warehouse stock as multipart form data under the "file" field. Only rows for the central warehouse are retained. The upload replaces the previous stock dataset.
// @Tags         Datasets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Central stock workbook (.xlsx)"
// @Success      201 {object} dto.SuccessResponse{data=dto.UploadResponse} "Upload stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing file or unreadable workbook"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - dataset store unreachable"
// @Router       /api/datasets/stock [post]
func (h *Handler) UploadCentralStock(c *gin.Context) {
	h.upload(c, DatasetCentralStock, func(c *gin.Context, r io.Reader, sessionID string) (ingest.Result, error) {
		entries, res, err := h.parser.ParseCentralStock(r)
		if err != nil {
			return res, err
		}
		return res, h.datasets.SaveCentralStock(c.Request.Context(), sessionID, entries)
	})
}

// UploadTransit handles POST /api/datasets/transit requests.
//
// @Summary      Upload the in-transit dataset
// @Description  Accepts an .xlsx workbook of in-transit quantities as multipart form data under the "file" field. Only rows originating from the central warehouse are retained. The upload replaces the previous transit dataset.
// @Tags         Datasets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "In-transit workbook (.xlsx)"
// @Success      201 {object} dto.SuccessResponse{data=dto.UploadResponse} "Upload stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing file or unreadable workbook"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - dataset store unreachable"
// @Router       /api/datasets/transit [post]
func (h *Handler) UploadTransit(c *gin.Context) {
	h.upload(c, DatasetTransit, func(c *gin.Context, r io.Reader, sessionID string) (ingest.Result, error) {
		entries, res, err := h.parser.ParseTransit(r)
		if err != nil {
			return res, err
		}
		return res, h.datasets.SaveTransit(c.Request.Context(), sessionID, entries)
	})
}

func (h *Handler) upload(c *gin.Context, dataset string, ingestFn func(*gin.Context, io.Reader, string) (ingest.Result, error)) {
	builder := NewResponseBuilder(c)

	file, err := h.openUploadedFile(c)
	if err != nil {
		metrics.RecordUpload(dataset, metrics.StatusError, 0)
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidUpload, err)
		return
	}
	defer file.Close()

	sessionID := uuid.New().String()

	res, err := ingestFn(c, file, sessionID)
	if err != nil {
		metrics.RecordUpload(dataset, metrics.StatusError, 0)
		builder.DomainError(err)
		return
	}

	metrics.RecordUpload(dataset, metrics.StatusSuccess, res.Retained)
	builder.SuccessCreated(dto.UploadResponse{
		SessionID:    sessionID,
		Dataset:      dataset,
		RowsRetained: res.Retained,
		RowsDropped:  res.Dropped,
	})
}

func (h *Handler) openUploadedFile(c *gin.Context) (multipart.File, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	return header.Open()
}
