package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/restockd/replenishment-service/internal/domain/model"
	"github.com/restockd/replenishment-service/internal/ingest"
	"github.com/restockd/replenishment-service/internal/middleware"
	"github.com/restockd/replenishment-service/internal/refdata"
	"github.com/restockd/replenishment-service/internal/service"
	"github.com/restockd/replenishment-service/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(memory *store.MemoryStore) *gin.Engine {
	handler := NewHandler(
		service.NewCalculatorService(),
		service.NewAdvisorService(),
		memory,
		memory,
		ingest.NewParser("M210", refdata.Default()),
	)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	api := router.Group("/api")
	registerAPIRoutes(api, handler)
	return router
}

func seedOrders(t *testing.T, memory *store.MemoryStore, lines []model.OrderLine) {
	t.Helper()
	require.NoError(t, memory.SaveOrders(context.Background(), "seed", lines))
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Calculate(t *testing.T) {
	orders := []model.OrderLine{
		{Article: "A100", Depot: "M105", Packaging: "verre", OrderedQuantity: 10, FreeStock: 20, UnitsPerPallet: 50},
		{Article: "A200", Depot: "M105", Packaging: "pet", OrderedQuantity: 5, FreeStock: 0, UnitsPerPallet: 25},
	}

	tests := []struct {
		name           string
		seed           []model.OrderLine
		body           string
		expectedStatus int
		mustContain    []string
	}{
		{
			name:           "computes replenishment lines",
			seed:           orders,
			body:           `{"days": 10}`,
			expectedStatus: http.StatusOK,
			mustContain:    []string{`"article":"A100"`, `"article":"A200"`, `"summary"`},
		},
		{
			name:           "packaging filter narrows the result",
			seed:           orders,
			body:           `{"days": 10, "packaging": ["pet"]}`,
			expectedStatus: http.StatusOK,
			mustContain:    []string{`"article":"A200"`},
		},
		{
			name:           "no order data",
			body:           `{"days": 10}`,
			expectedStatus: http.StatusBadRequest,
			mustContain:    []string{"no_order_data"},
		},
		{
			name:           "filter matching nothing",
			seed:           orders,
			body:           `{"days": 10, "packaging": ["bib"]}`,
			expectedStatus: http.StatusBadRequest,
			mustContain:    []string{"empty_after_filter"},
		},
		{
			name:           "malformed body",
			seed:           orders,
			body:           `{"days": `,
			expectedStatus: http.StatusBadRequest,
			mustContain:    []string{"invalid_request"},
		},
		{
			name:           "negative days",
			seed:           orders,
			body:           `{"days": -1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "production plan entry without article",
			seed:           orders,
			body:           `{"days": 10, "production_plan": [{"quantity": 100}]}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memory := store.NewMemoryStore(4)
			if tt.seed != nil {
				seedOrders(t, memory, tt.seed)
			}
			router := newTestRouter(memory)

			w := postJSON(router, "/api/replenishment/calculate", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}

func TestHandler_Calculate_PackagingFilterExcludesOthers(t *testing.T) {
	memory := store.NewMemoryStore(4)
	seedOrders(t, memory, []model.OrderLine{
		{Article: "A100", Depot: "M105", Packaging: "verre", OrderedQuantity: 10, UnitsPerPallet: 50},
		{Article: "A200", Depot: "M105", Packaging: "pet", OrderedQuantity: 5, UnitsPerPallet: 25},
	})
	router := newTestRouter(memory)

	w := postJSON(router, "/api/replenishment/calculate", `{"days": 10, "packaging": ["pet"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"article":"A100"`)
}

func TestHandler_TruckPlan(t *testing.T) {
	tests := []struct {
		name           string
		seed           []model.OrderLine
		path           string
		expectedStatus int
		mustContain    []string
	}{
		{
			name: "suggests completion for a depot",
			seed: []model.OrderLine{
				{Article: "A100", Depot: "M105", Packaging: "verre", OrderedQuantity: 10, UnitsPerPallet: 50},
			},
			path:           "/api/depots/M105/truck-plan?days=10",
			expectedStatus: http.StatusOK,
			mustContain:    []string{`"depot":"M105"`},
		},
		{
			name: "default days when query omitted",
			seed: []model.OrderLine{
				{Article: "A100", Depot: "M105", Packaging: "verre", OrderedQuantity: 10, UnitsPerPallet: 50},
			},
			path:           "/api/depots/M105/truck-plan",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no order data",
			path:           "/api/depots/M105/truck-plan",
			expectedStatus: http.StatusBadRequest,
			mustContain:    []string{"no_order_data"},
		},
		{
			name: "invalid days query",
			seed: []model.OrderLine{
				{Article: "A100", Depot: "M105", Packaging: "verre", OrderedQuantity: 10, UnitsPerPallet: 50},
			},
			path:           "/api/depots/M105/truck-plan?days=abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memory := store.NewMemoryStore(4)
			if tt.seed != nil {
				seedOrders(t, memory, tt.seed)
			}
			router := newTestRouter(memory)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}

func TestHandler_Export(t *testing.T) {
	memory := store.NewMemoryStore(4)
	seedOrders(t, memory, []model.OrderLine{
		{Article: "A100", Depot: "M105", Packaging: "verre", OrderedQuantity: 10, UnitsPerPallet: 50},
	})
	router := newTestRouter(memory)

	w := postJSON(router, "/api/replenishment/export", `{"days": 10}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	workbook, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer workbook.Close()
	assert.Contains(t, workbook.GetSheetList(), "Réapprovisionnement")
}

func uploadRequest(t *testing.T, path string, rows [][]any) *http.Request {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var workbook bytes.Buffer
	require.NoError(t, f.Write(&workbook))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "upload.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandler_UploadOrders(t *testing.T) {
	memory := store.NewMemoryStore(4)
	router := newTestRouter(memory)

	req := uploadRequest(t, "/api/datasets/orders", [][]any{
		{"Code article", "Division", "Conditionnement", "CQM", "Stock libre", "Unités par palette"},
		{"A100", "M105", "Verre", "120", "40", "50"},
		{"A100", "M210", "Verre", "120", "40", "50"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			SessionID    string `json:"session_id"`
			Dataset      string `json:"dataset"`
			RowsRetained int    `json:"rows_retained"`
			RowsDropped  int    `json:"rows_dropped"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.SessionID)
	assert.Equal(t, "orders", resp.Data.Dataset)
	assert.Equal(t, 1, resp.Data.RowsRetained)
	assert.Equal(t, 1, resp.Data.RowsDropped)

	// The upload is immediately visible to calculations.
	calc := postJSON(router, "/api/replenishment/calculate", `{"days": 10}`)
	assert.Equal(t, http.StatusOK, calc.Code)
	assert.Contains(t, calc.Body.String(), `"article":"A100"`)
}

func TestHandler_UploadCentralStock(t *testing.T) {
	memory := store.NewMemoryStore(4)
	router := newTestRouter(memory)

	req := uploadRequest(t, "/api/datasets/stock", [][]any{
		{"Article", "Division", "Stock disponible"},
		{"A100", "M210", "1000"},
		{"A100", "M105", "50"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"rows_retained":1`)
}

func TestHandler_UploadTransit(t *testing.T) {
	memory := store.NewMemoryStore(4)
	router := newTestRouter(memory)

	req := uploadRequest(t, "/api/datasets/transit", [][]any{
		{"Article", "Origine", "Destination", "Quantité"},
		{"A100", "M210", "M105", "200"},
		{"A100", "M106", "M105", "75"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"rows_retained":1`)
}

func TestHandler_Upload_Errors(t *testing.T) {
	tests := []struct {
		name           string
		buildRequest   func(t *testing.T) *http.Request
		expectedStatus int
	}{
		{
			name: "missing file field",
			buildRequest: func(t *testing.T) *http.Request {
				var body bytes.Buffer
				writer := multipart.NewWriter(&body)
				require.NoError(t, writer.Close())
				req := httptest.NewRequest(http.MethodPost, "/api/datasets/orders", &body)
				req.Header.Set("Content-Type", writer.FormDataContentType())
				return req
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "file is not a workbook",
			buildRequest: func(t *testing.T) *http.Request {
				var body bytes.Buffer
				writer := multipart.NewWriter(&body)
				part, err := writer.CreateFormFile("file", "upload.xlsx")
				require.NoError(t, err)
				fmt.Fprint(part, "not a workbook")
				require.NoError(t, writer.Close())
				req := httptest.NewRequest(http.MethodPost, "/api/datasets/orders", &body)
				req.Header.Set("Content-Type", writer.FormDataContentType())
				return req
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "workbook missing a required column",
			buildRequest: func(t *testing.T) *http.Request {
				return uploadRequest(t, "/api/datasets/orders", [][]any{
					{"Code article", "Division", "CQM", "Unités par palette"},
					{"A100", "M105", "120", "50"},
				})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(store.NewMemoryStore(4))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.buildRequest(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), "invalid_")
		})
	}
}

func TestHandler_DepotConfig(t *testing.T) {
	memory := store.NewMemoryStore(4)
	router := newTestRouter(memory)

	// Default config allows everything.
	req := httptest.NewRequest(http.MethodGet, "/api/depot-config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enabled":false`)

	// Replace it wholesale.
	put := httptest.NewRequest(http.MethodPut, "/api/depot-config",
		strings.NewReader(`{"mapping": {"M105": ["A100"]}, "enabled": true}`))
	put.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, put)
	require.Equal(t, http.StatusOK, w.Code)

	// The new config is returned on the next read.
	req = httptest.NewRequest(http.MethodGet, "/api/depot-config", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enabled":true`)
	assert.Contains(t, w.Body.String(), `"A100"`)
}

func TestHandler_DepotConfig_RestrictsCalculation(t *testing.T) {
	memory := store.NewMemoryStore(4)
	seedOrders(t, memory, []model.OrderLine{
		{Article: "A100", Depot: "M105", Packaging: "verre", OrderedQuantity: 10, UnitsPerPallet: 50},
		{Article: "A200", Depot: "M105", Packaging: "pet", OrderedQuantity: 5, UnitsPerPallet: 25},
	})
	router := newTestRouter(memory)

	put := httptest.NewRequest(http.MethodPut, "/api/depot-config",
		strings.NewReader(`{"mapping": {"M105": ["A100"]}, "enabled": true}`))
	put.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, put)
	require.Equal(t, http.StatusOK, w.Code)

	calc := postJSON(router, "/api/replenishment/calculate", `{"days": 10}`)
	require.Equal(t, http.StatusOK, calc.Code)
	assert.Contains(t, calc.Body.String(), `"article":"A100"`)
	assert.NotContains(t, calc.Body.String(), `"article":"A200"`)
}
