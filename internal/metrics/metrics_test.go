package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordCalculation(t *testing.T) {
	before := testutil.ToFloat64(CalculationsTotal.WithLabelValues(StatusSuccess))

	RecordCalculation(100*time.Millisecond, StatusSuccess)
	RecordCalculation(50*time.Millisecond, StatusError)

	after := testutil.ToFloat64(CalculationsTotal.WithLabelValues(StatusSuccess))
	assert.Equal(t, before+1, after)
}

func TestRecordTruckPlan(t *testing.T) {
	before := testutil.ToFloat64(TruckPlansTotal.WithLabelValues(StatusError))

	RecordTruckPlan(StatusError)

	after := testutil.ToFloat64(TruckPlansTotal.WithLabelValues(StatusError))
	assert.Equal(t, before+1, after)
}

func TestRecordUpload(t *testing.T) {
	RecordUpload("orders", StatusSuccess, 120)
	assert.Equal(t, 120.0, testutil.ToFloat64(DatasetRowsRetained.WithLabelValues("orders")))

	// Failed uploads must not touch the retained-rows gauge.
	RecordUpload("orders", StatusError, 0)
	assert.Equal(t, 120.0, testutil.ToFloat64(DatasetRowsRetained.WithLabelValues("orders")))
}
