package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Request-shape validation runs before any usecase is touched, so these
// handlers can be exercised with nil collaborators.

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSlots_RejectsMalformedDate(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/api/availability/slots", h.Slots)

	for _, q := range []string{"", "date=01-06-2025", "date=2025/06/01", "date=2025-6-1", "date=tomorrow"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/availability/slots?"+q, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%q: expected 400, got %d", q, w.Code)
		}
		if !strings.Contains(w.Body.String(), "invalid_date") {
			t.Fatalf("%q: expected invalid_date code, got %s", q, w.Body.String())
		}
	}
}

func TestCreateRule_RejectsMissingFields(t *testing.T) {
	h := NewAvailabilityHandler(nil, nil, nil, nil, nil)
	r := gin.New()
	r.POST("/api/availability/rules", h.CreateRule)

	cases := []string{
		`{}`,
		`{"specificDate":"2025-06-01","startTime":"09:00","endTime":"12:00"}`,
		`{"specificDate":"2025-06-01","startTime":"09:00","endTime":"12:00","slotIntervalMinutes":0}`,
		`{"specificDate":"2025-06-01","startTime":"09:00","endTime":"12:00","slotIntervalMinutes":-30}`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/availability/rules", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
	}
}
