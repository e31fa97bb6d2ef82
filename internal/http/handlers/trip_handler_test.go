// README: Handler tests for saved-trip request validation.
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/http/handlers"
	"wanderplan/internal/modules/trip"
)

// buildTripRouter wires the trip handler over trip.NewService(nil, nil);
// validation rejects every request here before the store is touched.
func buildTripRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewTripHandler(trip.NewService(nil, nil))
	r.POST("/api/trips", h.Save)
	r.GET("/api/trips", h.List)
	r.GET("/api/trips/:id", h.Get)
	r.PUT("/api/trips/:id", h.Update)
	return r
}

func TestSaveTrip_MissingEmail(t *testing.T) {
	r := buildTripRouter()
	w := doRequest(r, http.MethodPost, "/api/trips", map[string]any{
		"organizerName": "Adeola",
		"itinerary": map[string]any{
			"tripName":       "Lagos Long Weekend",
			"dailyItinerary": []map[string]any{{"dayNumber": 1, "theme": "Arrival", "activities": []any{}}},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSaveTrip_MissingItinerary(t *testing.T) {
	r := buildTripRouter()
	w := doRequest(r, http.MethodPost, "/api/trips", map[string]any{
		"userEmail":     "adeola@example.com",
		"organizerName": "Adeola",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListTrips_MissingEmail(t *testing.T) {
	r := buildTripRouter()
	w := doRequest(r, http.MethodGet, "/api/trips", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetTrip_InvalidID(t *testing.T) {
	r := buildTripRouter()
	w := doRequest(r, http.MethodGet, "/api/trips/not-a-real-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateTrip_InvalidID(t *testing.T) {
	r := buildTripRouter()
	w := doRequest(r, http.MethodPut, "/api/trips/XYZ", map[string]any{"data": map[string]any{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
