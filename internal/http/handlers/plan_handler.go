// README: Planning handlers (itinerary generation and supplementary lookups).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/ai"
)

type PlanHandler struct {
	planner *ai.Planner
}

func NewPlanHandler(planner *ai.Planner) *PlanHandler {
	return &PlanHandler{planner: planner}
}

// GenerateItinerary handles POST /api/plan/itinerary. The request body is
// the wizard's preference payload; the response is the normalized
// itinerary with destination/date metadata stamped from the request.
func (h *PlanHandler) GenerateItinerary(c *gin.Context) {
	var prefs ai.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(prefs.DestinationCity) == "" || prefs.StartDate == "" || prefs.EndDate == "" {
		writeError(c, http.StatusBadRequest, "missing destination or dates")
		return
	}

	it, err := h.planner.GenerateItinerary(c.Request.Context(), prefs)
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}

// ExchangeRate handles GET /api/plan/exchange-rate?currency=USD&country=Nigeria.
// Best effort: a failed lookup is an empty rate, never an error status.
func (h *PlanHandler) ExchangeRate(c *gin.Context) {
	currency := strings.TrimSpace(c.Query("currency"))
	country := strings.TrimSpace(c.Query("country"))
	if currency == "" || country == "" {
		writeError(c, http.StatusBadRequest, "missing currency or country")
		return
	}
	rate := h.planner.ExchangeRate(c.Request.Context(), currency, country)
	writeJSON(c, http.StatusOK, gin.H{"rate": rate})
}

// Events handles GET /api/plan/events?city=...&start=...&end=...
// Best effort: failures yield an empty list.
func (h *PlanHandler) Events(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	start := strings.TrimSpace(c.Query("start"))
	end := strings.TrimSpace(c.Query("end"))
	if city == "" || start == "" || end == "" {
		writeError(c, http.StatusBadRequest, "missing city or date range")
		return
	}
	events := h.planner.DestinationEvents(c.Request.Context(), city, start, end)
	writeJSON(c, http.StatusOK, events)
}

type recommendationsReq struct {
	City      string   `json:"city"`
	Interests []string `json:"interests"`
}

// Recommendations handles POST /api/plan/recommendations.
func (h *PlanHandler) Recommendations(c *gin.Context) {
	var req recommendationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.City) == "" {
		writeError(c, http.StatusBadRequest, "missing city")
		return
	}
	recs := h.planner.ExtraRecommendations(c.Request.Context(), req.City, req.Interests)
	writeJSON(c, http.StatusOK, recs)
}
