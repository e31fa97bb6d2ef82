// README: Saved-trip handlers (save/list/get/update).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/ai"
	"wanderplan/internal/modules/trip"
	"wanderplan/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(trips *trip.Service) *TripHandler {
	return &TripHandler{trips: trips}
}

type saveTripReq struct {
	UserEmail     string       `json:"userEmail"`
	OrganizerName string       `json:"organizerName"`
	InvitedEmails []string     `json:"invitedEmails"`
	Itinerary     ai.Itinerary `json:"itinerary"`
}

type updateTripReq struct {
	Data ai.Itinerary `json:"data"`
}

// Save handles POST /api/trips.
func (h *TripHandler) Save(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	saved, err := h.trips.Save(c.Request.Context(), req.UserEmail, req.OrganizerName, req.Itinerary, req.InvitedEmails)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, saved)
}

// List handles GET /api/trips?email=...
func (h *TripHandler) List(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		writeError(c, http.StatusBadRequest, "missing email")
		return
	}
	trips, err := h.trips.ListForUser(c.Request.Context(), email)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, trips)
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	t, err := h.trips.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// Update handles PUT /api/trips/:id.
func (h *TripHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req updateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.trips.Update(c.Request.Context(), types.ID(id), req.Data); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "updated"})
}
