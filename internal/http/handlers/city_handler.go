// README: Destination city autocomplete handler.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/maps"
)

// CitySearcher is the slice of the maps service the handler needs.
type CitySearcher interface {
	Search(ctx context.Context, query, country string, maxResults int) ([]maps.City, error)
}

type CityHandler struct {
	cities CitySearcher
}

func NewCityHandler(cities CitySearcher) *CityHandler {
	return &CityHandler{cities: cities}
}

// Search handles GET /api/cities/search?q=...&country=...
// Autocomplete is a convenience: failures degrade to an empty list.
func (h *CityHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	country := strings.TrimSpace(c.Query("country"))

	if h.cities == nil {
		writeJSON(c, http.StatusOK, []maps.City{})
		return
	}
	cities, err := h.cities.Search(c.Request.Context(), query, country, 15)
	if err != nil {
		log.Printf("city search failed: %v", err)
		writeJSON(c, http.StatusOK, []maps.City{})
		return
	}
	writeJSON(c, http.StatusOK, cities)
}
