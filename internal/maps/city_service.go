// README: Destination city autocomplete via Google Places text search.
package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// City is one autocomplete candidate for the wizard's destination step.
type City struct {
	Name    string
	Address string
	PlaceID string
}

// CityService handles interactions with the Google Places API.
type CityService struct {
	client *maps.Client
}

// NewCityService creates a CityService with the given API key.
func NewCityService(apiKey string) (*CityService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &CityService{client: client}, nil
}

// Search finds cities matching the query, optionally scoped to a
// country. Results are capped at maxResults; a short query returns
// nothing rather than spamming the API.
func (s *CityService) Search(ctx context.Context, query, country string, maxResults int) ([]City, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []City{}, nil
	}
	if maxResults <= 0 {
		maxResults = 15
	}

	fullQuery := query
	if country != "" {
		fullQuery = fmt.Sprintf("%s, %s", query, country)
	}

	r := &maps.TextSearchRequest{
		Query: fullQuery,
		Type:  "locality",
	}
	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	seen := make(map[string]struct{})
	cities := make([]City, 0, maxResults)
	for _, result := range resp.Results {
		if _, ok := seen[result.Name]; ok {
			continue
		}
		seen[result.Name] = struct{}{}
		cities = append(cities, City{
			Name:    result.Name,
			Address: result.FormattedAddress,
			PlaceID: result.PlaceID,
		})
		if len(cities) >= maxResults {
			break
		}
	}
	return cities, nil
}
