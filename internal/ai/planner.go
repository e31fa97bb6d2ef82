// README: Planner service; orchestrates prompt building, retrying execution, extraction and normalization.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// Per-call timeouts. Itinerary generation is the long pole; the
// supplementary lookups get a tighter budget.
const (
	itineraryTimeout = 60 * time.Second
	lookupTimeout    = 30 * time.Second
)

// Cache lifetimes for the supplementary lookups.
const (
	exchangeRateTTL = time.Hour
	eventsTTL       = 6 * time.Hour
)

// Planner is the entry point of the generation pipeline. It holds no
// per-request state; concurrent generations are independent.
type Planner struct {
	gen   Generator
	exec  *Executor
	cache Cache // optional; nil disables lookup caching
}

// NewPlanner wires a Planner. cache may be nil.
func NewPlanner(gen Generator, exec *Executor, cache Cache) *Planner {
	return &Planner{gen: gen, exec: exec, cache: cache}
}

// GenerateItinerary runs the full pipeline for one wizard submission:
// build the request, execute it with retry, recover the JSON draft and
// normalize it. The returned itinerary carries the destination and date
// metadata from the preferences, since the model does not echo them back
// reliably. All unrecovered failures surface as *APIError.
func (p *Planner) GenerateItinerary(ctx context.Context, prefs UserPreferences) (*Itinerary, error) {
	req := BuildItineraryRequest(prefs)

	started := time.Now()
	resp, err := p.exec.Do(ctx, itineraryTimeout, func(ctx context.Context) (*RawResponse, error) {
		return p.gen.Generate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, newAPIError(CodeNoResponse, 500, "No response from AI", nil)
	}
	log.Printf("itinerary generation for %s completed in %.1fs", prefs.DestinationCity, time.Since(started).Seconds())

	it, err := NormalizeItinerary(ExtractJSON(resp.Text, false))
	if err != nil {
		return nil, err
	}

	it.DestinationCity = prefs.DestinationCity
	it.DestinationCountry = prefs.DestinationCountry
	it.StartDate = prefs.StartDate
	it.EndDate = prefs.EndDate
	return it, nil
}

// ExchangeRate fetches a one-line conversion string between the
// traveller's currency and the destination country's local currency.
// It is supplementary: any failure degrades to "" instead of blocking
// the itinerary flow.
func (p *Planner) ExchangeRate(ctx context.Context, fromCurrency, country string) string {
	key := fmt.Sprintf("fx:%s:%s", fromCurrency, country)
	if cached, ok := p.cacheGet(ctx, key); ok {
		return cached
	}

	resp, err := p.exec.Do(ctx, lookupTimeout, func(ctx context.Context) (*RawResponse, error) {
		return p.gen.Generate(ctx, buildExchangeRateRequest(fromCurrency, country))
	})
	if err != nil {
		log.Printf("exchange rate lookup failed: %v", err)
		return ""
	}

	rate := strings.TrimSpace(resp.Text)
	if rate != "" {
		p.cacheSet(ctx, key, rate, exchangeRateTTL)
	}
	return rate
}

// DestinationEvents looks up events happening at the destination within
// the trip window. Best effort: failures and unparseable replies yield
// an empty list.
func (p *Planner) DestinationEvents(ctx context.Context, city, startDate, endDate string) []Event {
	key := fmt.Sprintf("events:%s:%s:%s", city, startDate, endDate)
	if cached, ok := p.cacheGet(ctx, key); ok {
		var events []Event
		if json.Unmarshal([]byte(cached), &events) == nil {
			return events
		}
	}

	resp, err := p.exec.Do(ctx, lookupTimeout, func(ctx context.Context) (*RawResponse, error) {
		return p.gen.Generate(ctx, buildEventsRequest(city, startDate, endDate))
	})
	if err != nil {
		log.Printf("events lookup failed: %v", err)
		return []Event{}
	}

	var events []Event
	if err := json.Unmarshal(ExtractJSON(resp.Text, true), &events); err != nil || events == nil {
		return []Event{}
	}

	if data, err := json.Marshal(events); err == nil {
		p.cacheSet(ctx, key, string(data), eventsTTL)
	}
	return events
}

// ExtraRecommendations finds grounded extra places matching the
// traveller's interests, with the grounding source URLs attached to each
// item. Best effort: failures yield an empty list.
func (p *Planner) ExtraRecommendations(ctx context.Context, city string, interests []string) []Activity {
	resp, err := p.exec.Do(ctx, lookupTimeout, func(ctx context.Context) (*RawResponse, error) {
		return p.gen.Generate(ctx, buildRecommendationsRequest(city, interests))
	})
	if err != nil {
		log.Printf("recommendations lookup failed: %v", err)
		return []Activity{}
	}

	var items []Activity
	if err := json.Unmarshal(ExtractJSON(resp.Text, true), &items); err != nil || items == nil {
		return []Activity{}
	}

	for i := range items {
		items[i].Time = "Flex"
		items[i].SourceURLs = resp.SourceURLs
	}
	return items
}

func (p *Planner) cacheGet(ctx context.Context, key string) (string, bool) {
	if p.cache == nil {
		return "", false
	}
	return p.cache.Get(ctx, key)
}

func (p *Planner) cacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if p.cache != nil {
		p.cache.Set(ctx, key, value, ttl)
	}
}
