// README: Shallow validation/repair of extracted itinerary drafts.
package ai

import (
	"encoding/json"
	"errors"
)

// itineraryDraft defers the collections that tolerate malformed input.
type itineraryDraft struct {
	TripName                     string          `json:"tripName"`
	Summary                      string          `json:"summary"`
	LocalCurrency                string          `json:"localCurrency"`
	LocalTransportation          string          `json:"localTransportation"`
	WeatherExpectation           string          `json:"weatherExpectation"`
	LocalEtiquette               json.RawMessage `json:"localEtiquette"`
	PackingList                  json.RawMessage `json:"packingList"`
	AccommodationRecommendations []Accommodation `json:"accommodationRecommendations"`
	DailyItinerary               json.RawMessage `json:"dailyItinerary"`
}

type dayDraft struct {
	DayNumber  int             `json:"dayNumber"`
	Date       string          `json:"date"`
	Theme      string          `json:"theme"`
	Activities json.RawMessage `json:"activities"`
}

// NormalizeItinerary validates a draft recovered by ExtractJSON against
// the itinerary shape. dailyItinerary is the one required field: a draft
// that is not an object, or whose dailyItinerary is missing or not an
// array, is rejected; degenerate elements inside the array drop out
// individually. The optional collections (localEtiquette,
// packingList, each day's activities) default to empty when missing or
// malformed. Normalization is deliberately shallow: a field-level type
// mismatch inside a day (say, a string dayNumber) does not reject the
// draft; the misshapen field simply keeps its zero value.
func NormalizeItinerary(draft json.RawMessage) (*Itinerary, error) {
	var d itineraryDraft
	if err := json.Unmarshal(draft, &d); err != nil && !isFieldTypeError(err) {
		return nil, newAPIError(CodeInvalidResponse, 500, "Invalid response format from API", err)
	}

	if d.DailyItinerary == nil {
		return nil, newAPIError(CodeMissingItinerary, 500, "Response missing daily itinerary", nil)
	}
	var rawDays []json.RawMessage
	if err := json.Unmarshal(d.DailyItinerary, &rawDays); err != nil || rawDays == nil {
		// Not an array (or "null"); only the array shape itself is required.
		return nil, newAPIError(CodeMissingItinerary, 500, "Response missing daily itinerary", err)
	}

	// Decode days one by one so a single degenerate element (say, a bare
	// string in the array) drops only itself, not its well-formed siblings.
	days := make([]dayDraft, 0, len(rawDays))
	for _, raw := range rawDays {
		var day dayDraft
		if err := json.Unmarshal(raw, &day); err != nil && !isFieldTypeError(err) {
			continue
		}
		days = append(days, day)
	}

	it := &Itinerary{
		TripName:                     d.TripName,
		Summary:                      d.Summary,
		LocalCurrency:                d.LocalCurrency,
		LocalTransportation:          d.LocalTransportation,
		WeatherExpectation:           d.WeatherExpectation,
		LocalEtiquette:               stringsOrEmpty(d.LocalEtiquette),
		PackingList:                  stringsOrEmpty(d.PackingList),
		AccommodationRecommendations: d.AccommodationRecommendations,
		DailyItinerary:               make([]DayPlan, 0, len(days)),
	}

	for _, day := range days {
		it.DailyItinerary = append(it.DailyItinerary, DayPlan{
			DayNumber:  day.DayNumber,
			Date:       day.Date,
			Theme:      day.Theme,
			Activities: activitiesOrEmpty(day.Activities),
		})
	}
	return it, nil
}

// isFieldTypeError reports whether err is a type mismatch on a named
// field, which shallow normalization tolerates. A mismatch at the top
// level (Field == "") means the value itself has the wrong shape.
func isFieldTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr) && typeErr.Field != ""
}

func stringsOrEmpty(raw json.RawMessage) []string {
	var out []string
	if raw == nil || json.Unmarshal(raw, &out) != nil || out == nil {
		return []string{}
	}
	return out
}

func activitiesOrEmpty(raw json.RawMessage) []Activity {
	var out []Activity
	if raw == nil {
		return []Activity{}
	}
	if err := json.Unmarshal(raw, &out); err != nil && !isFieldTypeError(err) {
		return []Activity{}
	}
	if out == nil {
		return []Activity{}
	}
	return out
}
