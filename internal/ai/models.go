// README: Data shapes shared by the AI planning pipeline (requests, responses, itineraries).
package ai

// TimePreference describes the pace of day the traveller wants.
type TimePreference string

const (
	TimeMorning  TimePreference = "Morning Bird (Start early, relax evening)"
	TimeEvening  TimePreference = "Night Owl (Start late, enjoy nightlife)"
	TimeBalanced TimePreference = "Balanced (Standard 9-5 touring)"
)

// BudgetFlexibility controls how hard the budget ceiling is.
type BudgetFlexibility string

const (
	BudgetStrict   BudgetFlexibility = "Strict"
	BudgetFlexible BudgetFlexibility = "Flexible"
)

// UserPreferences is the validated output of the wizard form.
// Dates are ISO strings (YYYY-MM-DD); validation happens at the HTTP layer.
type UserPreferences struct {
	Name               string            `json:"name"`
	TravelParty        string            `json:"travelParty"` // Solo | Couple | Family | Friends
	DestinationCountry string            `json:"destinationCountry"`
	DestinationCity    string            `json:"destinationCity"`
	StartDate          string            `json:"startDate"`
	EndDate            string            `json:"endDate"`
	TimePreference     TimePreference    `json:"timePreference"`
	Interests          []string          `json:"interests"`
	NeedsAccommodation bool              `json:"needsAccommodation"`
	Currency           string            `json:"currency"`
	TotalBudget        string            `json:"totalBudget"`
	BudgetFlexibility  BudgetFlexibility `json:"budgetFlexibility"`
}

// GenerationRequest is one fully-built call to the generation service.
// Immutable once built; never persisted.
type GenerationRequest struct {
	Model     string
	Prompt    string
	UseSearch bool
}

// RawResponse is the text payload of one generation call plus any
// grounding source URIs the service cited. Lives only within one call.
type RawResponse struct {
	Text       string
	SourceURLs []string
}

// Activity is a single itinerary entry within a day.
type Activity struct {
	Time        string   `json:"time"`
	Activity    string   `json:"activity"`
	Location    string   `json:"location"`
	Cost        string   `json:"cost"` // e.g. "Free", "$20 entry"
	Description string   `json:"description"`
	Rating      float64  `json:"rating,omitempty"` // 1-5 scale
	Type        string   `json:"type,omitempty"`   // Food | Attraction | Relaxation | Adventure
	SourceURLs  []string `json:"sourceUrls,omitempty"`
}

// DayPlan groups the activities of one calendar day.
type DayPlan struct {
	DayNumber  int        `json:"dayNumber"`
	Date       string     `json:"date,omitempty"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// Accommodation is one lodging recommendation.
type Accommodation struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	EstimatedCost string  `json:"estimatedCost"`
	Reason        string  `json:"reason"`
	Rating        float64 `json:"rating,omitempty"`
}

// Event is one upcoming happening at the destination.
type Event struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Itinerary is the final artifact handed back to the caller. The
// destination and date metadata are stamped from the preferences after
// generation; the model does not echo them back reliably.
type Itinerary struct {
	ID                 string `json:"id,omitempty"`
	DestinationCity    string `json:"destinationCity,omitempty"`
	DestinationCountry string `json:"destinationCountry,omitempty"`
	StartDate          string `json:"startDate,omitempty"`
	EndDate            string `json:"endDate,omitempty"`

	TripName                     string          `json:"tripName"`
	Summary                      string          `json:"summary"`
	LocalCurrency                string          `json:"localCurrency"`
	LocalTransportation          string          `json:"localTransportation"`
	WeatherExpectation           string          `json:"weatherExpectation"`
	LocalEtiquette               []string        `json:"localEtiquette"`
	PackingList                  []string        `json:"packingList"`
	AccommodationRecommendations []Accommodation `json:"accommodationRecommendations,omitempty"`
	DailyItinerary               []DayPlan       `json:"dailyItinerary"`
}
