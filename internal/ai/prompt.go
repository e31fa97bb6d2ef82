// README: Builds the natural-language generation requests (itinerary, exchange rate, events, recommendations).
package ai

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// GenerationModel is the model every pipeline request targets.
const GenerationModel = "gemini-2.5-flash"

const dateLayout = "2006-01-02"

// TripDuration returns the trip length in whole days, counting both
// endpoints: ceil(|end-start|) + 1, never less than 1. Unparseable dates
// collapse to a single-day trip.
func TripDuration(startDate, endDate string) int {
	start, err1 := time.Parse(dateLayout, startDate)
	end, err2 := time.Parse(dateLayout, endDate)
	if err1 != nil || err2 != nil {
		return 1
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// BuildItineraryRequest turns validated preferences into one generation
// request carrying the full prompt and output-schema contract. Pure; it
// never fails on pre-validated preferences.
func BuildItineraryRequest(p UserPreferences) GenerationRequest {
	days := TripDuration(p.StartDate, p.EndDate)

	accommodation := "No, I have a place."
	if p.NeedsAccommodation {
		accommodation = "Yes, please suggest 5-6 options within the budget. Focus on Hotels or known Apart-hotels."
	}

	prompt := fmt.Sprintf(`Create a detailed, personalized travel itinerary for %s.

Destination: %s, %s.
Dates: From %s to %s (%d days).
Travel Party: %s (Tailor activities for this group size/dynamic).
Travel Style/Time: %s.
Interests: %s.

Budget Details:
- Total Budget: %s %s
- Flexibility: %s

Needs Accommodation: %s

Requirements:
1. Organize the itinerary logically by location to minimize travel time between spots.
2. %s
3. Include specific entry fees or note if free. Try to estimate costs in %s if possible, or USD.
4. Provide specific cultural tips for %s.
5. Ensure the tone is exciting and helpful.
6. Populate the 'date' field in dailyItinerary corresponding to the actual calendar dates.
7. INCLUDE GOOGLE MAPS RATINGS (e.g., 4.5, 4.8) for every location based on general knowledge.
8. Local Transportation: Provide specific advice on how to get around. Mention specific names of local transport (e.g. Keke, Boda Boda, TukTuk, Subway) and ride-hailing apps (Uber, Bolt, Grab) if available.

IMPORTANT RULES FOR FINANCIALS:
- Assess the budget intuitively: %s %s for %d days. If this seems high, suggest luxury. If low, suggest budget friendly.
- %s
- Provide practical payment advice in 'localCurrency' field. KEEP IT EXTREMELY SHORT (max 6 words). Focus only on Cash vs Card (e.g. "Cash is King", "Cards widely accepted").
- Do NOT quote specific exchange rates.
- Do NOT state the currency name, just the practical advice.

CRITICAL INSTRUCTION FOR LOCATIONS (VERIFY STATUS):
- USE GOOGLE SEARCH to check the status of every place you suggest.
- DO NOT recommend places that are "Permanently Closed" or "Temporarily Closed".
- Suggest SPECIFIC, REAL places. Prioritize modern, contemporary, and trending spots alongside classics.
- For meals, you MUST provide a specific, real restaurant name. Do NOT use generic phrases like "Lunch at a local eatery".

CRITICAL INSTRUCTION FOR COPYWRITING:
- tripName: Must be SHORT and PUNCHY. Max 6 words. No long sentences.
- summary: Must be SHORT. Max 2 sentences. An elevator pitch of the trip vibe.

OUTPUT FORMAT:
Return strictly a valid JSON object matching this structure. Do NOT add markdown code blocks.
{
  "tripName": "string (Max 6 words)",
  "summary": "string (Max 2 sentences)",
  "localCurrency": "string (max 6 words advice)",
  "localTransportation": "string (advice on getting around)",
  "weatherExpectation": "string",
  "localEtiquette": ["string", "string"],
  "packingList": ["string", "string"],
  "accommodationRecommendations": [
    { "name": "string", "type": "string", "estimatedCost": "string", "reason": "string", "rating": number }
  ],
  "dailyItinerary": [
    {
      "dayNumber": number,
      "date": "string",
      "theme": "string",
      "activities": [
        { "time": "string", "activity": "string", "location": "string", "cost": "string", "description": "string", "rating": number, "type": "string" }
      ]
    }
  ]
}
Ratings are on a 1-5 scale.`,
		p.Name,
		p.DestinationCity, p.DestinationCountry,
		p.StartDate, p.EndDate, days,
		p.TravelParty,
		p.TimePreference,
		strings.Join(p.Interests, ", "),
		p.TotalBudget, p.Currency,
		budgetInstruction(p.BudgetFlexibility),
		accommodation,
		timeInstruction(p.TimePreference),
		p.Currency,
		p.DestinationCountry,
		p.TotalBudget, p.Currency, days,
		budgetInstruction(p.BudgetFlexibility),
	)

	return GenerationRequest{
		Model:     GenerationModel,
		Prompt:    prompt,
		UseSearch: true,
	}
}

// budgetInstruction encodes the flexibility rule: a strict budget is a
// hard ceiling, a flexible one permits moderate overages.
func budgetInstruction(f BudgetFlexibility) string {
	if f == BudgetStrict {
		return "Strict: ensure every activity and recommendation stays within the budget limit."
	}
	return "Flexible: you can suggest slightly pricier options if they are worth it."
}

// timeInstruction shapes the day around the traveller's preferred hours.
// The balanced preference adds no special instruction.
func timeInstruction(t TimePreference) string {
	switch t {
	case TimeMorning:
		return "Respect the Time Preference: start early (e.g., 7-8 AM), wind down by 8-9 PM."
	case TimeEvening:
		return "Respect the Time Preference: start later (e.g., 11 AM), include nightlife/clubs/late dinners."
	default:
		return "Respect the Time Preference: standard touring hours."
	}
}

// buildExchangeRateRequest asks for a one-line conversion string between
// the traveller's currency and the destination country's local currency.
func buildExchangeRateRequest(fromCurrency, country string) GenerationRequest {
	prompt := fmt.Sprintf(`Using Google Search, find the CURRENT real-time exchange rate between %s and the local currency of %s.
If they are the same currency, return "Same Currency".

STRICT OUTPUT FORMAT:
Return ONLY the conversion string.
Example: "1 %s ~ 1,600 NGN"

DO NOT write sentences like "The current rate is...".
DO NOT mention the full currency name.
Just the math.`, fromCurrency, country, fromCurrency)

	return GenerationRequest{Model: GenerationModel, Prompt: prompt, UseSearch: true}
}

// buildEventsRequest asks for upcoming events at the destination within
// the trip's date window, as a raw JSON array.
func buildEventsRequest(city, startDate, endDate string) GenerationRequest {
	prompt := fmt.Sprintf(`Search for upcoming events, concerts, festivals, art exhibitions, or special nightlife events happening in %s specifically between %s and %s.

Return a raw JSON array of objects with this structure (no markdown):
[
  {
    "name": "Event Name",
    "date": "Date and Time",
    "location": "Venue",
    "description": "Very short description",
    "link": "URL to event page or ticket site if available"
  }
]
If no specific events are found, return generic recurring events (e.g. "Weekly Jazz Night at X").`,
		city, startDate, endDate)

	return GenerationRequest{Model: GenerationModel, Prompt: prompt, UseSearch: true}
}

// buildRecommendationsRequest asks for grounded extra places matching the
// traveller's interests.
func buildRecommendationsRequest(city string, interests []string) GenerationRequest {
	prompt := fmt.Sprintf(`Using Google Search, find 5 real, highly-rated places in %s that match these interests: %s.
Focus on specific venues, parks, museums, or restaurants that are currently popular or "hidden gems".

Return a raw JSON array (no markdown formatting, no code blocks) of objects with this structure:
[
  {
    "activity": "Name of place",
    "description": "Short compelling description (max 1 sentence)",
    "rating": 4.5,
    "cost": "Entry fee or price range",
    "location": "Address or neighborhood",
    "type": "Attraction"
  }
]`, city, strings.Join(interests, ", "))

	return GenerationRequest{Model: GenerationModel, Prompt: prompt, UseSearch: true}
}
