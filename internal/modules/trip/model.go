// README: Saved trip model (itinerary payload plus sharing metadata).
package trip

import (
	"time"

	"wanderplan/internal/ai"
	"wanderplan/internal/types"
)

// SavedTrip is one stored itinerary, owned by a user and optionally
// shared with invited emails. The itinerary payload is kept as the AI
// pipeline produced it (plus the stamped metadata).
type SavedTrip struct {
	ID            types.ID     `json:"id"`
	UserEmail     string       `json:"userEmail"`
	OrganizerName string       `json:"organizerName,omitempty"`
	InvitedEmails []string     `json:"invitedEmails,omitempty"`
	TripName      string       `json:"tripName"`
	City          string       `json:"city"`
	Country       string       `json:"country"`
	StartDate     string       `json:"startDate"`
	CreatedAt     time.Time    `json:"createdAt"`
	Data          ai.Itinerary `json:"data"`
}
