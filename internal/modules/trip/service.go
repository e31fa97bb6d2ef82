// README: Trip service; saving stamps ownership metadata and bumps user stats.
package trip

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wanderplan/internal/ai"
	"wanderplan/internal/types"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("invalid request")
)

// UserStats is the slice of the user module the trip service needs.
type UserStats interface {
	RecordTrip(ctx context.Context, email, country string) error
}

type Service struct {
	store *Store
	users UserStats
}

func NewService(store *Store, users UserStats) *Service {
	return &Service{store: store, users: users}
}

// Save persists a generated itinerary for the owner, newest first in
// listings. The owner's trip stats are updated best-effort: a stats
// failure does not lose the saved trip.
func (s *Service) Save(ctx context.Context, userEmail, organizerName string, itinerary ai.Itinerary, invitedEmails []string) (*SavedTrip, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	if userEmail == "" || itinerary.DailyItinerary == nil {
		return nil, ErrBadRequest
	}

	city := itinerary.DestinationCity
	if city == "" {
		city = "Unknown"
	}
	country := itinerary.DestinationCountry
	if country == "" {
		country = "Unknown"
	}
	startDate := itinerary.StartDate
	if startDate == "" {
		startDate = time.Now().UTC().Format("2006-01-02")
	}

	t := &SavedTrip{
		ID:            types.NewID(),
		UserEmail:     userEmail,
		OrganizerName: organizerName,
		InvitedEmails: normalizeEmails(invitedEmails),
		TripName:      itinerary.TripName,
		City:          city,
		Country:       country,
		StartDate:     startDate,
		CreatedAt:     time.Now().UTC(),
		Data:          itinerary,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}

	if s.users != nil {
		if err := s.users.RecordTrip(ctx, userEmail, country); err != nil {
			log.Printf("trip stats update failed for %s: %v", userEmail, err)
		}
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*SavedTrip, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, email string) ([]SavedTrip, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListForUser(ctx, email)
}

// Update replaces the itinerary payload (e.g. after the user edits
// activities in the dashboard).
func (s *Service) Update(ctx context.Context, id types.ID, data ai.Itinerary) error {
	if data.DailyItinerary == nil {
		return ErrBadRequest
	}
	return s.store.UpdateData(ctx, id, data)
}

func normalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			out = append(out, e)
		}
	}
	return out
}
