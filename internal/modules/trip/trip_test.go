// README: Trip module tests (validation without DB; CRUD behind test DSN).
package trip

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"wanderplan/internal/ai"
	"wanderplan/internal/types"
)

func sampleItinerary() ai.Itinerary {
	return ai.Itinerary{
		DestinationCity:    "Lagos",
		DestinationCountry: "Nigeria",
		StartDate:          "2025-06-01",
		EndDate:            "2025-06-03",
		TripName:           "Ultimate Lagos Weekend",
		Summary:            "Art, food, nightlife.",
		LocalCurrency:      "Cash is King",
		LocalEtiquette:     []string{},
		PackingList:        []string{"Sunscreen"},
		DailyItinerary: []ai.DayPlan{
			{DayNumber: 1, Theme: "Arrival", Activities: []ai.Activity{}},
		},
	}
}

// statsRecorder is a test double for the user-stats dependency.
type statsRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *statsRecorder) RecordTrip(_ context.Context, email, country string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, email+"/"+country)
	return nil
}

func TestSaveValidation(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	if _, err := svc.Save(ctx, "", "Ada", sampleItinerary(), nil); err != ErrBadRequest {
		t.Errorf("empty email err = %v, want ErrBadRequest", err)
	}
	if _, err := svc.Save(ctx, "a@b.com", "Ada", ai.Itinerary{}, nil); err != ErrBadRequest {
		t.Errorf("no days err = %v, want ErrBadRequest", err)
	}
	if err := svc.Update(ctx, "deadbeef", ai.Itinerary{}); err != ErrBadRequest {
		t.Errorf("update without days err = %v, want ErrBadRequest", err)
	}
}

func TestTripLifecycle(t *testing.T) {
	stats := &statsRecorder{}
	svc := NewService(setupTestStore(t), stats)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "Adeola@Example.com", "Adeola", sampleItinerary(), []string{"Friend@Example.com", ""})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("saved trip has no ID")
	}
	if saved.City != "Lagos" || saved.Country != "Nigeria" {
		t.Errorf("metadata = %s/%s", saved.City, saved.Country)
	}
	if len(stats.calls) != 1 || stats.calls[0] != "adeola@example.com/Nigeria" {
		t.Errorf("stats calls = %v", stats.calls)
	}

	got, err := svc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TripName != "Ultimate Lagos Weekend" {
		t.Errorf("TripName = %q", got.TripName)
	}
	if len(got.Data.DailyItinerary) != 1 {
		t.Errorf("payload days = %d, want 1", len(got.Data.DailyItinerary))
	}

	// Owner sees the trip; so does the invitee; a stranger does not.
	for email, want := range map[string]int{
		"adeola@example.com": 1,
		"friend@example.com": 1,
		"nobody@example.com": 0,
	} {
		trips, err := svc.ListForUser(ctx, email)
		if err != nil {
			t.Fatalf("list for %s: %v", email, err)
		}
		if len(trips) != want {
			t.Errorf("list for %s = %d trips, want %d", email, len(trips), want)
		}
	}

	updated := got.Data
	updated.TripName = "Renamed Weekend"
	if err := svc.Update(ctx, saved.ID, updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = svc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Data.TripName != "Renamed Weekend" {
		t.Errorf("updated TripName = %q", got.Data.TripName)
	}

	if _, err := svc.Get(ctx, "ffffffffffffffffffffffffffffffff"); err != ErrNotFound {
		t.Errorf("missing trip err = %v, want ErrNotFound", err)
	}
}

func TestListOrderedNewestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Explicit timestamps: back-to-back saves can land on the same
	// microsecond in Postgres, which would make the ordering a coin flip.
	base := time.Now().UTC().Truncate(time.Second)
	for i, name := range []string{"First", "Second", "Third"} {
		it := sampleItinerary()
		it.TripName = name
		err := store.Create(ctx, &SavedTrip{
			ID:        types.NewID(),
			UserEmail: "a@b.com",
			TripName:  name,
			City:      "Lagos",
			Country:   "Nigeria",
			StartDate: "2025-06-01",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Data:      it,
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	trips, err := store.ListForUser(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("trips = %d, want 3", len(trips))
	}
	for i, want := range []string{"Third", "Second", "First"} {
		if trips[i].TripName != want {
			t.Errorf("position %d = %q, want %q", i, trips[i].TripName, want)
		}
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("WANDERPLAN_TEST_DSN")
	if dsn == "" {
		t.Skip("WANDERPLAN_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS trips (
			id TEXT PRIMARY KEY,
			user_email TEXT NOT NULL,
			organizer_name TEXT NOT NULL DEFAULT '',
			invited_emails TEXT[] NOT NULL DEFAULT '{}',
			trip_name TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			start_date TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			data JSONB NOT NULL
		)`); err != nil {
		t.Fatalf("ensure trips table: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE trips"); err != nil {
		t.Fatalf("truncate trips: %v", err)
	}
	return NewStore(db)
}
