// README: Trip store backed by PostgreSQL (itinerary payload as JSONB).
package trip

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wanderplan/internal/ai"
	"wanderplan/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *SavedTrip) error {
	data, err := json.Marshal(t.Data)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO trips (id, user_email, organizer_name, invited_emails, trip_name, city, country, start_date, created_at, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(t.ID), t.UserEmail, t.OrganizerName, t.InvitedEmails,
		t.TripName, t.City, t.Country, t.StartDate, t.CreatedAt, data,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*SavedTrip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_email, organizer_name, invited_emails, trip_name, city, country, start_date, created_at, data
		FROM trips
		WHERE id = $1`, string(id),
	)
	return scanTrip(row)
}

// ListForUser returns trips the user owns or is invited to, newest first.
func (s *Store) ListForUser(ctx context.Context, email string) ([]SavedTrip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_email, organizer_name, invited_emails, trip_name, city, country, start_date, created_at, data
		FROM trips
		WHERE user_email = $1 OR $1 = ANY(invited_emails)
		ORDER BY created_at DESC, id`, email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []SavedTrip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *t)
	}
	return trips, rows.Err()
}

// UpdateData replaces the itinerary payload of an existing trip.
func (s *Store) UpdateData(ctx context.Context, id types.ID, data ai.Itinerary) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `UPDATE trips SET data = $2 WHERE id = $1`, string(id), payload)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTrip(row pgx.Row) (*SavedTrip, error) {
	var t SavedTrip
	var id string
	var data []byte
	err := row.Scan(&id, &t.UserEmail, &t.OrganizerName, &t.InvitedEmails,
		&t.TripName, &t.City, &t.Country, &t.StartDate, &t.CreatedAt, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.ID = types.ID(id)
	if err := json.Unmarshal(data, &t.Data); err != nil {
		return nil, err
	}
	return &t, nil
}
