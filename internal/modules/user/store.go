// README: User store backed by PostgreSQL.
package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, p *Profile) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (email, name, password, avatar, trips_count, countries_visited)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.Email, p.Name, p.Password, p.Avatar, p.TripsCount, p.CountriesVisited,
	)
	if err != nil && isUniqueViolation(err) {
		return ErrExists
	}
	return err
}

func (s *Store) Get(ctx context.Context, email string) (*Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT email, name, password, avatar, trips_count, countries_visited
		FROM users
		WHERE email = $1`, email,
	)

	var p Profile
	err := row.Scan(&p.Email, &p.Name, &p.Password, &p.Avatar, &p.TripsCount, &p.CountriesVisited)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.CountriesVisited == nil {
		p.CountriesVisited = []string{}
	}
	return &p, nil
}

func (s *Store) GetByEmails(ctx context.Context, emails []string) ([]Profile, error) {
	rows, err := s.db.Query(ctx, `
		SELECT email, name, password, avatar, trips_count, countries_visited
		FROM users
		WHERE email = ANY($1)`, emails,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.Email, &p.Name, &p.Password, &p.Avatar, &p.TripsCount, &p.CountriesVisited); err != nil {
			return nil, err
		}
		if p.CountriesVisited == nil {
			p.CountriesVisited = []string{}
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *Store) UpdateAvatar(ctx context.Context, email, avatar string) error {
	tag, err := s.db.Exec(ctx, `UPDATE users SET avatar = $2 WHERE email = $1`, email, avatar)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// BumpStats increments the trip counter and records the visited country
// (deduplicated in SQL) in one statement.
func (s *Store) BumpStats(ctx context.Context, email, country string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE users
		SET trips_count = trips_count + 1,
		    countries_visited = CASE
		        WHEN $2 = ANY(countries_visited) THEN countries_visited
		        ELSE array_append(countries_visited, $2)
		    END
		WHERE email = $1`, email, country,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	// 23505 = unique_violation
	type sqlState interface{ SQLState() string }
	var st sqlState
	return errors.As(err, &st) && st.SQLState() == "23505"
}
