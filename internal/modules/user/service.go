// README: User account service (mock auth: plain-credential compare by design).
package user

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrExists             = errors.New("user already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadRequest         = errors.New("invalid request")
	ErrAvatarTooLarge     = errors.New("avatar exceeds 500KB limit")
)

// Service orchestrates account logic over the store.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Register creates a new profile. Email is the account key.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Profile, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, ErrBadRequest
	}

	p := &Profile{
		Email:            email,
		Name:             name,
		Password:         password,
		TripsCount:       0,
		CountriesVisited: []string{},
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Login checks credentials with a plain compare, matching the app's
// stored-as-entered password model.
func (s *Service) Login(ctx context.Context, email, password string) (*Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	p, err := s.store.Get(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if p.Password != password {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, email string) (*Profile, error) {
	return s.store.Get(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// GetByEmails resolves the profiles of trip invitees.
func (s *Service) GetByEmails(ctx context.Context, emails []string) ([]Profile, error) {
	lowered := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			lowered = append(lowered, e)
		}
	}
	if len(lowered) == 0 {
		return []Profile{}, nil
	}
	return s.store.GetByEmails(ctx, lowered)
}

// UpdateAvatar stores a base64-encoded image, rejecting oversize uploads.
func (s *Service) UpdateAvatar(ctx context.Context, email, avatarBase64 string) (*Profile, error) {
	if len(avatarBase64) > MaxAvatarSize {
		return nil, ErrAvatarTooLarge
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.store.UpdateAvatar(ctx, email, avatarBase64); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, email)
}

// RecordTrip bumps the user's stats after a trip is saved.
func (s *Service) RecordTrip(ctx context.Context, email, country string) error {
	return s.store.BumpStats(ctx, strings.ToLower(strings.TrimSpace(email)), country)
}
