package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// UserStore persists the local user collection under one facade key.
type UserStore struct {
	kv  ports.KV
	log zerolog.Logger
}

func NewUserStore(kv ports.KV, log zerolog.Logger) *UserStore {
	return &UserStore{kv: kv, log: log}
}

// List returns all local users. On the very first call against an empty
// collection it synthesizes the default administrator, persists it, and
// returns it — a marker-format bootstrap record migrated on first login.
// Facade read failures degrade to the empty default and trigger the same
// seeding, so callers always see at least one account.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.kv.Get(ctx, keyUsers, &users); err != nil {
		s.log.Warn().Err(err).Msg("user collection unavailable; using default")
	}
	if len(users) > 0 {
		return users, nil
	}

	admin := defaultAdmin()
	users = []domain.User{admin}
	if err := s.kv.Set(ctx, keyUsers, users); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist seeded admin")
	}
	return users, nil
}

func defaultAdmin() domain.User {
	return domain.User{
		ID:        "admin-1",
		Username:  "admin",
		Password:  domain.MarkerPrefix + "Ehsaan",
		Role:      domain.RoleAdmin,
		Name:      "Administrator",
		Email:     "admin@example.com",
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindActiveByLogin matches by exact username first, then by email.
// Case-sensitive on purpose: that is what existing records expect.
func (s *UserStore) FindActiveByLogin(ctx context.Context, login string) (*domain.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].IsActive && users[i].Username == login {
			u := users[i]
			return &u, nil
		}
	}
	for i := range users {
		if users[i].IsActive && users[i].Email != "" && users[i].Email == login {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Save upserts by ID, rewriting the whole collection.
func (s *UserStore) Save(ctx context.Context, user *domain.User) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *user)
	}
	return s.kv.Set(ctx, keyUsers, users)
}

// Delete removes the record outright; no tombstone.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return s.kv.Set(ctx, keyUsers, kept)
}

func (s *UserStore) ReplaceAll(ctx context.Context, users []domain.User) error {
	return s.kv.Set(ctx, keyUsers, users)
}
