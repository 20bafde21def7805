package ports

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// UserRepository defines persistence for the local user collection.
// List seeds one default administrator record when the collection is empty.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindActiveByLogin matches an active user by exact username, then by
	// email. Returns domain.ErrUserNotFound when nothing matches.
	FindActiveByLogin(ctx context.Context, login string) (*domain.User, error)
	// Save upserts by ID.
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, users []domain.User) error
}

// SessionStore keeps the single opaque session token, in a namespace separate
// from the rest of the application data.
type SessionStore interface {
	Put(ctx context.Context, token string) error
	// Current returns the stored token, or "" when none is set.
	Current(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// AuthStateStore persists the redacted "current user" snapshot.
type AuthStateStore interface {
	Get(ctx context.Context) (domain.AuthState, error)
	Set(ctx context.Context, state domain.AuthState) error
}

// RemoteDirectory is the hosted backend-as-a-service the authenticator
// delegates to before trying the local credential store. On success it
// returns the remote user view and a bearer token of its own scheme.
type RemoteDirectory interface {
	Authenticate(ctx context.Context, login, password string) (*domain.User, string, error)
}
