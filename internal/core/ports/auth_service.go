package ports

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// LoginResult is returned on a successful authentication. User is always
// redacted. Token is the bearer credential for subsequent requests: an opaque
// session token from the local strategy, or the remote service's own token.
type LoginResult struct {
	User     *domain.User
	Token    string
	Strategy string
}

// Authenticator is a single authentication strategy. Strategies are tried in
// order; the first success wins. Any error means "this strategy failed", and
// the chain moves on.
type Authenticator interface {
	Name() string
	Authenticate(ctx context.Context, login, password string) (*LoginResult, error)
}

// AuthService is the use-case surface for login and account management.
type AuthService interface {
	Login(ctx context.Context, login, password string) (*LoginResult, error)
	// Logout clears the session token and auth snapshot. Idempotent.
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, userID, newPassword string) error
}

// UserService manages the local user collection (admin surface).
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// CreateUserInput carries the fields for a new local user.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
	Name     string
	Email    string
}

// UpdateUserInput carries mutable user fields; nil pointers are left as is.
type UpdateUserInput struct {
	Role     *string
	Name     *string
	Email    *string
	IsActive *bool
}
