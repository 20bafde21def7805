package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// UserService is the admin surface over the local user collection. Listing
// seeds the default administrator through the repository; records returned to
// callers are always redacted.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Redacted())
	}
	return out, nil
}

func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != domain.RoleAdmin && in.Role != domain.RoleStaff && in.Role != domain.RoleViewer {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if u.Username == in.Username {
			return nil, domain.ErrUserExists
		}
	}

	// New users start on the target credential format directly.
	salt := domain.GenerateSalt()
	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Password:  domain.HashPassword(in.Password, salt),
		Salt:      salt,
		Role:      in.Role,
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user created")

	redacted := user.Redacted()
	return &redacted, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	redacted := user.Redacted()
	return &redacted, nil
}

// DeleteUser removes the record from the collection outright; there is no
// tombstone.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
