package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// AuthService tries an ordered list of authentication strategies and manages
// the local session lifecycle. The chain is remote-first, local-second: any
// remote failure falls through to the local credential store.
type AuthService struct {
	strategies []ports.Authenticator
	users      ports.UserRepository
	sessions   ports.SessionStore
	state      ports.AuthStateStore
	log        zerolog.Logger
}

func NewAuthService(
	strategies []ports.Authenticator,
	users ports.UserRepository,
	sessions ports.SessionStore,
	state ports.AuthStateStore,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		strategies: strategies,
		users:      users,
		sessions:   sessions,
		state:      state,
		log:        log,
	}
}

// Login walks the strategy chain and returns the first success. Every
// strategy gets exactly one attempt; no retries.
func (s *AuthService) Login(ctx context.Context, login, password string) (*ports.LoginResult, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	for _, strat := range s.strategies {
		res, err := strat.Authenticate(ctx, login, password)
		if err == nil {
			s.log.Info().Str("strategy", strat.Name()).Str("login", login).Msg("login succeeded")
			return res, nil
		}
		s.log.Debug().Err(err).Str("strategy", strat.Name()).Str("login", login).Msg("strategy failed")
	}

	return nil, domain.ErrInvalidCredentials
}

// Logout clears the session token and resets the auth snapshot. Safe to call
// when already logged out; store failures degrade to a warning.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session token")
	}
	if err := s.state.Set(ctx, domain.AuthState{IsAuthenticated: false, CurrentUser: nil}); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset auth state")
	}
	return nil
}

// ChangePassword always generates a fresh salt and stores the new salted hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	salt := domain.GenerateSalt()
	user.Salt = salt
	user.Password = domain.HashPassword(newPassword, salt)

	if err := s.users.Save(ctx, user); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}
