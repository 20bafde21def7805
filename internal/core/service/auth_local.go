package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// LocalAuthenticator verifies logins against the local credential store and
// migrates pre-salted credential formats in place on first success.
type LocalAuthenticator struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	state    ports.AuthStateStore
	log      zerolog.Logger

	// Migrated is bumped whenever a credential is rewritten, keyed by the
	// source format. Optional; left nil in tests.
	Migrated func(fromFormat string)
}

func NewLocalAuthenticator(
	users ports.UserRepository,
	sessions ports.SessionStore,
	state ports.AuthStateStore,
	log zerolog.Logger,
) *LocalAuthenticator {
	return &LocalAuthenticator{users: users, sessions: sessions, state: state, log: log}
}

func (a *LocalAuthenticator) Name() string { return "local" }

// Authenticate looks up an active user, verifies the password against the
// classified credential format and, for pre-migration formats, rewrites the
// record to a fresh per-user salted hash. The migration write is durable
// before success is reported, so a repeated login takes the salted branch.
// A wrong password never mutates the record.
func (a *LocalAuthenticator) Authenticate(ctx context.Context, login, password string) (*ports.LoginResult, error) {
	user, err := a.users.FindActiveByLogin(ctx, login)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	cred := domain.ClassifyCredential(user.Password, user.Salt)
	if !cred.Verify(password) {
		return nil, domain.ErrInvalidCredentials
	}

	if cred.NeedsMigration() {
		salt := domain.GenerateSalt()
		user.Salt = salt
		user.Password = domain.HashPassword(password, salt)
		if err := a.users.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("persist migrated credential: %w", err)
		}
		a.log.Info().
			Str("username", user.Username).
			Str("from_format", cred.Kind.String()).
			Msg("credential migrated to per-user salted hash")
		if a.Migrated != nil {
			a.Migrated(cred.Kind.String())
		}
	}

	token := domain.NewSessionToken()
	if err := a.sessions.Put(ctx, token); err != nil {
		a.log.Warn().Err(err).Msg("failed to store session token")
	}

	redacted := user.Redacted()
	snapshot := domain.AuthState{
		IsAuthenticated: true,
		CurrentUser:     &redacted,
		SessionToken:    token,
	}
	if err := a.state.Set(ctx, snapshot); err != nil {
		a.log.Warn().Err(err).Msg("failed to persist auth state")
	}

	return &ports.LoginResult{User: &redacted, Token: token, Strategy: a.Name()}, nil
}
