package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// AuthStateStore persists the redacted "current user" snapshot under the
// auth key, and the UI theme under its own key.
type AuthStateStore struct {
	kv  ports.KV
	log zerolog.Logger
}

func NewAuthStateStore(kv ports.KV, log zerolog.Logger) *AuthStateStore {
	return &AuthStateStore{kv: kv, log: log}
}

// Get returns the snapshot, degrading to "not authenticated" when the key is
// missing or unreadable.
func (s *AuthStateStore) Get(ctx context.Context) (domain.AuthState, error) {
	state := domain.AuthState{IsAuthenticated: false, CurrentUser: nil}
	if err := s.kv.Get(ctx, keyAuth, &state); err != nil {
		s.log.Warn().Err(err).Msg("auth state unavailable; treating as logged out")
	}
	return state, nil
}

func (s *AuthStateStore) Set(ctx context.Context, state domain.AuthState) error {
	return s.kv.Set(ctx, keyAuth, state)
}

// ThemeStore keeps the UI theme preference ("light" or "dark").
type ThemeStore struct {
	kv ports.KV
}

func NewThemeStore(kv ports.KV) *ThemeStore {
	return &ThemeStore{kv: kv}
}

func (s *ThemeStore) Get(ctx context.Context) string {
	theme := "light"
	_ = s.kv.Get(ctx, keyTheme, &theme)
	if theme != "dark" {
		theme = "light"
	}
	return theme
}

func (s *ThemeStore) Set(ctx context.Context, theme string) error {
	return s.kv.Set(ctx, keyTheme, theme)
}
