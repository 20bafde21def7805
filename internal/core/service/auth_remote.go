package service

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/ports"
)

// RemoteAuthenticator delegates to the hosted directory. It holds no local
// state: the remote service owns its own credential scheme and token format,
// and a remote login leaves the local store untouched.
type RemoteAuthenticator struct {
	directory ports.RemoteDirectory
}

func NewRemoteAuthenticator(directory ports.RemoteDirectory) *RemoteAuthenticator {
	return &RemoteAuthenticator{directory: directory}
}

func (a *RemoteAuthenticator) Name() string { return "remote" }

func (a *RemoteAuthenticator) Authenticate(ctx context.Context, login, password string) (*ports.LoginResult, error) {
	user, token, err := a.directory.Authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}
	redacted := user.Redacted()
	return &ports.LoginResult{User: &redacted, Token: token, Strategy: a.Name()}, nil
}
