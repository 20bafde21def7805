package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

func TestCreateUser_SaltedFromTheStart(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "maria",
		Password: "secret",
		Role:     domain.RoleStaff,
		Name:     "Maria",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.Password != domain.RedactedPassword {
		t.Errorf("returned user must be redacted")
	}

	stored := repo.saved[0]
	if stored.Salt == "" {
		t.Fatalf("new users must get a per-user salt immediately")
	}
	if stored.Password != domain.HashPassword("secret", stored.Salt) {
		t.Errorf("stored password must be the salted digest, never a marker")
	}
	if !stored.IsActive {
		t.Errorf("new users start active")
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo(localUser(domain.MarkerPrefix+"pw", ""))
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "ahmad",
		Password: "pw",
		Role:     domain.RoleViewer,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got: %v", err)
	}
}

func TestCreateUser_RejectsBadInput(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	cases := []ports.CreateUserInput{
		{Username: "", Password: "pw", Role: domain.RoleStaff},
		{Username: "x", Password: "", Role: domain.RoleStaff},
		{Username: "x", Password: "pw", Role: "superuser"},
	}
	for _, in := range cases {
		if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("CreateUser(%+v) = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestListUsers_AlwaysRedacted(t *testing.T) {
	repo := newStubUserRepo(localUser("deadbeef", "salt"))
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, u := range users {
		if u.Password != domain.RedactedPassword || u.Salt != "" {
			t.Errorf("listed user leaks credentials: %+v", u)
		}
	}
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo := newStubUserRepo(localUser(domain.MarkerPrefix+"pw", ""))
	svc := NewUserService(repo, zerolog.Nop())

	inactive := false
	updated, err := svc.UpdateUser(context.Background(), "u1", ports.UpdateUserInput{IsActive: &inactive})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.IsActive {
		t.Errorf("expected user deactivated")
	}
	if updated.Name != "Ahmad" {
		t.Errorf("absent fields must be untouched")
	}
	// The stored credential survives an unrelated update.
	if repo.users["u1"].Password != domain.MarkerPrefix+"pw" {
		t.Errorf("update must not touch the credential")
	}
}

func TestUpdateUser_Unknown(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateUser(context.Background(), "ghost", ports.UpdateUserInput{}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}
