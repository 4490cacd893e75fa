package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cinerate/internal/repository"
	"cinerate/internal/repository/memory"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	user, err := svc.Register(ctx, "alice", "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("registered user has no id")
	}
	if user.PasswordHash != "" {
		t.Fatal("register leaked the password hash")
	}

	got, err := svc.Authenticate(ctx, "alice", "correct-horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated as %q, want %q", got.ID, user.ID)
	}
	if got.PasswordHash != "" {
		t.Fatal("authenticate leaked the password hash")
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@example.com", "longenough"},
		{"blank username", "   ", "a@example.com", "longenough"},
		{"empty email", "alice", "", "longenough"},
		{"short password", "alice", "a@example.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tc.username, tc.email, tc.password); !errors.Is(err, ErrValidation) {
				t.Fatalf("register = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register(ctx, "alice", "other@example.com", "correct-horse"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username = %v, want ErrUsernameTaken", err)
	}
	// The rejected account must not have been created under the new email.
	if _, err := repo.GetByEmail(ctx, "other@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("rejected register persisted an account: %v", err)
	}

	if _, err := svc.Register(ctx, "bob", "alice@example.com", "correct-horse"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	if _, err := svc.Register(ctx, "alice", "alice@example.com", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errWrong := svc.Authenticate(ctx, "alice", "wrong-password")
	_, errUnknown := svc.Authenticate(ctx, "mallory", "wrong-password")

	if !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Fatalf("wrong password = %v, want ErrInvalidCredentials", errWrong)
	}
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user = %v, want ErrInvalidCredentials", errUnknown)
	}
	if errWrong.Error() != errUnknown.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrong, errUnknown)
	}

	if _, err := svc.Authenticate(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty credentials = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfilePicture(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Register(ctx, "alice", "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	url := "https://cdn.example.com/alice.png"
	updated, err := svc.UpdateProfilePicture(ctx, user.ID, url)
	if err != nil {
		t.Fatalf("update profile picture: %v", err)
	}
	if updated.ProfilePicture != url {
		t.Fatalf("profile picture = %q, want %q", updated.ProfilePicture, url)
	}
	if updated.PasswordHash != "" {
		t.Fatal("update leaked the password hash")
	}

	// The stored hash survives the update.
	stored, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get stored user: %v", err)
	}
	if !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("stored hash %q does not look like bcrypt", stored.PasswordHash)
	}
}
