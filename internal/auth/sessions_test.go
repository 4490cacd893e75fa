package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Establish("user-1")
	if err != nil {
		t.Fatalf("establish: %v", err)
	}

	userID, err := m.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("validate returned %q, want user-1", userID)
	}

	m.Invalidate(token)
	if _, err := m.Validate(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("validate after logout = %v, want ErrUnauthenticated", err)
	}

	// Logout is idempotent.
	m.Invalidate(token)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.Validate(token); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("validate %q = %v, want ErrUnauthenticated", token, err)
		}
	}
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Establish("user-1")
	if err != nil {
		t.Fatalf("establish: %v", err)
	}
	if _, err := verifier.Validate(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("foreign token = %v, want ErrUnauthenticated", err)
	}
}

func TestValidateRejectsExpiredSession(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Establish("user-1")
	if err != nil {
		t.Fatalf("establish: %v", err)
	}
	if _, err := m.Validate(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expired token = %v, want ErrUnauthenticated", err)
	}

	// Expired tokens can still log out without error.
	m.Invalidate(token)
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	first, err := m.Establish("user-1")
	if err != nil {
		t.Fatalf("establish first: %v", err)
	}
	second, err := m.Establish("user-1")
	if err != nil {
		t.Fatalf("establish second: %v", err)
	}

	m.Invalidate(first)

	if _, err := m.Validate(first); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("first session after logout = %v, want ErrUnauthenticated", err)
	}
	if userID, err := m.Validate(second); err != nil || userID != "user-1" {
		t.Fatalf("second session = (%q, %v), want (user-1, nil)", userID, err)
	}
}
