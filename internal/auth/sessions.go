// Package auth binds opaque session tokens to user identities and gates
// mutating requests. Tokens are HS256 JWTs whose jti must also exist in a
// server-side session table, so logout genuinely invalidates a token
// instead of waiting out its expiry.
package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthenticated is returned when no valid session backs a request.
var ErrUnauthenticated = errors.New("authentication required")

type session struct {
	userID    string
	expiresAt time.Time
}

// Manager issues, validates and invalidates sessions.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]session // keyed by token jti
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

// Establish creates a session for the user and returns the signed token.
func (m *Manager) Establish(userID string) (string, error) {
	sid := uuid.NewString()
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ID:        sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	m.mu.Lock()
	m.pruneLocked(now)
	m.sessions[sid] = session{userID: userID, expiresAt: expiresAt}
	m.mu.Unlock()

	return signed, nil
}

// Validate returns the user id behind the token, or ErrUnauthenticated if
// the signature, expiry, or server-side session entry does not hold.
func (m *Manager) Validate(tokenString string) (string, error) {
	claims, err := m.parse(tokenString, true)
	if err != nil {
		return "", ErrUnauthenticated
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[claims.ID]
	if !ok {
		return "", ErrUnauthenticated
	}
	if time.Now().After(sess.expiresAt) {
		delete(m.sessions, claims.ID)
		return "", ErrUnauthenticated
	}
	return sess.userID, nil
}

// Invalidate destroys the session behind the token. Invalidating an
// unknown, malformed, or already-expired token is not an error.
func (m *Manager) Invalidate(tokenString string) {
	// Expired tokens must still be able to log out.
	claims, err := m.parse(tokenString, false)
	if err != nil {
		return
	}

	m.mu.Lock()
	delete(m.sessions, claims.ID)
	m.mu.Unlock()
}

func (m *Manager) parse(tokenString string, validateClaims bool) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if !validateClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

// pruneLocked drops expired sessions; called with m.mu held.
func (m *Manager) pruneLocked(now time.Time) {
	for sid, sess := range m.sessions {
		if now.After(sess.expiresAt) {
			delete(m.sessions, sid)
		}
	}
}
