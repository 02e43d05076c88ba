// Package session carries the caller's round ID between requests in a
// signed cookie. The cookie holds an HS256 JWT; the round state itself
// lives in a store.Store.
package session

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// CookieName is the session cookie.
const CookieName = "vocab_session"

// ErrNoSession is returned when the request carries no valid session.
var ErrNoSession = errors.New("session: none")

// Manager signs and verifies session cookies.
type Manager struct {
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// claims is the token payload.
type claims struct {
	RoundID string `json:"rid"`
	jwt.RegisteredClaims
}

// NewManager derives a signing key from secret. secure marks cookies
// Secure and SameSite=None for cross-site deployments.
func NewManager(secret string, ttl time.Duration, secure bool) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session: empty secret")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte("vocab-session")), key); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return &Manager{key: key, ttl: ttl, secure: secure, now: time.Now}, nil
}

// Sign returns a token naming roundID.
func (m *Manager) Sign(roundID string) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RoundID: roundID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(m.key)
	return ss, exp, err
}

// Verify checks a token and returns its round ID.
func (m *Manager) Verify(token string) (string, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	if c.RoundID == "" {
		return "", ErrNoSession
	}
	return c.RoundID, nil
}

// Set writes the session cookie for roundID.
func (m *Manager) Set(w http.ResponseWriter, roundID string) error {
	tok, exp, err := m.Sign(roundID)
	if err != nil {
		return err
	}
	sameSite := http.SameSiteLaxMode
	if m.secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
	return nil
}

// RoundID extracts the round ID from the request's session cookie.
func (m *Manager) RoundID(r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoSession
	}
	return m.Verify(c.Value)
}
