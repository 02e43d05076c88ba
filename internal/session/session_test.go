package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newManager(t *testing.T, secret string) *Manager {
	t.Helper()
	m, err := NewManager(secret, time.Hour, false)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestSignVerify(t *testing.T) {
	m := newManager(t, "secret")
	tok, exp, err := m.Sign("round-1")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry %v is not in the future", exp)
	}
	id, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != "round-1" {
		t.Fatalf("id = %q", id)
	}
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	tok, _, _ := newManager(t, "one").Sign("round-1")
	if _, err := newManager(t, "two").Verify(tok); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newManager(t, "secret")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, _, _ := m.Sign("round-1")
	m.now = time.Now
	if _, err := m.Verify(tok); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := newManager(t, "secret").Verify("not-a-token"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestEmptySecret(t *testing.T) {
	if _, err := NewManager("", time.Hour, false); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	m := newManager(t, "secret")
	rec := httptest.NewRecorder()
	if err := m.Set(rec, "round-9"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	id, err := m.RoundID(req)
	if err != nil || id != "round-9" {
		t.Fatalf("RoundID = %q, %v", id, err)
	}
}

func TestRoundIDWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := newManager(t, "secret").RoundID(req); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}
