package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret")
	token, err := ts.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	id, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if id.Email != "a@x.com" {
		t.Fatalf("unexpected email: %q", id.Email)
	}
	if got := id.ExpiresAt.Sub(id.IssuedAt); got != TokenLifetime {
		t.Fatalf("unexpected token lifetime: %v", got)
	}
}

func TestVerifyGarbledToken(t *testing.T) {
	ts := NewTokenService("test-secret")
	if _, err := ts.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenService("other-secret").Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := NewTokenService("test-secret").Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": "a@x.com",
		"iat":   now.Add(-2 * time.Hour).Unix(),
		"exp":   now.Add(-time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	if _, err := NewTokenService("test-secret").Verify(raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyTokenWithoutEmail(t *testing.T) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	if _, err := NewTokenService("test-secret").Verify(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
