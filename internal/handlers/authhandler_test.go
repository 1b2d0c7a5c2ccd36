package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jobnest/jobnest/internal/auth"
	"github.com/jobnest/jobnest/internal/config"
)

func authRouter(cfg *config.Config) (*gin.Engine, *auth.TokenService) {
	gin.SetMode(gin.TestMode)
	ts := auth.NewTokenService(cfg.JWTSecret)
	h := NewAuthHandler(ts, cfg)
	r := gin.New()
	r.POST("/auth/token", h.IssueToken)
	r.POST("/auth/logout", h.Logout)
	return r, ts
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestIssueTokenSetsVerifiableCookie(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", Environment: "development"}
	r, ts := authRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cookie := sessionCookie(t, w)
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be httpOnly")
	}
	if cookie.Secure {
		t.Fatal("development cookie must not be Secure")
	}
	id, err := ts.Verify(cookie.Value)
	if err != nil {
		t.Fatalf("cookie does not verify: %v", err)
	}
	if id.Email != "a@x.com" {
		t.Fatalf("unexpected identity: %q", id.Email)
	}
}

func TestIssueTokenProductionCookiePosture(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", Environment: "production"}
	r, _ := authRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := sessionCookie(t, w)
	if !cookie.Secure {
		t.Fatal("production cookie must be Secure")
	}
	if cookie.SameSite != http.SameSiteNoneMode {
		t.Fatalf("production cookie must be SameSite=None, got %v", cookie.SameSite)
	}
}

func TestIssueTokenRejectsMissingEmail(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", Environment: "development"}
	r, _ := authRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", Environment: "development"}
	r, _ := authRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := sessionCookie(t, w)
	if cookie.Value != "" {
		t.Fatalf("logout left a token value: %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("logout must expire the cookie, got MaxAge %d", cookie.MaxAge)
	}
}
