package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := &stubSessionService{
		loginFn: func(_ context.Context, username, password, mode string) (*ports.LoginResult, error) {
			if username != "admin" || password != "pw" || mode != "admin" {
				t.Fatalf("unexpected args: %s %s %s", username, password, mode)
			}
			return &ports.LoginResult{
				Token:   "signed",
				Session: domain.Session{ID: "sess-1", Username: username, Mode: mode, ExpiresAt: expires},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"pw","mode":"admin"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed" || resp["session_id"] != "sess-1" || resp["mode"] != "admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	c, rec := newContext(http.MethodPost, "/auth/login", strings.NewReader(`{`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	c, rec := newContext(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"pw","mode":"root"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "mode must be one of") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_ServiceErrorPropagates(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newContext(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"a","password":"b","mode":"commuter"}`))
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var dropped string
	stub := &stubSessionService{
		logoutFn: func(_ context.Context, sid string) error {
			dropped = sid
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/auth/logout", nil)
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || dropped != "sess-1" {
		t.Fatalf("code=%d dropped=%q", rec.Code, dropped)
	}
}

func TestAuthHandler_Logout_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), httptest.NewRecorder())

	err := h.Logout(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
