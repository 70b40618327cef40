package ports

import (
	"context"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// LoginResult is returned by SessionService.Login.
type LoginResult struct {
	Token   string // signed session JWT for this service
	Session domain.Session
}

// SessionService opens and closes console sessions.
type SessionService interface {
	Login(ctx context.Context, username, password, mode string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	// Token returns the upstream bearer token held by the session.
	Token(ctx context.Context, sessionID string) (string, error)
}
