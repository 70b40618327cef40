package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/api/metrics"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// SessionService implements login and logout against the commute API.
type SessionService struct {
	api        ports.CommuteAPI
	stores     ports.KeyValueStores
	consoles   ports.Consoles
	jwtSecret  string
	sessionTTL time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

func NewSessionService(
	api ports.CommuteAPI,
	stores ports.KeyValueStores,
	consoles ports.Consoles,
	jwtSecret string,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *SessionService {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &SessionService{
		api:        api,
		stores:     stores,
		consoles:   consoles,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        log,
		now:        time.Now,
	}
}

var _ ports.SessionService = (*SessionService)(nil)

// Login exchanges credentials for an upstream token, opens a session that
// holds it, and returns a signed session JWT. The session expires with the
// upstream token when that comes first.
func (s *SessionService) Login(ctx context.Context, username, password, mode string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidMode(mode) {
		return nil, domain.ErrInvalidMode
	}

	pair, err := s.api.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			metrics.LoginsTotal.WithLabelValues(mode, "rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues(mode, "error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.sessionTTL)
	if exp, ok := upstreamExpiry(pair.Access); ok && exp.Before(expiresAt) && exp.After(now) {
		expiresAt = exp
	}

	sess := domain.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Mode:      mode,
		ExpiresAt: expiresAt,
	}

	kv := s.stores.Session(sess.ID)
	for _, kvp := range [][2]string{
		{domain.KeyToken, pair.Access},
		{domain.KeyMode, mode},
		{domain.KeyUsername, username},
		{domain.KeyExpiresAt, strconv.FormatInt(expiresAt.Unix(), 10)},
	} {
		if err := kv.Set(ctx, kvp[0], kvp[1]); err != nil {
			metrics.LoginsTotal.WithLabelValues(mode, "error").Inc()
			return nil, fmt.Errorf("login: persist session: %w", err)
		}
	}

	token, err := s.generateToken(sess)
	if err != nil {
		return nil, fmt.Errorf("login: sign session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(mode, "ok").Inc()
	s.log.Info().Str("session_id", sess.ID).Str("username", username).Str("mode", mode).Msg("session opened")
	return &ports.LoginResult{Token: token, Session: sess}, nil
}

// Logout clears the session keys and drops its console. The actor's
// rewards pool is left in place.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrUnauthorized
	}
	err := s.stores.Session(sessionID).Delete(ctx, domain.KeyToken, domain.KeyMode, domain.KeyUsername, domain.KeyExpiresAt)
	if s.consoles != nil {
		s.consoles.Drop(sessionID)
	}
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

// Token returns the upstream token for sessionID.
func (s *SessionService) Token(ctx context.Context, sessionID string) (string, error) {
	return sessionToken(ctx, s.stores.Session(sessionID))
}

func (s *SessionService) generateToken(sess domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"username": sess.Username,
		"role":     sess.Mode,
		"exp":      sess.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// upstreamExpiry reads the exp claim of the upstream access token. The token
// is not verified here; the commute API remains the authority on it.
func upstreamExpiry(access string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
