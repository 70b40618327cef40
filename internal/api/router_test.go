package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/http/handlers"
)

const testSecret = "router-secret"

type routerSessions struct{}

func (routerSessions) Login(context.Context, string, string, string) (*ports.LoginResult, error) {
	return nil, domain.ErrInvalidCredentials
}

func (routerSessions) Logout(context.Context, string) error { return nil }

func (routerSessions) Token(context.Context, string) (string, error) { return "tok", nil }

type routerConsole struct{}

func (routerConsole) Roster(context.Context, ports.RosterQuery) (*ports.RosterResult, error) {
	return &ports.RosterResult{}, nil
}

func (routerConsole) Enroll(context.Context, domain.EmployeeID) (*ports.ActionResult, error) {
	return nil, domain.ErrActionInProgress
}

func (routerConsole) Cancel(_ context.Context, id domain.EmployeeID) (*ports.ActionResult, error) {
	return &ports.ActionResult{EmployeeID: id, Skipped: true}, nil
}

func (routerConsole) Pool(context.Context) []domain.EmployeeID { return nil }

func (routerConsole) JoinPool(_ context.Context, id domain.EmployeeID) []domain.EmployeeID {
	return []domain.EmployeeID{id}
}

func (routerConsole) LeavePool(context.Context, domain.EmployeeID) ([]domain.EmployeeID, error) {
	return nil, domain.ErrNotPoolMember
}

type routerConsoles struct{}

func (routerConsoles) Get(string, string) ports.Console { return routerConsole{} }

func (routerConsoles) Drop(string) {}

type routerReports struct{}

func (routerReports) Participation(context.Context, string) (*domain.ParticipationReport, error) {
	return &domain.ParticipationReport{}, nil
}

func (routerReports) HRDashboard(context.Context, string) (*domain.HRDashboard, error) {
	return nil, domain.ErrForbidden
}

type routerPlay struct{}

func (routerPlay) Lobby(context.Context, string) (*domain.Lobby, error) { return &domain.Lobby{}, nil }

func (routerPlay) Today(context.Context, string) (*ports.TodayView, error) {
	return &ports.TodayView{}, nil
}

func (routerPlay) Select(context.Context, string, domain.OptionID) (*domain.SelectedOption, error) {
	return &domain.SelectedOption{}, nil
}

func (routerPlay) StartQuest(context.Context, string) (*domain.QuestSession, error) {
	return &domain.QuestSession{}, nil
}

func (routerPlay) FinishQuest(context.Context, string, int64) (*domain.QuestSession, error) {
	return &domain.QuestSession{}, nil
}

func (routerPlay) Rewards(context.Context, string) (*ports.RewardsView, error) {
	return &ports.RewardsView{}, nil
}

func newTestRouter(t *testing.T, readiness map[string]handlers.Pinger) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewRouter(Deps{
		Log:        zerolog.Nop(),
		JWTSecret:  testSecret,
		Sessions:   routerSessions{},
		Consoles:   routerConsoles{},
		Reports:    routerReports{},
		Play:       routerPlay{},
		Readiness:  readiness,
		Registerer: reg,
		Gatherer:   reg,
	})
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":      "sess-1",
		"username": "alice",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return "Bearer " + s
}

func serve(h http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t, nil)
	admin := bearer(t, domain.RoleAdmin)
	commuter := bearer(t, domain.RoleCommuter)

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		body   string
		want   int
	}{
		{"liveness", http.MethodGet, "/health", "", "", http.StatusOK},
		{"readiness without deps", http.MethodGet, "/health/ready", "", "", http.StatusOK},
		{"login rejected", http.MethodPost, "/auth/login", "", `{"username":"a","password":"b","mode":"admin"}`, http.StatusUnauthorized},
		{"logout needs token", http.MethodPost, "/auth/logout", "", "", http.StatusUnauthorized},
		{"logout", http.MethodPost, "/auth/logout", commuter, "", http.StatusNoContent},
		{"roster without token", http.MethodGet, "/v1/employees", "", "", http.StatusUnauthorized},
		{"roster as commuter", http.MethodGet, "/v1/employees", commuter, "", http.StatusForbidden},
		{"roster as admin", http.MethodGet, "/v1/employees", admin, "", http.StatusOK},
		{"enroll in progress", http.MethodPost, "/v1/employees/3/enroll", admin, "", http.StatusConflict},
		{"enroll bad id", http.MethodPost, "/v1/employees/zero/enroll", admin, "", http.StatusBadRequest},
		{"cancel skipped", http.MethodPost, "/v1/employees/3/cancel", admin, "", http.StatusOK},
		{"pool join", http.MethodPut, "/v1/pool/3", admin, "", http.StatusOK},
		{"pool leave non member", http.MethodDelete, "/v1/pool/3", admin, "", http.StatusNotFound},
		{"hr dashboard forbidden upstream", http.MethodGet, "/v1/hr/dashboard", admin, "", http.StatusForbidden},
		{"play as admin", http.MethodGet, "/v1/play/today", admin, "", http.StatusForbidden},
		{"play as commuter", http.MethodGet, "/v1/play/today", commuter, "", http.StatusOK},
		{"select", http.MethodPost, "/v1/play/select", commuter, `{"option_id":2}`, http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", "", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(r, tc.method, tc.path, tc.auth, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_ReadinessDegraded(t *testing.T) {
	r := newTestRouter(t, map[string]handlers.Pinger{
		"redis":       handlers.PingFunc(func(context.Context) error { return nil }),
		"commute_api": handlers.PingFunc(func(context.Context) error { return domain.ErrUpstream }),
		"mongo":       nil,
	})

	rec := serve(r, http.MethodGet, "/health/ready", "", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("nil pinger should be skipped: %s", rec.Body.String())
	}
}

func TestRouter_MetricsExposeRequests(t *testing.T) {
	r := newTestRouter(t, nil)
	_ = serve(r, http.MethodGet, "/v1/employees", bearer(t, domain.RoleAdmin), "")

	rec := serve(r, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "commute_requests_total") {
		t.Fatalf("http metrics missing from /metrics")
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := serve(r, http.MethodGet, "/swagger/doc.json", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/v1/employees") {
		t.Fatalf("swagger doc missing routes")
	}
}
