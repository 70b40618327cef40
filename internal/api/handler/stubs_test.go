package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

type stubSessionService struct {
	loginFn  func(ctx context.Context, username, password, mode string) (*ports.LoginResult, error)
	logoutFn func(ctx context.Context, sessionID string) error
}

func (s *stubSessionService) Login(ctx context.Context, username, password, mode string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password, mode)
}

func (s *stubSessionService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubSessionService) Token(context.Context, string) (string, error) { return "tok", nil }

type stubConsole struct {
	rosterFn func(q ports.RosterQuery) (*ports.RosterResult, error)
	enrollFn func(id domain.EmployeeID) (*ports.ActionResult, error)
	cancelFn func(id domain.EmployeeID) (*ports.ActionResult, error)
	members  []domain.EmployeeID
	leaveErr error
}

func (s *stubConsole) Roster(_ context.Context, q ports.RosterQuery) (*ports.RosterResult, error) {
	return s.rosterFn(q)
}

func (s *stubConsole) Enroll(_ context.Context, id domain.EmployeeID) (*ports.ActionResult, error) {
	return s.enrollFn(id)
}

func (s *stubConsole) Cancel(_ context.Context, id domain.EmployeeID) (*ports.ActionResult, error) {
	return s.cancelFn(id)
}

func (s *stubConsole) Pool(context.Context) []domain.EmployeeID { return s.members }

func (s *stubConsole) JoinPool(_ context.Context, id domain.EmployeeID) []domain.EmployeeID {
	s.members = append(s.members, id)
	return s.members
}

func (s *stubConsole) LeavePool(_ context.Context, id domain.EmployeeID) ([]domain.EmployeeID, error) {
	if s.leaveErr != nil {
		return nil, s.leaveErr
	}
	out := s.members[:0]
	for _, m := range s.members {
		if m != id {
			out = append(out, m)
		}
	}
	s.members = out
	return out, nil
}

// stubConsoles hands out one console and remembers who asked for it.
type stubConsoles struct {
	console   *stubConsole
	sessionID string
	actor     string
}

func (s *stubConsoles) Get(sessionID, actor string) ports.Console {
	s.sessionID, s.actor = sessionID, actor
	return s.console
}

func (s *stubConsoles) Drop(string) {}

type stubPlayService struct {
	selectFn func(option domain.OptionID) (*domain.SelectedOption, error)
	finishFn func(questID int64) (*domain.QuestSession, error)
	today    *ports.TodayView
	rewards  *ports.RewardsView
}

func (s *stubPlayService) Lobby(context.Context, string) (*domain.Lobby, error) {
	return &domain.Lobby{OfficeName: "Toronto HQ"}, nil
}

func (s *stubPlayService) Today(context.Context, string) (*ports.TodayView, error) {
	return s.today, nil
}

func (s *stubPlayService) Select(_ context.Context, _ string, option domain.OptionID) (*domain.SelectedOption, error) {
	return s.selectFn(option)
}

func (s *stubPlayService) StartQuest(context.Context, string) (*domain.QuestSession, error) {
	return &domain.QuestSession{ID: 1, Status: domain.QuestInProgress}, nil
}

func (s *stubPlayService) FinishQuest(_ context.Context, _ string, questID int64) (*domain.QuestSession, error) {
	return s.finishFn(questID)
}

func (s *stubPlayService) Rewards(context.Context, string) (*ports.RewardsView, error) {
	return s.rewards, nil
}

// newContext builds an echo context carrying the claims the Auth middleware
// would have set.
func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("sid", "sess-1")
	c.Set("username", "admin")
	return c, rec
}
