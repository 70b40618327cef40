package service

import (
	"context"
	"errors"
	"sync"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Key-value stubs
// ---------------------------------------------------------------------------

type stubKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newStubKV() *stubKV { return &stubKV{data: map[string]string{}} }

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.data[key] = value
	return nil
}

func (s *stubKV) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

type stubStores struct {
	mu       sync.Mutex
	sessions map[string]*stubKV
	profiles map[string]*stubKV
}

func newStubStores() *stubStores {
	return &stubStores{sessions: map[string]*stubKV{}, profiles: map[string]*stubKV{}}
}

func (s *stubStores) Session(id string) ports.KeyValueStore { return s.session(id) }

func (s *stubStores) Profile(owner string) ports.KeyValueStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.profiles[owner]
	if !ok {
		kv = newStubKV()
		s.profiles[owner] = kv
	}
	return kv
}

func (s *stubStores) session(id string) *stubKV {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.sessions[id]
	if !ok {
		kv = newStubKV()
		s.sessions[id] = kv
	}
	return kv
}

// withToken returns stores whose session sid already holds an upstream token.
func withToken(sid string) *stubStores {
	st := newStubStores()
	st.session(sid).data[domain.KeyToken] = "upstream-token"
	return st
}

// ---------------------------------------------------------------------------
// Commute API stub
// ---------------------------------------------------------------------------

var errUpstream = errors.New("upstream said no")

type stubAPI struct {
	mu sync.Mutex

	loginPair *ports.TokenPair
	loginErr  error

	employees     []domain.Employee
	employeesErr  error
	enrollments   []domain.EnrollmentRecord
	enrollmentErr error

	createRec *domain.EnrollmentRecord
	createErr error
	cancelErr error

	dashboard *domain.EmployeeDashboard
	options   []domain.CommuteOption
	report    *domain.ParticipationReport
	hr        *domain.HRDashboard

	// block, when set, is received from before create/cancel return.
	block chan struct{}

	created  []ports.CreateEnrollmentInput
	canceled []domain.EnrollmentID
	tokens   []string
}

func (a *stubAPI) seen(token string) {
	a.mu.Lock()
	a.tokens = append(a.tokens, token)
	a.mu.Unlock()
}

func (a *stubAPI) Login(_ context.Context, _, _ string) (*ports.TokenPair, error) {
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	return a.loginPair, nil
}

func (a *stubAPI) ListEmployees(_ context.Context, token, department string) ([]domain.Employee, error) {
	a.seen(token)
	if a.employeesErr != nil {
		return nil, a.employeesErr
	}
	if department == "" {
		return a.employees, nil
	}
	var out []domain.Employee
	for _, e := range a.employees {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

func (a *stubAPI) ListEnrollments(_ context.Context, token string, _ domain.EnrollmentStatus) ([]domain.EnrollmentRecord, error) {
	a.seen(token)
	return a.enrollments, a.enrollmentErr
}

func (a *stubAPI) CreateEnrollment(_ context.Context, token string, in ports.CreateEnrollmentInput) (*domain.EnrollmentRecord, error) {
	a.seen(token)
	if a.block != nil {
		<-a.block
	}
	a.mu.Lock()
	a.created = append(a.created, in)
	a.mu.Unlock()
	if a.createErr != nil {
		return nil, a.createErr
	}
	return a.createRec, nil
}

func (a *stubAPI) CancelEnrollment(_ context.Context, token string, id domain.EnrollmentID) (*domain.EnrollmentRecord, error) {
	a.seen(token)
	if a.block != nil {
		<-a.block
	}
	a.mu.Lock()
	a.canceled = append(a.canceled, id)
	a.mu.Unlock()
	if a.cancelErr != nil {
		return nil, a.cancelErr
	}
	return &domain.EnrollmentRecord{ID: id, Status: domain.EnrollmentCanceled}, nil
}

func (a *stubAPI) ParticipationReport(context.Context, string) (*domain.ParticipationReport, error) {
	if a.report == nil {
		return nil, errUpstream
	}
	r := *a.report
	return &r, nil
}

func (a *stubAPI) HRDashboard(context.Context, string) (*domain.HRDashboard, error) {
	if a.hr == nil {
		return nil, errUpstream
	}
	return a.hr, nil
}

func (a *stubAPI) ListOptions(context.Context, string) ([]domain.CommuteOption, error) {
	return a.options, nil
}

func (a *stubAPI) Lobby(context.Context, string) (*domain.Lobby, error) {
	return &domain.Lobby{OfficeName: "Toronto HQ"}, nil
}

func (a *stubAPI) StartSession(context.Context, string) (*domain.QuestSession, error) {
	return &domain.QuestSession{ID: 7, Status: domain.QuestInProgress}, nil
}

func (a *stubAPI) FinishSession(_ context.Context, _ string, id int64) (*domain.QuestSession, error) {
	return &domain.QuestSession{ID: id, Status: domain.QuestCompleted, Points: 10}, nil
}

func (a *stubAPI) EmployeeDashboard(context.Context, string) (*domain.EmployeeDashboard, error) {
	if a.dashboard == nil {
		return nil, errUpstream
	}
	return a.dashboard, nil
}

func (a *stubAPI) SelectOption(_ context.Context, _ string, option domain.OptionID) (*domain.SelectedOption, error) {
	return &domain.SelectedOption{EmployeeID: 1, SelectedOptionID: option, SessionID: 3}, nil
}

// ---------------------------------------------------------------------------
// Recorder stub
// ---------------------------------------------------------------------------

type stubRecorder struct {
	mu      sync.Mutex
	actions []domain.EnrollmentAction
}

func (r *stubRecorder) Record(a domain.EnrollmentAction) {
	r.mu.Lock()
	r.actions = append(r.actions, a)
	r.mu.Unlock()
}

func (r *stubRecorder) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.actions))
	for _, a := range r.actions {
		out = append(out, string(a.Kind)+":"+string(a.Outcome))
	}
	return out
}

func roster(ids ...domain.EmployeeID) []domain.Employee {
	out := make([]domain.Employee, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Employee{ID: id, Name: "Employee", Email: "e@example.com", Department: "Ops"})
	}
	return out
}

func activeRecord(id domain.EnrollmentID, employee domain.EmployeeID) domain.EnrollmentRecord {
	return domain.EnrollmentRecord{ID: id, Employee: domain.RefTo(employee), Status: domain.EnrollmentActive, Option: 1}
}
