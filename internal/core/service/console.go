package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/api/metrics"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
	"github.com/fleetdemo/commute-benefits/internal/core/reconcile"
)

// ConsoleDeps are the collaborators shared by every console.
type ConsoleDeps struct {
	API      ports.CommuteAPI
	Recorder ports.ActionRecorder
	OptionID domain.OptionID
	Log      zerolog.Logger
	Now      func() time.Time
}

// Console is the enrollment console owned by one session. It holds the last
// active-enrollment snapshot, the overlay of actions completed in this
// session, the in-flight markers and the rewards pool membership.
//
// mu guards snapshot state and is never held across an API call. poolMu
// serializes pool reads and writes against the profile store.
type Console struct {
	deps      ConsoleDeps
	session   ports.KeyValueStore
	pool      *PoolStore
	sessionID string
	actor     string
	log       zerolog.Logger
	// onExpired runs when the session token turns out to be gone.
	onExpired func()

	mu         sync.Mutex
	active     reconcile.ActiveMap
	overlay    reconcile.Overlay
	processing map[domain.EmployeeID]struct{}
	// created holds the ids of enrollments this session created, so a
	// snapshot fetched before the create settled cannot lose them.
	created map[domain.EmployeeID]domain.EnrollmentID

	poolMu  sync.Mutex
	members []domain.EmployeeID
	seeded  bool
}

// NewConsole builds a console over the session store (token) and the
// profile store (rewards pool).
func NewConsole(deps ConsoleDeps, sessionID, actor string, session, profile ports.KeyValueStore) *Console {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	log := deps.Log.With().Str("session_id", sessionID).Str("actor", actor).Logger()
	return &Console{
		deps:       deps,
		session:    session,
		pool:       NewPoolStore(profile, log),
		sessionID:  sessionID,
		actor:      actor,
		log:        log,
		active:     reconcile.ActiveMap{},
		processing: make(map[domain.EmployeeID]struct{}),
		created:    make(map[domain.EmployeeID]domain.EnrollmentID),
	}
}

var _ ports.Console = (*Console)(nil)

// Roster fetches employees and active enrollments and derives each row.
// A failed enrollment fetch keeps the previous snapshot so rows degrade to
// the last known state instead of failing outright.
func (c *Console) Roster(ctx context.Context, q ports.RosterQuery) (*ports.RosterResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := c.deps.API.ListEmployees(ctx, token, q.Department)
	if err != nil {
		return nil, fmt.Errorf("roster: list employees: %w", err)
	}

	records, err := c.deps.API.ListEnrollments(ctx, token, domain.EnrollmentActive)
	if err != nil {
		c.log.Warn().Err(err).Msg("active enrollments unavailable, keeping previous snapshot")
	} else {
		snapshot := reconcile.BuildActiveMap(records)
		c.mu.Lock()
		c.active = c.mergeCreatedLocked(snapshot)
		c.mu.Unlock()
	}

	// Only the full roster may seed the pool.
	if q.Department == "" {
		c.SeedPool(ctx, domain.EmployeeIDs(employees))
	}
	members := c.Pool(ctx)

	c.mu.Lock()
	active, overlay := c.active, c.overlay
	inFlight := make(map[domain.EmployeeID]bool, len(c.processing))
	for id := range c.processing {
		inFlight[id] = true
	}
	c.mu.Unlock()

	res := &ports.RosterResult{Rows: make([]ports.RosterRow, 0, len(employees))}
	for _, e := range employees {
		if !matchesSearch(q.Search, e.Name, e.Email) {
			continue
		}
		enrollmentID, _ := active.Lookup(e.ID)
		row := ports.RosterRow{
			Employee:     e,
			Enrolled:     reconcile.IsEffectivelyEnrolled(e.ID, active, overlay),
			State:        string(reconcile.Resolve(e.ID, active, overlay)),
			EnrollmentID: enrollmentID,
			Processing:   inFlight[e.ID],
			PoolMember:   slices.Contains(members, e.ID),
			AvatarColor:  domain.AvatarColor(e.Name),
		}
		if row.Enrolled {
			res.Enrolled++
		}
		if row.PoolMember {
			res.PoolMembers++
		}
		res.Rows = append(res.Rows, row)
	}
	res.Total = len(res.Rows)
	return res, nil
}

// Enroll creates an active enrollment for employee. On success the overlay
// records it as just enrolled; on failure nothing changes.
func (c *Console) Enroll(ctx context.Context, employee domain.EmployeeID) (*ports.ActionResult, error) {
	if !employee.Valid() {
		return nil, domain.ErrInvalidEmployeeID
	}
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.begin(employee); err != nil {
		return nil, err
	}
	defer c.finish(employee)

	rec, err := c.deps.API.CreateEnrollment(ctx, token, ports.CreateEnrollmentInput{
		Employee: employee,
		Option:   c.deps.OptionID,
		Status:   domain.EnrollmentActive,
	})
	if err != nil {
		c.log.Warn().Err(err).Int64("employee_id", int64(employee)).Msg("enroll rejected")
		c.record(employee, domain.ActionEnroll, domain.OutcomeFailed, 0, err.Error())
		return nil, fmt.Errorf("%w: %w", domain.ErrEnrollFailed, err)
	}

	var enrollmentID domain.EnrollmentID
	if rec != nil {
		enrollmentID = rec.ID
	}

	c.mu.Lock()
	c.overlay = reconcile.RecordEnrollSuccess(employee, c.overlay)
	if enrollmentID != 0 {
		next := make(reconcile.ActiveMap, len(c.active)+1)
		for k, v := range c.active {
			next[k] = v
		}
		next[employee] = enrollmentID
		c.active = next
		c.created[employee] = enrollmentID
	}
	enrolled := reconcile.IsEffectivelyEnrolled(employee, c.active, c.overlay)
	c.mu.Unlock()

	c.record(employee, domain.ActionEnroll, domain.OutcomeSucceeded, enrollmentID, "")
	c.log.Info().Int64("employee_id", int64(employee)).Int64("enrollment_id", int64(enrollmentID)).Msg("employee enrolled")
	return &ports.ActionResult{EmployeeID: employee, EnrollmentID: enrollmentID, Enrolled: enrolled}, nil
}

// Cancel cancels the employee's active enrollment. When the snapshot has no
// active enrollment for employee, or this session already canceled it, the
// API is not contacted and the result is marked Skipped.
func (c *Console) Cancel(ctx context.Context, employee domain.EmployeeID) (*ports.ActionResult, error) {
	if !employee.Valid() {
		return nil, domain.ErrInvalidEmployeeID
	}
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if _, busy := c.processing[employee]; busy {
		c.mu.Unlock()
		return nil, domain.ErrActionInProgress
	}
	enrollmentID, ok := c.active.Lookup(employee)
	if !ok || c.overlay.JustCanceled(employee) {
		enrolled := reconcile.IsEffectivelyEnrolled(employee, c.active, c.overlay)
		c.mu.Unlock()
		c.record(employee, domain.ActionCancel, domain.OutcomeSkipped, 0, "no active enrollment")
		return &ports.ActionResult{EmployeeID: employee, Enrolled: enrolled, Skipped: true}, nil
	}
	c.processing[employee] = struct{}{}
	c.mu.Unlock()
	defer c.finish(employee)

	if _, err := c.deps.API.CancelEnrollment(ctx, token, enrollmentID); err != nil {
		c.log.Warn().Err(err).Int64("employee_id", int64(employee)).Int64("enrollment_id", int64(enrollmentID)).Msg("cancel rejected")
		c.record(employee, domain.ActionCancel, domain.OutcomeFailed, enrollmentID, err.Error())
		return nil, fmt.Errorf("%w: %w", domain.ErrCancelFailed, err)
	}

	c.mu.Lock()
	c.overlay = reconcile.RecordCancelSuccess(employee, c.overlay)
	delete(c.created, employee)
	enrolled := reconcile.IsEffectivelyEnrolled(employee, c.active, c.overlay)
	c.mu.Unlock()

	c.record(employee, domain.ActionCancel, domain.OutcomeSucceeded, enrollmentID, "")
	c.log.Info().Int64("employee_id", int64(employee)).Int64("enrollment_id", int64(enrollmentID)).Msg("enrollment canceled")
	return &ports.ActionResult{EmployeeID: employee, EnrollmentID: enrollmentID, Enrolled: enrolled}, nil
}

// Overlay returns the current overlay. The returned value is never mutated.
func (c *Console) Overlay() reconcile.Overlay {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overlay
}

// mergeCreatedLocked adds the enrollments created here that snapshot is
// missing while the overlay still shows them enrolled. c.mu must be held.
func (c *Console) mergeCreatedLocked(snapshot reconcile.ActiveMap) reconcile.ActiveMap {
	for employee, id := range c.created {
		if !c.overlay.JustEnrolled(employee) {
			continue
		}
		if _, ok := snapshot.Lookup(employee); !ok {
			snapshot[employee] = id
		}
	}
	return snapshot
}

func (c *Console) token(ctx context.Context) (string, error) {
	token, err := sessionToken(ctx, c.session)
	if errors.Is(err, domain.ErrSessionExpired) && c.onExpired != nil {
		c.onExpired()
	}
	return token, err
}

func (c *Console) begin(employee domain.EmployeeID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.processing[employee]; busy {
		return domain.ErrActionInProgress
	}
	c.processing[employee] = struct{}{}
	return nil
}

func (c *Console) finish(employee domain.EmployeeID) {
	c.mu.Lock()
	delete(c.processing, employee)
	c.mu.Unlock()
}

// ── Rewards pool ──────────────────────────────────────────────────────────────

// SeedPool initializes membership once per console. A non-empty stored list
// is used verbatim; otherwise the whole roster joins and is persisted. With
// nothing stored and an empty roster the console stays unseeded so a later
// roster can still seed it.
func (c *Console) SeedPool(ctx context.Context, roster []domain.EmployeeID) []domain.EmployeeID {
	c.poolMu.Lock()
	defer c.poolMu.Unlock()
	c.initPoolLocked(ctx, roster)
	return slices.Clone(c.members)
}

// Pool returns the current members in join order.
func (c *Console) Pool(ctx context.Context) []domain.EmployeeID {
	c.poolMu.Lock()
	defer c.poolMu.Unlock()
	c.initPoolLocked(ctx, nil)
	return slices.Clone(c.members)
}

// JoinPool adds employee to the pool. Joining twice is a no-op.
func (c *Console) JoinPool(ctx context.Context, employee domain.EmployeeID) []domain.EmployeeID {
	c.poolMu.Lock()
	defer c.poolMu.Unlock()
	c.initPoolLocked(ctx, nil)
	c.seeded = true

	if !slices.Contains(c.members, employee) {
		c.members = append(c.members, employee)
		c.pool.Save(ctx, c.members)
		c.record(employee, domain.ActionPoolJoin, domain.OutcomeSucceeded, 0, "")
	}
	return slices.Clone(c.members)
}

// LeavePool removes employee from the pool.
func (c *Console) LeavePool(ctx context.Context, employee domain.EmployeeID) ([]domain.EmployeeID, error) {
	c.poolMu.Lock()
	defer c.poolMu.Unlock()
	c.initPoolLocked(ctx, nil)

	i := slices.Index(c.members, employee)
	if i < 0 {
		return slices.Clone(c.members), domain.ErrNotPoolMember
	}
	c.seeded = true
	c.members = slices.Delete(c.members, i, i+1)
	c.pool.Save(ctx, c.members)
	c.record(employee, domain.ActionPoolLeave, domain.OutcomeSucceeded, 0, "")
	return slices.Clone(c.members), nil
}

func (c *Console) initPoolLocked(ctx context.Context, roster []domain.EmployeeID) {
	if c.seeded {
		return
	}
	if stored := c.pool.Load(ctx); len(stored) > 0 {
		c.members = stored
		c.seeded = true
		return
	}
	if len(roster) == 0 {
		return
	}
	c.members = slices.Clone(roster)
	c.seeded = true
	c.pool.Save(ctx, c.members)
	c.record(0, domain.ActionPoolSeed, domain.OutcomeSucceeded, 0, fmt.Sprintf("seeded %d members", len(roster)))
	c.log.Info().Int("members", len(roster)).Msg("rewards pool seeded from roster")
}

func (c *Console) record(employee domain.EmployeeID, kind domain.ActionKind, outcome domain.ActionOutcome, enrollmentID domain.EnrollmentID, detail string) {
	metrics.ConsoleActionsTotal.WithLabelValues(string(kind), string(outcome)).Inc()
	if c.deps.Recorder == nil {
		return
	}
	c.deps.Recorder.Record(domain.EnrollmentAction{
		ID:           uuid.NewString(),
		SessionID:    c.sessionID,
		Actor:        c.actor,
		EmployeeID:   employee,
		Kind:         kind,
		Outcome:      outcome,
		EnrollmentID: enrollmentID,
		Detail:       detail,
		At:           c.deps.Now().UTC(),
	})
}

// sessionToken reads the upstream bearer token kept for the session.
func sessionToken(ctx context.Context, kv ports.KeyValueStore) (string, error) {
	if kv == nil {
		return "", domain.ErrSessionExpired
	}
	token, ok, err := kv.Get(ctx, domain.KeyToken)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	if !ok || token == "" {
		return "", domain.ErrSessionExpired
	}
	return token, nil
}
