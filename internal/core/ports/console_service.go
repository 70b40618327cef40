package ports

import (
	"context"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// RosterQuery filters the employee roster. Department is applied by the API;
// Search is a case- and accent-insensitive substring match on name or email.
type RosterQuery struct {
	Department string
	Search     string
}

// RosterRow is one employee with its derived console state.
type RosterRow struct {
	Employee     domain.Employee
	Enrolled     bool
	State        string
	EnrollmentID domain.EnrollmentID // zero unless the snapshot has an active record
	Processing   bool
	PoolMember   bool
	AvatarColor  string
}

// RosterResult is the console's employee list plus aggregate counts.
type RosterResult struct {
	Rows        []RosterRow
	Total       int
	Enrolled    int
	PoolMembers int
}

// ActionResult reports how an enroll or cancel settled.
type ActionResult struct {
	EmployeeID   domain.EmployeeID
	EnrollmentID domain.EnrollmentID
	Enrolled     bool
	// Skipped is set when a cancel had no active enrollment to act on and
	// the API was not contacted.
	Skipped bool
}

// Console is the per-session enrollment console.
type Console interface {
	Roster(ctx context.Context, q RosterQuery) (*RosterResult, error)
	Enroll(ctx context.Context, employee domain.EmployeeID) (*ActionResult, error)
	Cancel(ctx context.Context, employee domain.EmployeeID) (*ActionResult, error)

	Pool(ctx context.Context) []domain.EmployeeID
	JoinPool(ctx context.Context, employee domain.EmployeeID) []domain.EmployeeID
	LeavePool(ctx context.Context, employee domain.EmployeeID) ([]domain.EmployeeID, error)
}

// Consoles resolves the console owned by a session.
type Consoles interface {
	Get(sessionID, actor string) Console
	Drop(sessionID string)
}
