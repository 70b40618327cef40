package domain

import "time"

// ActionKind names a user-initiated change recorded in the audit trail.
type ActionKind string

const (
	ActionEnroll    ActionKind = "enroll"
	ActionCancel    ActionKind = "cancel"
	ActionPoolJoin  ActionKind = "pool_join"
	ActionPoolLeave ActionKind = "pool_leave"
	ActionPoolSeed  ActionKind = "pool_seed"
)

// ActionOutcome is how an action settled.
type ActionOutcome string

const (
	OutcomeSucceeded ActionOutcome = "succeeded"
	OutcomeFailed    ActionOutcome = "failed"
	OutcomeSkipped   ActionOutcome = "skipped"
)

// EnrollmentAction is one settled console action.
type EnrollmentAction struct {
	ID           string
	SessionID    string
	Actor        string
	EmployeeID   EmployeeID
	Kind         ActionKind
	Outcome      ActionOutcome
	EnrollmentID EnrollmentID // zero when unknown
	Detail       string
	At           time.Time
}
