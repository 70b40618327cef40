// Package reconcile merges the API's view of active enrollments with the
// actions a console session has already completed but the last fetched
// snapshot may not reflect yet.
//
// Everything here is a pure function of its arguments: callers own the
// snapshot and the overlay and pass them in explicitly.
package reconcile

import (
	"slices"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// ActiveMap maps an employee to the id of its active enrollment.
type ActiveMap map[domain.EmployeeID]domain.EnrollmentID

// Lookup returns the active enrollment id for employee, if any.
func (m ActiveMap) Lookup(employee domain.EmployeeID) (domain.EnrollmentID, bool) {
	id, ok := m[employee]
	return id, ok
}

// BuildActiveMap indexes records by employee. Records whose employee
// reference does not resolve, or which carry no id of their own, are left
// out. Status is not re-checked; the caller asks the API for active records
// only. When an employee appears more than once the last record wins.
func BuildActiveMap(records []domain.EnrollmentRecord) ActiveMap {
	m := make(ActiveMap, len(records))
	for _, rec := range records {
		employee, ok := rec.Employee.Resolve()
		if !ok || rec.ID == 0 {
			continue
		}
		m[employee] = rec.ID
	}
	return m
}

// LocalState is the outcome of the latest action this session completed
// for one employee.
type LocalState uint8

const (
	NoLocalAction LocalState = iota
	LocallyEnrolled
	LocallyCanceled
)

func (s LocalState) String() string {
	switch s {
	case LocallyEnrolled:
		return "locally_enrolled"
	case LocallyCanceled:
		return "locally_canceled"
	}
	return "none"
}

// Overlay records enroll/cancel actions that succeeded against the API in
// this session. Each employee holds at most one local state, so an id can
// never be both just-enrolled and just-canceled.
//
// The zero value is an empty overlay. Overlays are values: Record* returns
// a new overlay and never mutates its argument.
type Overlay struct {
	states map[domain.EmployeeID]LocalState
}

// State returns the local state recorded for employee.
func (o Overlay) State(employee domain.EmployeeID) LocalState {
	return o.states[employee]
}

// JustEnrolled reports whether employee was enrolled in this session.
func (o Overlay) JustEnrolled(employee domain.EmployeeID) bool {
	return o.states[employee] == LocallyEnrolled
}

// JustCanceled reports whether employee was canceled in this session.
func (o Overlay) JustCanceled(employee domain.EmployeeID) bool {
	return o.states[employee] == LocallyCanceled
}

// EnrolledIDs lists the just-enrolled set in ascending order.
func (o Overlay) EnrolledIDs() []domain.EmployeeID { return o.ids(LocallyEnrolled) }

// CanceledIDs lists the just-canceled set in ascending order.
func (o Overlay) CanceledIDs() []domain.EmployeeID { return o.ids(LocallyCanceled) }

// Len is the number of employees with a local action.
func (o Overlay) Len() int { return len(o.states) }

func (o Overlay) ids(want LocalState) []domain.EmployeeID {
	var out []domain.EmployeeID
	for id, s := range o.states {
		if s == want {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

func (o Overlay) with(employee domain.EmployeeID, s LocalState) Overlay {
	next := make(map[domain.EmployeeID]LocalState, len(o.states)+1)
	for id, st := range o.states {
		next[id] = st
	}
	next[employee] = s
	return Overlay{states: next}
}

// RecordEnrollSuccess adds employee to the just-enrolled set and removes it
// from the just-canceled set.
func RecordEnrollSuccess(employee domain.EmployeeID, o Overlay) Overlay {
	return o.with(employee, LocallyEnrolled)
}

// RecordCancelSuccess adds employee to the just-canceled set and removes it
// from the just-enrolled set.
func RecordCancelSuccess(employee domain.EmployeeID, o Overlay) Overlay {
	return o.with(employee, LocallyCanceled)
}

// IsEffectivelyEnrolled is the read model behind every enrolled/not-enrolled
// decision: (server active AND NOT just canceled) OR just enrolled.
func IsEffectivelyEnrolled(employee domain.EmployeeID, active ActiveMap, o Overlay) bool {
	_, serverActive := active[employee]
	return (serverActive && !o.JustCanceled(employee)) || o.JustEnrolled(employee)
}

// EnrollmentState is the combined view of server snapshot and overlay for
// one employee.
type EnrollmentState string

const (
	StateUnknown         EnrollmentState = "unknown"
	StateServerActive    EnrollmentState = "server_active"
	StateLocallyEnrolled EnrollmentState = "locally_enrolled"
	StateLocallyCanceled EnrollmentState = "locally_canceled"
)

// Resolve reports the tagged state for employee. A local action always
// takes precedence over the snapshot.
func Resolve(employee domain.EmployeeID, active ActiveMap, o Overlay) EnrollmentState {
	switch o.State(employee) {
	case LocallyEnrolled:
		return StateLocallyEnrolled
	case LocallyCanceled:
		return StateLocallyCanceled
	}
	if _, ok := active[employee]; ok {
		return StateServerActive
	}
	return StateUnknown
}

// Enrolled reports whether the tagged state counts as enrolled.
func (s EnrollmentState) Enrolled() bool {
	return s == StateServerActive || s == StateLocallyEnrolled
}
