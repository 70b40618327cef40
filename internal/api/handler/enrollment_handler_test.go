package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

func TestEnrollmentHandler_Roster(t *testing.T) {
	var got ports.RosterQuery
	consoles := &stubConsoles{console: &stubConsole{
		rosterFn: func(q ports.RosterQuery) (*ports.RosterResult, error) {
			got = q
			return &ports.RosterResult{
				Rows: []ports.RosterRow{{
					Employee:     domain.Employee{ID: 3, Name: "José"},
					Enrolled:     true,
					State:        "enrolled",
					EnrollmentID: 30,
					PoolMember:   true,
				}},
				Total: 1, Enrolled: 1, PoolMembers: 1,
			}, nil
		},
	}}
	h := NewEnrollmentHandler(consoles)

	c, rec := newContext(http.MethodGet, "/v1/employees?department=Ops&search=jose", nil)
	if err := h.Roster(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Department != "Ops" || got.Search != "jose" {
		t.Fatalf("query = %+v", got)
	}
	if consoles.sessionID != "sess-1" || consoles.actor != "admin" {
		t.Fatalf("console resolved for %q/%q", consoles.sessionID, consoles.actor)
	}

	var resp rosterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Employees) != 1 || resp.Employees[0].EnrollmentID != 30 || !resp.Employees[0].PoolMember {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Total != 1 || resp.Enrolled != 1 || resp.Pool != 1 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
}

func TestEnrollmentHandler_Enroll(t *testing.T) {
	consoles := &stubConsoles{console: &stubConsole{
		enrollFn: func(id domain.EmployeeID) (*ports.ActionResult, error) {
			return &ports.ActionResult{EmployeeID: id, EnrollmentID: 99, Enrolled: true}, nil
		},
	}}
	h := NewEnrollmentHandler(consoles)

	c, rec := newContext(http.MethodPost, "/v1/employees/4/enroll", nil)
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := h.Enroll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp actionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.EmployeeID != 4 || resp.EnrollmentID != 99 || !resp.Enrolled {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestEnrollmentHandler_Enroll_InvalidID(t *testing.T) {
	h := NewEnrollmentHandler(&stubConsoles{console: &stubConsole{}})

	for _, id := range []string{"abc", "0", "-2"} {
		c, _ := newContext(http.MethodPost, "/v1/employees/x/enroll", nil)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.Enroll(c); !errors.Is(err, domain.ErrInvalidEmployeeID) {
			t.Errorf("id %q: expected ErrInvalidEmployeeID, got %v", id, err)
		}
	}
}

func TestEnrollmentHandler_Cancel_FailurePropagates(t *testing.T) {
	consoles := &stubConsoles{console: &stubConsole{
		cancelFn: func(domain.EmployeeID) (*ports.ActionResult, error) {
			return nil, domain.ErrCancelFailed
		},
	}}
	h := NewEnrollmentHandler(consoles)

	c, _ := newContext(http.MethodPost, "/v1/employees/4/cancel", nil)
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := h.Cancel(c); !errors.Is(err, domain.ErrCancelFailed) {
		t.Fatalf("expected ErrCancelFailed, got %v", err)
	}
}

func TestEnrollmentHandler_Cancel_Skipped(t *testing.T) {
	consoles := &stubConsoles{console: &stubConsole{
		cancelFn: func(id domain.EmployeeID) (*ports.ActionResult, error) {
			return &ports.ActionResult{EmployeeID: id, Skipped: true}, nil
		},
	}}
	h := NewEnrollmentHandler(consoles)

	c, rec := newContext(http.MethodPost, "/v1/employees/4/cancel", nil)
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := h.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["skipped"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
