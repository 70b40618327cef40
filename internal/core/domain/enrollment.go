package domain

import (
	"math"

	"github.com/goccy/go-json"
)

// EnrollmentID identifies an enrollment record on the commute API.
type EnrollmentID int64

// OptionID identifies a commute option (transit, bike, ...).
type OptionID int64

// EnrollmentStatus is the lifecycle state of an enrollment record.
type EnrollmentStatus string

const (
	EnrollmentActive   EnrollmentStatus = "active"
	EnrollmentCanceled EnrollmentStatus = "canceled"
)

// EmployeeRef is the employee reference carried by an enrollment record.
// The API sends it either as a bare id or as an embedded employee object;
// both decode. Anything else decodes to an unresolved reference.
type EmployeeRef struct {
	id       EmployeeID
	resolved bool
}

// RefTo builds a resolved reference to id.
func RefTo(id EmployeeID) EmployeeRef {
	return EmployeeRef{id: id, resolved: id.Valid()}
}

// Resolve returns the referenced id and whether it is usable.
func (r EmployeeRef) Resolve() (EmployeeID, bool) {
	return r.id, r.resolved
}

func (r *EmployeeRef) UnmarshalJSON(b []byte) error {
	*r = EmployeeRef{}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		r.set(v)
	case map[string]any:
		if id, ok := v["id"].(float64); ok {
			r.set(id)
		}
	}
	return nil
}

func (r EmployeeRef) MarshalJSON() ([]byte, error) {
	if !r.resolved {
		return []byte("null"), nil
	}
	return json.Marshal(int64(r.id))
}

func (r *EmployeeRef) set(v float64) {
	if v <= 0 || v != math.Trunc(v) || v > math.MaxInt64 {
		return
	}
	r.id = EmployeeID(v)
	r.resolved = true
}

// EnrollmentRecord is an enrollment as reported by GET enrollments/.
// Its lifecycle is owned by the API; this service only reads it.
type EnrollmentRecord struct {
	ID       EnrollmentID     `json:"id"`
	Employee EmployeeRef      `json:"employee"`
	Status   EnrollmentStatus `json:"status"`
	Option   OptionID         `json:"option,omitempty"`
}
