package domain

// EmployeeID identifies an employee record issued by the commute API.
type EmployeeID int64

// Valid reports whether the id is a concrete, positive identifier.
func (id EmployeeID) Valid() bool { return id > 0 }

// Employee is a roster entry as returned by GET employees/.
type Employee struct {
	ID         EmployeeID `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	Status     string     `json:"status,omitempty"`
}

// EmployeeIDs returns the ids of the given employees in roster order.
func EmployeeIDs(employees []Employee) []EmployeeID {
	ids := make([]EmployeeID, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return ids
}
