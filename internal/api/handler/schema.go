package handler

import (
	"time"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Mode     string `json:"mode"     validate:"required,oneof=admin commuter"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	Mode      string    `json:"mode"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- Enrollment console ---

type employeeRow struct {
	ID           domain.EmployeeID   `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Department   string              `json:"department"`
	Enrolled     bool                `json:"enrolled"`
	State        string              `json:"state"`
	EnrollmentID domain.EnrollmentID `json:"enrollment_id,omitempty"`
	Processing   bool                `json:"processing"`
	PoolMember   bool                `json:"pool_member"`
	AvatarColor  string              `json:"avatar_color"`
}

type rosterResponse struct {
	Employees []employeeRow `json:"employees"`
	Total     int           `json:"total"`
	Enrolled  int           `json:"enrolled"`
	Pool      int           `json:"pool_members"`
}

type actionResponse struct {
	EmployeeID   domain.EmployeeID   `json:"employee_id"`
	EnrollmentID domain.EnrollmentID `json:"enrollment_id,omitempty"`
	Enrolled     bool                `json:"enrolled"`
	Skipped      bool                `json:"skipped,omitempty"`
}

type poolResponse struct {
	Members []domain.EmployeeID `json:"members"`
	Count   int                 `json:"count"`
}

// --- Play flow ---

type selectRequest struct {
	OptionID domain.OptionID `json:"option_id" validate:"required,gt=0"`
}

type rewardsResponse struct {
	FirstName  string        `json:"first_name"`
	OfficeName string        `json:"office_name"`
	Rewards    []rewardEntry `json:"rewards"`
}

type rewardEntry struct {
	Name    string  `json:"name"`
	Scope   string  `json:"scope"`
	Percent float64 `json:"percent"`
	Reached bool    `json:"reached"`
}

type todayOption struct {
	domain.DashboardOption
	Route domain.Route `json:"route"`
}

type todayResponse struct {
	Employee domain.DashboardEmployee `json:"employee"`
	Office   domain.Office            `json:"office"`
	Options  []todayOption            `json:"options"`
	Progress domain.RewardProgress    `json:"progress"`
}
