package handler

import (
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// --- Service result → HTTP response ---

func toRosterResponse(r *ports.RosterResult) rosterResponse {
	rows := make([]employeeRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, employeeRow{
			ID:           row.Employee.ID,
			Name:         row.Employee.Name,
			Email:        row.Employee.Email,
			Department:   row.Employee.Department,
			Enrolled:     row.Enrolled,
			State:        row.State,
			EnrollmentID: row.EnrollmentID,
			Processing:   row.Processing,
			PoolMember:   row.PoolMember,
			AvatarColor:  row.AvatarColor,
		})
	}
	return rosterResponse{Employees: rows, Total: r.Total, Enrolled: r.Enrolled, Pool: r.PoolMembers}
}

func toActionResponse(r *ports.ActionResult) actionResponse {
	return actionResponse{
		EmployeeID:   r.EmployeeID,
		EnrollmentID: r.EnrollmentID,
		Enrolled:     r.Enrolled,
		Skipped:      r.Skipped,
	}
}

func toPoolResponse(members []domain.EmployeeID) poolResponse {
	if members == nil {
		members = []domain.EmployeeID{}
	}
	return poolResponse{Members: members, Count: len(members)}
}

func toTodayResponse(v *ports.TodayView) todayResponse {
	opts := make([]todayOption, 0, len(v.Options))
	for _, o := range v.Options {
		opts = append(opts, todayOption{DashboardOption: o.DashboardOption, Route: o.Route})
	}
	return todayResponse{Employee: v.Employee, Office: v.Office, Options: opts, Progress: v.Progress}
}

func toRewardsResponse(v *ports.RewardsView) rewardsResponse {
	rewards := make([]rewardEntry, 0, len(v.Rewards))
	for _, r := range v.Rewards {
		rewards = append(rewards, rewardEntry{Name: r.Name, Scope: r.Scope, Percent: r.Percent, Reached: r.Reached})
	}
	return rewardsResponse{FirstName: v.FirstName, OfficeName: v.OfficeName, Rewards: rewards}
}
