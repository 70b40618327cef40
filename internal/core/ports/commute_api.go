package ports

import (
	"context"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// TokenPair is the response of POST token/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// CreateEnrollmentInput is the body of POST enrollments/.
type CreateEnrollmentInput struct {
	Employee domain.EmployeeID       `json:"employee"`
	Option   domain.OptionID         `json:"option"`
	Status   domain.EnrollmentStatus `json:"status"`
}

// CommuteAPI is the external commute-benefits REST service. Every call
// except Login takes the bearer token of the acting session.
type CommuteAPI interface {
	Login(ctx context.Context, username, password string) (*TokenPair, error)

	ListEmployees(ctx context.Context, token, department string) ([]domain.Employee, error)
	ListEnrollments(ctx context.Context, token string, status domain.EnrollmentStatus) ([]domain.EnrollmentRecord, error)
	CreateEnrollment(ctx context.Context, token string, in CreateEnrollmentInput) (*domain.EnrollmentRecord, error)
	CancelEnrollment(ctx context.Context, token string, id domain.EnrollmentID) (*domain.EnrollmentRecord, error)
	ParticipationReport(ctx context.Context, token string) (*domain.ParticipationReport, error)
	HRDashboard(ctx context.Context, token string) (*domain.HRDashboard, error)

	ListOptions(ctx context.Context, token string) ([]domain.CommuteOption, error)
	Lobby(ctx context.Context, token string) (*domain.Lobby, error)
	StartSession(ctx context.Context, token string) (*domain.QuestSession, error)
	FinishSession(ctx context.Context, token string, sessionID int64) (*domain.QuestSession, error)
	EmployeeDashboard(ctx context.Context, token string) (*domain.EmployeeDashboard, error)
	SelectOption(ctx context.Context, token string, option domain.OptionID) (*domain.SelectedOption, error)
}
