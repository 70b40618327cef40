package ports

import (
	"context"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// AuditRepository persists settled console actions.
type AuditRepository interface {
	InsertAction(ctx context.Context, action *domain.EnrollmentAction) error
}

// ActionRecorder accepts actions for asynchronous auditing. Record must not
// block the caller on persistence.
type ActionRecorder interface {
	Record(action domain.EnrollmentAction)
}
