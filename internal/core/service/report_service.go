package service

import (
	"context"
	"fmt"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

type reportService struct {
	api    ports.CommuteAPI
	stores ports.KeyValueStores
}

// NewReportService returns a ReportService implementation.
func NewReportService(api ports.CommuteAPI, stores ports.KeyValueStores) ports.ReportService {
	return &reportService{api: api, stores: stores}
}

func (s *reportService) Participation(ctx context.Context, sessionID string) (*domain.ParticipationReport, error) {
	token, err := sessionToken(ctx, s.stores.Session(sessionID))
	if err != nil {
		return nil, err
	}
	r, err := s.api.ParticipationReport(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("participation report: %w", err)
	}
	r.ParticipationRate = domain.ClampPercent(r.ParticipationRate)
	return r, nil
}

func (s *reportService) HRDashboard(ctx context.Context, sessionID string) (*domain.HRDashboard, error) {
	token, err := sessionToken(ctx, s.stores.Session(sessionID))
	if err != nil {
		return nil, err
	}
	d, err := s.api.HRDashboard(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("hr dashboard: %w", err)
	}
	for i := range d.Rewards {
		d.Rewards[i].ProgressPercent = domain.ClampPercent(d.Rewards[i].ProgressPercent)
	}
	return d, nil
}
