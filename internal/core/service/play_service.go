package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// Default reward names used when the dashboard leaves a label empty.
const (
	defaultIndividualReward = "Free Coffee Card"
	defaultTeamReward       = "Team Pizza Friday"
)

type playService struct {
	api    ports.CommuteAPI
	stores ports.KeyValueStores
	log    zerolog.Logger
}

// NewPlayService returns a PlayService implementation.
func NewPlayService(api ports.CommuteAPI, stores ports.KeyValueStores, log zerolog.Logger) ports.PlayService {
	return &playService{api: api, stores: stores, log: log}
}

func (s *playService) token(ctx context.Context, sessionID string) (string, error) {
	return sessionToken(ctx, s.stores.Session(sessionID))
}

func (s *playService) Lobby(ctx context.Context, sessionID string) (*domain.Lobby, error) {
	token, err := s.token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lobby, err := s.api.Lobby(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("lobby: %w", err)
	}
	return lobby, nil
}

// Today builds the commute picker: each option carries the route drawn for
// its mode. When the dashboard lists no options the general catalogue is
// used instead.
func (s *playService) Today(ctx context.Context, sessionID string) (*ports.TodayView, error) {
	token, err := s.token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	dash, err := s.api.EmployeeDashboard(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("today: dashboard: %w", err)
	}

	options := dash.CommuteOptions
	if len(options) == 0 {
		catalogue, err := s.api.ListOptions(ctx, token)
		if err != nil {
			s.log.Warn().Err(err).Str("session_id", sessionID).Msg("commute options unavailable")
		}
		for _, o := range catalogue {
			options = append(options, domain.DashboardOption{
				ID:          o.ID,
				Name:        o.Name,
				Description: o.Description,
				Active:      o.Active,
			})
		}
	}

	view := &ports.TodayView{
		Employee: dash.Employee,
		Office:   dash.Office,
		Options:  make([]ports.TodayOption, 0, len(options)),
		Progress: clampProgress(dash.Progress),
	}
	for _, o := range options {
		view.Options = append(view.Options, ports.TodayOption{DashboardOption: o, Route: domain.RouteForMode(o.Name)})
	}
	return view, nil
}

func (s *playService) Select(ctx context.Context, sessionID string, option domain.OptionID) (*domain.SelectedOption, error) {
	if option <= 0 {
		return nil, fmt.Errorf("select: option id must be positive")
	}
	token, err := s.token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sel, err := s.api.SelectOption(ctx, token, option)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	return sel, nil
}

func (s *playService) StartQuest(ctx context.Context, sessionID string) (*domain.QuestSession, error) {
	token, err := s.token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q, err := s.api.StartSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("start quest: %w", err)
	}
	return q, nil
}

func (s *playService) FinishQuest(ctx context.Context, sessionID string, questID int64) (*domain.QuestSession, error) {
	token, err := s.token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q, err := s.api.FinishSession(ctx, token, questID)
	if err != nil {
		return nil, fmt.Errorf("finish quest: %w", err)
	}
	return q, nil
}

// Rewards summarizes reward progress with every percentage bounded to
// [0,100].
func (s *playService) Rewards(ctx context.Context, sessionID string) (*ports.RewardsView, error) {
	token, err := s.token(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	dash, err := s.api.EmployeeDashboard(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("rewards: %w", err)
	}

	p := clampProgress(dash.Progress)
	return &ports.RewardsView{
		FirstName:  firstName(dash.Employee.Name),
		OfficeName: dash.Office.Name,
		Rewards: []ports.Reward{
			newReward(p.IndividualReward, "individual", defaultIndividualReward),
			newReward(p.TeamReward, "team", defaultTeamReward),
		},
	}, nil
}

func clampProgress(p domain.RewardProgress) domain.RewardProgress {
	p.IndividualReward.Percent = domain.ClampPercent(p.IndividualReward.Percent)
	p.TeamReward.Percent = domain.ClampPercent(p.TeamReward.Percent)
	return p
}

func newReward(b domain.ProgressBlock, scope, fallback string) ports.Reward {
	name := b.Label
	if name == "" {
		name = fallback
	}
	return ports.Reward{Name: name, Scope: scope, Percent: b.Percent, Reached: b.Percent >= 100}
}

func firstName(full string) string {
	if f := strings.Fields(full); len(f) > 0 {
		return f[0]
	}
	return "You"
}
