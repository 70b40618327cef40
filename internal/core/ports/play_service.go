package ports

import (
	"context"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// TodayOption is a commute option with the route drawn for it.
type TodayOption struct {
	domain.DashboardOption
	Route domain.Route
}

// TodayView backs the commuter's "pick today's mode" step.
type TodayView struct {
	Employee domain.DashboardEmployee
	Office   domain.Office
	Options  []TodayOption
	Progress domain.RewardProgress
}

// Reward is one reward row with its progress bounded to [0,100].
type Reward struct {
	Name    string
	Scope   string // "individual" or "team"
	Percent float64
	Reached bool
}

// RewardsView backs the quest page.
type RewardsView struct {
	FirstName  string
	OfficeName string
	Rewards    []Reward
}

// PlayService drives the commuter's daily commute flow.
type PlayService interface {
	Lobby(ctx context.Context, sessionID string) (*domain.Lobby, error)
	Today(ctx context.Context, sessionID string) (*TodayView, error)
	Select(ctx context.Context, sessionID string, option domain.OptionID) (*domain.SelectedOption, error)
	StartQuest(ctx context.Context, sessionID string) (*domain.QuestSession, error)
	FinishQuest(ctx context.Context, sessionID string, questID int64) (*domain.QuestSession, error)
	Rewards(ctx context.Context, sessionID string) (*RewardsView, error)
}

// ReportService exposes the admin reports.
type ReportService interface {
	Participation(ctx context.Context, sessionID string) (*domain.ParticipationReport, error)
	HRDashboard(ctx context.Context, sessionID string) (*domain.HRDashboard, error)
}
