package domain

// ParticipationReport is the admin summary from GET reports/participation.
type ParticipationReport struct {
	ParticipationRate float64 `json:"participationRate"`
	ActiveEnrollments int     `json:"activeEnrollments"`
}

// ProgressBlock is one reward progress bar.
type ProgressBlock struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

type RewardProgress struct {
	IndividualReward ProgressBlock `json:"individualReward"`
	TeamReward       ProgressBlock `json:"teamReward"`
}

type DashboardOption struct {
	ID                   OptionID `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Active               bool     `json:"active"`
	MonthlyCostBeforeTax float64  `json:"monthlyCostBeforeTax"`
	MonthlyCostAfterTax  float64  `json:"monthlyCostAfterTax"`
	CO2KgPerMonth        float64  `json:"co2KgPerMonth"`
	Selected             bool     `json:"selected"`
}

type DashboardEmployee struct {
	ID             EmployeeID `json:"id"`
	Name           string     `json:"name"`
	Department     *string    `json:"department"`
	HomePostalCode *string    `json:"homePostalCode"`
}

type Office struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	City          *string `json:"city"`
	Address       *string `json:"address,omitempty"`
	MonthlyBudget float64 `json:"monthlyBudget,omitempty"`
}

type DailyAmount struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type DailyCO2 struct {
	Date string  `json:"date"`
	Kg   float64 `json:"kg"`
}

// EmployeeDashboard is the commuter view from GET employee/dashboard/.
type EmployeeDashboard struct {
	Employee       DashboardEmployee `json:"employee"`
	Office         Office            `json:"office"`
	CommuteOptions []DashboardOption `json:"commuteOptions"`
	Stats          struct {
		MoneySavedMonthly float64 `json:"moneySavedMonthly"`
		MoneySavedYearly  float64 `json:"moneySavedYearly"`
		CO2SavedMonthlyKg float64 `json:"co2SavedMonthlyKg"`
		CO2SavedYearlyKg  float64 `json:"co2SavedYearlyKg"`
	} `json:"stats"`
	Progress RewardProgress `json:"progress"`
	Charts   struct {
		DailyMoneySaved []DailyAmount `json:"dailyMoneySaved"`
		DailyCO2Saved   []DailyCO2    `json:"dailyCo2Saved"`
	} `json:"charts"`
}

// SelectedOption echoes POST employee/commute/select/.
type SelectedOption struct {
	EmployeeID       EmployeeID `json:"employeeId"`
	SelectedOptionID OptionID   `json:"selectedOptionId"`
	SessionID        int64      `json:"sessionId"`
}

type HRReward struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	TargetPoints    int     `json:"targetPoints"`
	CurrentPoints   int     `json:"currentPoints"`
	ProgressPercent float64 `json:"progressPercent"`
}

type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type MonthlyCO2 struct {
	Month string  `json:"month"`
	Kg    float64 `json:"kg"`
}

// HRDashboard is the admin view from GET hr/dashboard/.
type HRDashboard struct {
	Office  Office `json:"office"`
	Summary struct {
		TotalEmployees                  int     `json:"totalEmployees"`
		ParticipatingEmployees          int     `json:"participatingEmployees"`
		ParticipationRate               float64 `json:"participationRate"`
		PayrollTaxRate                  float64 `json:"payrollTaxRate"`
		TotalPreTaxSpend                float64 `json:"totalPreTaxSpend"`
		EstimatedEmployerSavingsMonthly float64 `json:"estimatedEmployerSavingsMonthly"`
		EstimatedEmployerSavingsYearly  float64 `json:"estimatedEmployerSavingsYearly"`
		TotalCO2SavedMonthlyKg          float64 `json:"totalCo2SavedMonthlyKg"`
		TotalCO2SavedYearlyKg           float64 `json:"totalCo2SavedYearlyKg"`
	} `json:"summary"`
	Charts struct {
		MoneySavedByMonth []MonthlyAmount `json:"moneySavedByMonth"`
		CO2SavedByMonth   []MonthlyCO2    `json:"co2SavedByMonth"`
	} `json:"charts"`
	Rewards []HRReward `json:"rewards"`
}

type TeamTotal struct {
	Team         string `json:"team"`
	RunsThisWeek int    `json:"runsThisWeek"`
}

type Coworker struct {
	Name   string `json:"name"`
	Team   string `json:"team"`
	Status string `json:"status"`
}

// Lobby is the commute-game lobby from GET commute/lobby/.
type Lobby struct {
	OfficeName   string      `json:"officeName"`
	RunsToday    int         `json:"runsToday"`
	RunsThisWeek int         `json:"runsThisWeek"`
	TeamTotals   []TeamTotal `json:"teamTotals"`
	Coworkers    []Coworker  `json:"coworkers"`
}

// Quest session states.
const (
	QuestInProgress = "in_progress"
	QuestCompleted  = "completed"
)

// QuestSession is one run of the daily commute quest.
type QuestSession struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Points int    `json:"points,omitempty"`
}
