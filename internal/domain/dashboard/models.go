package dashboard

import "time"

// Summary is the point-in-time dashboard payload for one user. All money
// values are rounded to 2 decimal places at this boundary; computation keeps
// full precision until then.
type Summary struct {
	NetWorth             float64             `json:"netWorth"`
	TotalAssets          float64             `json:"totalAssets"`
	TotalLiabilities     float64             `json:"totalLiabilities"`
	MonthlyIncome        float64             `json:"monthlyIncome"`
	MonthlyExpenses      float64             `json:"monthlyExpenses"`
	CashFlow             float64             `json:"cashFlow"`
	CreditUtilizationPct float64             `json:"creditUtilizationPct"`
	SavingsBalance       float64             `json:"savingsBalance"`
	UpcomingBills        []UpcomingBill      `json:"upcomingBills"`
	GoalsSummary         []GoalProgress      `json:"goalsSummary"`
	RecentTransactions   []RecentTransaction `json:"recentTransactions"`
}

// UpcomingBill is a recurring expense due within the next 30 days.
type UpcomingBill struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	NextDueDate time.Time `json:"nextDueDate"`
}

// GoalProgress is the derived progress view of a goal.
type GoalProgress struct {
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	ProgressPct   float64    `json:"progressPct"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
}

// RecentTransaction is a trimmed transaction view for the dashboard.
type RecentTransaction struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
