package review

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrReviewNotFound = errors.New("review not found")

	// ErrActionAlreadyResolved is returned when completing an action whose
	// status is already terminal.
	ErrActionAlreadyResolved = errors.New("action already completed or skipped")

	// ErrInvalidStatus is returned when resolving an action with a status
	// other than completed or skipped.
	ErrInvalidStatus = errors.New("status must be completed or skipped")

	// ErrAlreadyExists is returned by the store when a review for the same
	// user and week start was inserted concurrently.
	ErrAlreadyExists = errors.New("review already exists for this week")
)

// Action statuses. A review starts pending; completed and skipped are
// terminal.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

// Action types produced by the selection algorithm.
const (
	ActionPayCreditCard      = "pay_credit_card"
	ActionFundGoal           = "fund_goal"
	ActionBuildEmergencyFund = "build_emergency_fund"
	ActionReduceSpending     = "reduce_spending"
	ActionReviewTransactions = "review_transactions"
)

// Snapshot is the weekly financial snapshot stored with each review.
// MonthlyExpenses here is recurring definitions plus the month's debit
// total with no de-duplication between the two; the dashboard's figure is
// stricter and the two can disagree for the same user.
type Snapshot struct {
	NetWorth         float64 `json:"net_worth"`
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	MonthlyIncome    float64 `json:"monthly_income"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	CashFlow         float64 `json:"cash_flow"`
	UtilizationPct   float64 `json:"credit_utilization_pct"`
	SavingsBalance   float64 `json:"savings_balance"`
	WeeklySpending   float64 `json:"weekly_spending"`
	WeeklyIncome     float64 `json:"weekly_income"`
}

// Delta is a week-over-week change. Pct is nil when the previous value was
// zero.
type Delta struct {
	Absolute float64  `json:"absolute"`
	Pct      *float64 `json:"pct"`
}

// Changes holds the week-over-week deltas. Utilization is already a
// percentage, so its Pct is always nil.
type Changes struct {
	NetWorth    Delta `json:"net_worth_change"`
	Spending    Delta `json:"spending_change"`
	Savings     Delta `json:"savings_change"`
	Utilization Delta `json:"utilization_change"`
}

// Action is the recommended action attached to a review.
type Action struct {
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Detail       string     `json:"detail,omitempty"`
	TargetAmount *float64   `json:"targetAmount,omitempty"`
	TargetName   string     `json:"targetName,omitempty"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// WeeklyReview is one review record. At most one exists per user per ISO
// week; WeekStart is always that week's Monday.
type WeeklyReview struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"userId"`
	WeekStart    time.Time `json:"weekStart"`
	WeekEnd      time.Time `json:"weekEnd"`
	Snapshot     Snapshot  `json:"snapshot"`
	PrevSnapshot *Snapshot `json:"prevSnapshot,omitempty"`
	Changes      *Changes  `json:"changes,omitempty"`
	Action       Action    `json:"action"`
	CreatedAt    time.Time `json:"createdAt"`
}

// History is the review history view with aggregate stats. WACR is the
// completion rate among non-pending reviews, as a percentage.
type History struct {
	Reviews        []*WeeklyReview `json:"reviews"`
	WACR           float64         `json:"wacr"`
	CurrentStreak  int             `json:"currentStreak"`
	TotalCompleted int             `json:"totalCompleted"`
	TotalReviews   int             `json:"totalReviews"`
}

// CreateParams contains parameters for persisting a new weekly review
type CreateParams struct {
	ID           string
	UserID       int64
	WeekStart    time.Time
	WeekEnd      time.Time
	Snapshot     Snapshot
	PrevSnapshot *Snapshot
	Changes      *Changes
	Action       Action
}
