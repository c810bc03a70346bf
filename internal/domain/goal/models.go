package goal

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrGoalNotFound = errors.New("goal not found")
)

// Goal represents a savings goal. Progress and pace are always derived,
// never stored.
type Goal struct {
	ID            string     `json:"id"`
	UserID        int64      `json:"userId"`
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ProgressPct returns progress toward the target as a percentage,
// 0 when the target amount is 0.
func (g *Goal) ProgressPct() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// Remaining returns the amount still needed to reach the target.
func (g *Goal) Remaining() float64 {
	return g.TargetAmount - g.CurrentAmount
}

// IsOffTrack reports whether the goal is at risk as of the given date:
// it has a target date and a positive target amount, progress is under 50%,
// and fewer than 180 days (but more than zero) remain.
func (g *Goal) IsOffTrack(today time.Time) bool {
	if g.TargetDate == nil || g.TargetAmount <= 0 {
		return false
	}
	daysLeft := DaysUntil(today, *g.TargetDate)
	return daysLeft > 0 && daysLeft < 180 && g.ProgressPct() < 50
}

// DaysUntil returns the number of whole days from today until target.
func DaysUntil(today, target time.Time) int {
	return int(target.Sub(today).Hours() / 24)
}

// CreateParams contains parameters for creating a new goal
type CreateParams struct {
	ID            string
	UserID        int64
	Title         string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    *time.Time
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if p.Title == "" {
		return errors.New("goal title is required")
	}
	if p.TargetAmount <= 0 {
		return errors.New("target amount must be positive")
	}
	return nil
}
