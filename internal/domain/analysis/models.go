package analysis

import "time"

// Severity and impact levels used by warnings and recommendations.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// Quotas: every analysis carries exactly this many items per category.
const (
	insightQuota        = 3
	warningQuota        = 2
	recommendationQuota = 2
)

// Insight is a prioritized observation about the user's finances.
type Insight struct {
	Priority int    `json:"priority"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Detail   string `json:"detail"`
}

// Warning flags a condition that needs attention.
type Warning struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Recommendation is a concrete suggested action.
type Recommendation struct {
	Action string `json:"action"`
	Impact string `json:"impact"`
	Detail string `json:"detail"`
}

// RawData is the numeric bag persisted with each analysis. The next run reads
// it back for the net-worth comparison. NetWorth and MonthsRunway are
// pointers so rows written by older versions degrade to "absent" rather than
// zero.
type RawData struct {
	NetWorth             *float64 `json:"net_worth"`
	Utilization          float64  `json:"utilization"`
	TotalInvestments     float64  `json:"total_investments"`
	CurrentWeekSpending  float64  `json:"current_week_spending"`
	PreviousWeekSpending float64  `json:"previous_week_spending"`
	CurrentWeekIncome    float64  `json:"current_week_income"`
	PreviousWeekIncome   float64  `json:"previous_week_income"`
	MonthsRunway         *float64 `json:"months_runway"`
}

// Result is a persisted analysis snapshot.
type Result struct {
	ID              string           `json:"id"`
	UserID          int64            `json:"userId"`
	SnapshotDate    time.Time        `json:"snapshotDate"`
	Insights        []Insight        `json:"insights"`
	Warnings        []Warning        `json:"warnings"`
	Recommendations []Recommendation `json:"recommendations"`
	RawData         RawData          `json:"rawData"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Response is what Generate returns to the caller.
type Response struct {
	SnapshotDate    time.Time        `json:"snapshotDate"`
	Insights        []Insight        `json:"insights"`
	Warnings        []Warning        `json:"warnings"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// CreateParams contains parameters for persisting an analysis result
type CreateParams struct {
	ID              string
	UserID          int64
	SnapshotDate    time.Time
	Insights        []Insight
	Warnings        []Warning
	Recommendations []Recommendation
	RawData         RawData
}
