package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/account"
	"github.com/Ammar30113/finpulse/internal/domain/creditcard"
	"github.com/Ammar30113/finpulse/internal/domain/expense"
	"github.com/Ammar30113/finpulse/internal/domain/goal"
	"github.com/Ammar30113/finpulse/internal/domain/investment"
	"github.com/Ammar30113/finpulse/internal/domain/transaction"
	"github.com/Ammar30113/finpulse/internal/shared/dates"
	"github.com/Ammar30113/finpulse/internal/shared/money"
)

// Spending-spike thresholds relative to the previous week's total.
const (
	spikeWarnRatio      = 1.2
	spikeSevereRatio    = 1.5
	spikeRecommendRatio = 1.1
)

// Service runs the deterministic rule set over a user's financial state and
// produces prioritized insights, warnings, and recommendations. Every run
// also persists a snapshot that the next run compares against.
type Service struct {
	accounts     account.Repository
	transactions transaction.Repository
	cards        creditcard.Repository
	investments  investment.Repository
	expenses     expense.Repository
	goals        goal.Repository
	results      Repository

	now func() time.Time
}

// NewService creates a new analysis service
func NewService(
	accounts account.Repository,
	transactions transaction.Repository,
	cards creditcard.Repository,
	investments investment.Repository,
	expenses expense.Repository,
	goals goal.Repository,
	results Repository,
) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		cards:        cards,
		investments:  investments,
		expenses:     expenses,
		goals:        goals,
		results:      results,
		now:          time.Now,
	}
}

// SetClock overrides the service clock. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// state holds everything the rules read, gathered once per run.
type state struct {
	today time.Time

	liquidBalance    float64
	utilization      float64
	cards            []*creditcard.CreditCard
	investments      []*investment.Investment
	totalInvestments float64
	goals            []*goal.Goal
	monthlyExpenses  float64 // recurring definitions, monthly-normalized
	netWorth         float64
	totalCardBalance float64

	currentWeekSpending  float64
	previousWeekSpending float64
	currentWeekIncome    float64
	previousWeekIncome   float64
	currentWeekTxns      []*transaction.Transaction

	previous *Result
}

// Generate runs the full rule set and persists the computed snapshot.
// Persistence is best-effort: a store failure is logged and the computed
// result is still returned.
func (s *Service) Generate(ctx context.Context, userID int64) (*Response, error) {
	st, err := s.gather(ctx, userID)
	if err != nil {
		return nil, err
	}

	insights := s.buildInsights(st)
	warnings, offTrack := s.buildWarnings(st)
	recommendations := s.buildRecommendations(st)

	if len(insights) > insightQuota {
		insights = insights[:insightQuota]
	}
	if len(warnings) > warningQuota {
		warnings = warnings[:warningQuota]
	}
	if len(recommendations) > recommendationQuota {
		recommendations = recommendations[:recommendationQuota]
	}

	resp := &Response{
		SnapshotDate:    st.today,
		Insights:        insights,
		Warnings:        warnings,
		Recommendations: recommendations,
		Summary:         s.buildSummary(st, offTrack),
	}

	netWorth := st.netWorth
	raw := RawData{
		NetWorth:             &netWorth,
		Utilization:          st.utilization,
		TotalInvestments:     st.totalInvestments,
		CurrentWeekSpending:  st.currentWeekSpending,
		PreviousWeekSpending: st.previousWeekSpending,
		CurrentWeekIncome:    st.currentWeekIncome,
		PreviousWeekIncome:   st.previousWeekIncome,
	}
	if st.monthlyExpenses > 0 && st.liquidBalance > 0 {
		runway := st.liquidBalance / st.monthlyExpenses
		raw.MonthsRunway = &runway
	}

	if _, err := s.results.Create(ctx, CreateParams{
		ID:              uuid.NewString(),
		UserID:          userID,
		SnapshotDate:    st.today,
		Insights:        insights,
		Warnings:        warnings,
		Recommendations: recommendations,
		RawData:         raw,
	}); err != nil {
		log.Printf("Failed to persist analysis result for user %d: %v", userID, err)
	}

	return resp, nil
}

// Latest returns the user's most recently stored analysis result, or nil
// when none has been generated yet.
func (s *Service) Latest(ctx context.Context, userID int64) (*Result, error) {
	return s.results.GetLatest(ctx, userID)
}

func (s *Service) gather(ctx context.Context, userID int64) (*state, error) {
	accounts, err := s.accounts.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	cards, err := s.cards.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credit cards: %w", err)
	}
	expenses, err := s.expenses.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	investments, err := s.investments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	goals, err := s.goals.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	today := dates.DateOf(s.now())
	weekStart, weekEnd := dates.WeekBounds(today)
	prevWeekStart, prevWeekEnd := weekStart.AddDate(0, 0, -7), weekEnd.AddDate(0, 0, -7)

	currentWeekTxns, err := s.transactions.ListByDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load current week transactions: %w", err)
	}
	previousWeekTxns, err := s.transactions.ListByDateRange(ctx, userID, prevWeekStart, prevWeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous week transactions: %w", err)
	}

	previous, err := s.results.GetLatestBefore(ctx, userID, today)
	if err != nil {
		// A missing or unreadable prior snapshot only disables the
		// comparison; it never fails the run.
		log.Printf("Failed to load previous analysis for user %d: %v", userID, err)
		previous = nil
	}

	st := &state{
		today:                today,
		cards:                cards,
		investments:          investments,
		goals:                goals,
		utilization:          creditcard.Utilization(cards),
		totalCardBalance:     creditcard.TotalBalance(cards),
		totalInvestments:     investment.TotalValue(investments),
		monthlyExpenses:      expense.TotalRecurringMonthly(expenses),
		currentWeekTxns:      currentWeekTxns,
		currentWeekSpending:  transaction.DebitTotal(currentWeekTxns),
		previousWeekSpending: transaction.DebitTotal(previousWeekTxns),
		currentWeekIncome:    transaction.CreditTotal(currentWeekTxns),
		previousWeekIncome:   transaction.CreditTotal(previousWeekTxns),
		previous:             previous,
	}

	for _, a := range accounts {
		if a.IsLiquid() {
			st.liquidBalance += a.Balance
		}
	}
	st.netWorth = st.liquidBalance + st.totalInvestments - st.totalCardBalance

	return st, nil
}

// buildInsights produces the three fixed-priority insights.
func (s *Service) buildInsights(st *state) []Insight {
	insights := make([]Insight, 0, insightQuota)

	// 1. Week-over-week spending trend
	topCategory, _ := transaction.TopDebitCategory(st.currentWeekTxns)
	switch {
	case st.previousWeekSpending > 0:
		pct := money.Round1((st.currentWeekSpending - st.previousWeekSpending) / abs(st.previousWeekSpending) * 100)
		direction := "flat"
		if pct > 0 {
			direction = fmt.Sprintf("up %.1f%%", pct)
		} else if pct < 0 {
			direction = fmt.Sprintf("down %.1f%%", -pct)
		}
		detail := fmt.Sprintf("This week: %s | Last week: %s",
			money.Dollars(st.currentWeekSpending), money.Dollars(st.previousWeekSpending))
		if topCategory != "" {
			detail += fmt.Sprintf(". Top category: %s", topCategory)
		}
		insights = append(insights, Insight{
			Priority: 1,
			Category: "spending",
			Message:  fmt.Sprintf("Your spending is %s vs last week", direction),
			Detail:   detail,
		})
	case st.currentWeekSpending > 0:
		detail := "Not enough history yet for a week-over-week comparison"
		if topCategory != "" {
			detail += fmt.Sprintf(". Top category: %s", topCategory)
		}
		insights = append(insights, Insight{
			Priority: 1,
			Category: "spending",
			Message:  fmt.Sprintf("You spent %s this week", money.Dollars(st.currentWeekSpending)),
			Detail:   detail,
		})
	default:
		insights = append(insights, Insight{
			Priority: 1,
			Category: "spending",
			Message:  "No spending recorded this week",
			Detail:   "Log transactions to see weekly spending trends",
		})
	}

	// 2. Net worth, compared to the last stored snapshot when one exists
	if prev := s.previousNetWorth(st); prev != nil {
		delta := st.netWorth - *prev
		direction := "up"
		if delta < 0 {
			direction = "down"
		}
		msg := fmt.Sprintf("Your net worth is %s %s since last snapshot", direction, money.Dollars(abs(delta)))
		if *prev != 0 {
			pct := money.Round1(delta / abs(*prev) * 100)
			msg = fmt.Sprintf("Your net worth is %s %s (%.1f%%) since last snapshot", direction, money.Dollars(abs(delta)), abs(pct))
		}
		insights = append(insights, Insight{
			Priority: 2,
			Category: "net_worth",
			Message:  msg,
			Detail: fmt.Sprintf("Current: %s | Previous: %s",
				money.Dollars(st.netWorth), money.Dollars(*prev)),
		})
	} else {
		insights = append(insights, Insight{
			Priority: 2,
			Category: "net_worth",
			Message:  fmt.Sprintf("Your current net worth is %s", money.Dollars(st.netWorth)),
			Detail: fmt.Sprintf("Assets: %s | Liabilities: %s",
				money.Dollars(st.liquidBalance+st.totalInvestments), money.Dollars(st.totalCardBalance)),
		})
	}

	// 3. Savings runway
	if st.monthlyExpenses > 0 && st.liquidBalance > 0 {
		runway := st.liquidBalance / st.monthlyExpenses
		detail := fmt.Sprintf("Based on %s in accounts and %s/mo in recurring expenses",
			money.Dollars(st.liquidBalance), money.Dollars(st.monthlyExpenses))
		if st.previousWeekIncome > 0 {
			incomePct := money.Round1((st.currentWeekIncome - st.previousWeekIncome) / st.previousWeekIncome * 100)
			if incomePct >= 0 {
				detail += fmt.Sprintf(". Income this week is up %.1f%% vs last week", incomePct)
			} else {
				detail += fmt.Sprintf(". Income this week is down %.1f%% vs last week", -incomePct)
			}
		}
		insights = append(insights, Insight{
			Priority: 3,
			Category: "savings",
			Message:  fmt.Sprintf("You have %.1f months of expense runway", runway),
			Detail:   detail,
		})
	} else {
		insights = append(insights, Insight{
			Priority: 3,
			Category: "savings",
			Message:  "Add recurring expenses to track your savings runway",
			Detail:   "We need expense data to calculate how long your savings will last",
		})
	}

	return insights
}

// buildWarnings produces the two warnings and returns the off-track goal
// titles for reuse in the summary.
func (s *Service) buildWarnings(st *state) ([]Warning, []string) {
	warnings := make([]Warning, 0, warningQuota)

	// 1. Credit utilization
	if st.utilization > 30 {
		severity := SeverityMedium
		qualifier := "above recommended 30%"
		if st.utilization > 75 {
			severity = SeverityHigh
			qualifier = "critically high"
		}
		warnings = append(warnings, Warning{
			Severity: severity,
			Category: "credit_utilization",
			Message:  fmt.Sprintf("Credit utilization is %.0f%% — %s", st.utilization, qualifier),
		})
	} else {
		warnings = append(warnings, Warning{
			Severity: SeverityLow,
			Category: "credit_utilization",
			Message:  fmt.Sprintf("Credit utilization is healthy at %.0f%%", st.utilization),
		})
	}

	offTrack := offTrackGoals(st.goals, st.today)

	// 2. Spending spike, falling back to goal progress
	if st.previousWeekSpending > 0 && st.currentWeekSpending >= spikeWarnRatio*st.previousWeekSpending {
		severity := SeverityMedium
		if st.currentWeekSpending >= spikeSevereRatio*st.previousWeekSpending {
			severity = SeverityHigh
		}
		increase := st.currentWeekSpending - st.previousWeekSpending
		topCategory, _ := transaction.TopDebitCategory(st.currentWeekTxns)
		if topCategory == "" {
			topCategory = "spending"
		}
		warnings = append(warnings, Warning{
			Severity: severity,
			Category: "spending_spike",
			Message: fmt.Sprintf("Spending jumped %s vs last week, led by %s",
				money.Dollars(increase), topCategory),
		})
	} else if len(offTrack) > 0 {
		names := offTrack
		if len(names) > 3 {
			names = names[:3]
		}
		warnings = append(warnings, Warning{
			Severity: SeverityMedium,
			Category: "goals",
			Message:  fmt.Sprintf("%d goal(s) may be off track: %s", len(offTrack), strings.Join(names, ", ")),
		})
	} else {
		msg := "No financial goals set yet"
		if len(st.goals) > 0 {
			msg = "All goals are on track"
		}
		warnings = append(warnings, Warning{
			Severity: SeverityLow,
			Category: "goals",
			Message:  msg,
		})
	}

	return warnings, offTrack
}

// buildRecommendations produces the two recommendations.
func (s *Service) buildRecommendations(st *state) []Recommendation {
	recommendations := make([]Recommendation, 0, recommendationQuota)

	// 1. Debt, spending, or investing; first matching rule wins
	switch {
	case st.utilization > 30:
		cardName := "credit card"
		if worst := creditcard.WorstCard(st.cards); worst != nil {
			cardName = worst.Name
		}
		recommendations = append(recommendations, Recommendation{
			Action: fmt.Sprintf("Pay down %s balance", cardName),
			Impact: ImpactHigh,
			Detail: fmt.Sprintf("Reducing utilization from %.0f%% to under 30%% will improve your credit score and reduce interest charges", st.utilization),
		})
	case st.previousWeekSpending > 0 && st.currentWeekSpending > spikeRecommendRatio*st.previousWeekSpending:
		topCategory, topAmount := transaction.TopDebitCategory(st.currentWeekTxns)
		if topCategory == "" {
			topCategory = "spending"
		}
		recommendations = append(recommendations, Recommendation{
			Action: fmt.Sprintf("Set a cap on %s spending", topCategory),
			Impact: ImpactHigh,
			Detail: fmt.Sprintf("%s is your top category at %s this week, and total spending is above last week's pace",
				topCategory, money.Dollars(topAmount)),
		})
	case len(st.investments) == 0:
		recommendations = append(recommendations, Recommendation{
			Action: "Start investing in a TFSA or RRSP",
			Impact: ImpactHigh,
			Detail: "With low credit utilization, you're in a good position to begin building investment wealth",
		})
	default:
		recommendations = append(recommendations, Recommendation{
			Action: "Increase monthly investment contributions",
			Impact: ImpactMedium,
			Detail: "Consider increasing contributions to maximize tax-advantaged account room",
		})
	}

	// 2. Emergency fund
	if st.monthlyExpenses > 0 {
		emergencyMonths := st.liquidBalance / st.monthlyExpenses
		if emergencyMonths < 3 {
			recommendations = append(recommendations, Recommendation{
				Action: "Build emergency fund to 3-6 months of expenses",
				Impact: ImpactHigh,
				Detail: fmt.Sprintf("You currently have %.1f months. Target: %s minimum",
					emergencyMonths, money.Dollars(st.monthlyExpenses*3)),
			})
		} else {
			recommendations = append(recommendations, Recommendation{
				Action: "Review expense categories for optimization opportunities",
				Impact: ImpactMedium,
				Detail: "Your emergency fund is solid. Look for subscriptions or expenses you can reduce",
			})
		}
	} else {
		recommendations = append(recommendations, Recommendation{
			Action: "Track your recurring expenses",
			Impact: ImpactMedium,
			Detail: "Adding expense data enables personalized savings and investment recommendations",
		})
	}

	return recommendations
}

func (s *Service) buildSummary(st *state, offTrack []string) string {
	parts := []string{fmt.Sprintf("Net worth: %s.", money.Dollars(st.netWorth))}

	if st.previousWeekSpending > 0 {
		pct := money.Round1((st.currentWeekSpending - st.previousWeekSpending) / abs(st.previousWeekSpending) * 100)
		switch {
		case pct > 0:
			parts = append(parts, fmt.Sprintf("Weekly spending is up %.1f%%.", pct))
		case pct < 0:
			parts = append(parts, fmt.Sprintf("Weekly spending is down %.1f%%.", -pct))
		default:
			parts = append(parts, "Weekly spending is flat vs last week.")
		}
	}
	if st.utilization > 30 {
		parts = append(parts, fmt.Sprintf("Credit utilization at %.0f%% needs attention.", st.utilization))
	}
	if len(offTrack) > 0 {
		parts = append(parts, fmt.Sprintf("%d goal(s) may need adjustment.", len(offTrack)))
	}
	parts = append(parts, fmt.Sprintf("You have %s invested across %d investment account(s).",
		money.Dollars(st.totalInvestments), len(st.investments)))

	return strings.Join(parts, " ")
}

// previousNetWorth returns the net worth stored by the most recent prior
// analysis, or nil when no prior row carries one.
func (s *Service) previousNetWorth(st *state) *float64 {
	if st.previous == nil {
		return nil
	}
	return st.previous.RawData.NetWorth
}

func offTrackGoals(goals []*goal.Goal, today time.Time) []string {
	var titles []string
	for _, g := range goals {
		if g.IsOffTrack(today) {
			titles = append(titles, g.Title)
		}
	}
	return titles
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
