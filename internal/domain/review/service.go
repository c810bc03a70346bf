package review

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/account"
	"github.com/Ammar30113/finpulse/internal/domain/creditcard"
	"github.com/Ammar30113/finpulse/internal/domain/expense"
	"github.com/Ammar30113/finpulse/internal/domain/goal"
	"github.com/Ammar30113/finpulse/internal/domain/installment"
	"github.com/Ammar30113/finpulse/internal/domain/investment"
	"github.com/Ammar30113/finpulse/internal/domain/transaction"
	"github.com/Ammar30113/finpulse/internal/shared/dates"
	"github.com/Ammar30113/finpulse/internal/shared/money"
)

// An alternative action must score at least this much to override the
// anti-repeat rule.
const antiRepeatMinScore = 30

const (
	defaultHistoryLimit = 12
	maxHistoryLimit     = 52
)

// Messenger delivers a push notification to all of a user's devices.
// Delivery is best-effort; failures never affect review creation.
type Messenger interface {
	SendToUser(ctx context.Context, userID int64, title, body string) error
}

// Service maintains one review per user per ISO week: a financial snapshot,
// its diff against the prior week, and a single scored action with
// completion tracking.
type Service struct {
	accounts     account.Repository
	transactions transaction.Repository
	cards        creditcard.Repository
	investments  investment.Repository
	expenses     expense.Repository
	goals        goal.Repository
	installments installment.Repository
	reviews      Repository
	messenger    Messenger

	now func() time.Time
}

// NewService creates a new weekly review service. messenger may be nil when
// push delivery is not configured.
func NewService(
	accounts account.Repository,
	transactions transaction.Repository,
	cards creditcard.Repository,
	investments investment.Repository,
	expenses expense.Repository,
	goals goal.Repository,
	installments installment.Repository,
	reviews Repository,
	messenger Messenger,
) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		cards:        cards,
		investments:  investments,
		expenses:     expenses,
		goals:        goals,
		installments: installments,
		reviews:      reviews,
		messenger:    messenger,
		now:          time.Now,
	}
}

// SetClock overrides the service clock. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// GetOrCreate returns this week's review, creating it on first call.
// Creation is idempotent per (user, week): a concurrent insert loses the
// unique-constraint race and re-reads the winner's row.
func (s *Service) GetOrCreate(ctx context.Context, userID int64) (*WeeklyReview, error) {
	today := dates.DateOf(s.now())
	weekStart, weekEnd := dates.WeekBounds(today)

	existing, err := s.reviews.GetByUserAndWeekStart(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to look up current review: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	snapshot, weekTxns, err := s.buildSnapshot(ctx, userID, weekStart, weekEnd, today)
	if err != nil {
		return nil, err
	}

	prev, err := s.reviews.GetLatestBefore(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous review: %w", err)
	}

	var prevSnapshot *Snapshot
	var changes *Changes
	if prev != nil {
		snap := prev.Snapshot
		prevSnapshot = &snap
		changes = computeChanges(snapshot, snap)
	}

	action, err := s.selectAction(ctx, userID, snapshot, prevSnapshot, weekTxns, weekStart, today)
	if err != nil {
		return nil, err
	}
	action.Status = StatusPending

	created, err := s.reviews.Create(ctx, CreateParams{
		ID:           uuid.NewString(),
		UserID:       userID,
		WeekStart:    weekStart,
		WeekEnd:      weekEnd,
		Snapshot:     snapshot,
		PrevSnapshot: prevSnapshot,
		Changes:      changes,
		Action:       action,
	})
	if errors.Is(err, ErrAlreadyExists) {
		// Lost the insert race for this week; the winner's row is the review.
		return s.reviews.GetByUserAndWeekStart(ctx, userID, weekStart)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if s.messenger != nil {
		if err := s.messenger.SendToUser(ctx, userID, "Your weekly review is ready", action.Title); err != nil {
			log.Printf("Failed to send weekly review notification to user %d: %v", userID, err)
		}
	}

	return created, nil
}

// CompleteAction marks this week's action completed or skipped. A terminal
// status is final: completing an already-resolved action fails with
// ErrActionAlreadyResolved.
func (s *Service) CompleteAction(ctx context.Context, userID int64, reviewID, status string) (*WeeklyReview, error) {
	if status != StatusCompleted && status != StatusSkipped {
		return nil, ErrInvalidStatus
	}

	r, err := s.reviews.GetByID(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}
	if r.Action.Status != StatusPending {
		return nil, ErrActionAlreadyResolved
	}

	completedAt := s.now().UTC()
	if err := s.reviews.UpdateStatus(ctx, reviewID, status, completedAt); err != nil {
		return nil, fmt.Errorf("failed to update review status: %w", err)
	}

	r.Action.Status = status
	r.Action.CompletedAt = &completedAt
	return r, nil
}

// History returns up to limit recent reviews plus aggregate stats.
func (s *Service) History(ctx context.Context, userID int64, limit int) (*History, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	reviews, err := s.reviews.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load review history: %w", err)
	}

	var nonPending, completed int
	for _, r := range reviews {
		if r.Action.Status == StatusPending {
			continue
		}
		nonPending++
		if r.Action.Status == StatusCompleted {
			completed++
		}
	}

	var wacr float64
	if nonPending > 0 {
		wacr = money.Round1(float64(completed) / float64(nonPending) * 100)
	}

	// Streak counts consecutive completed reviews from the most recent;
	// a pending or skipped review breaks it.
	streak := 0
	for _, r := range reviews {
		if r.Action.Status != StatusCompleted {
			break
		}
		streak++
	}

	return &History{
		Reviews:        reviews,
		WACR:           wacr,
		CurrentStreak:  streak,
		TotalCompleted: completed,
		TotalReviews:   len(reviews),
	}, nil
}

// buildSnapshot computes the weekly snapshot and returns the week's
// transactions for reuse by the action selector. All sums fail open to zero
// on missing data.
func (s *Service) buildSnapshot(ctx context.Context, userID int64, weekStart, weekEnd, today time.Time) (Snapshot, []*transaction.Transaction, error) {
	var snap Snapshot

	accounts, err := s.accounts.ListByUserID(ctx, userID)
	if err != nil {
		return snap, nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	cards, err := s.cards.ListByUserID(ctx, userID)
	if err != nil {
		return snap, nil, fmt.Errorf("failed to load credit cards: %w", err)
	}
	investments, err := s.investments.ListByUserID(ctx, userID)
	if err != nil {
		return snap, nil, fmt.Errorf("failed to load investments: %w", err)
	}
	expenses, err := s.expenses.ListByUserID(ctx, userID)
	if err != nil {
		return snap, nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	installments, err := s.installments.ListByUserID(ctx, userID)
	if err != nil {
		return snap, nil, fmt.Errorf("failed to load installment plans: %w", err)
	}

	var accountBalance, savingsBalance float64
	for _, a := range accounts {
		if a.IsLiquid() {
			accountBalance += a.Balance
		}
		if a.AccountType == account.TypeSavings {
			savingsBalance += a.Balance
		}
	}

	totalAssets := accountBalance + investment.TotalValue(investments)
	totalLiabilities := creditcard.TotalBalance(cards) + installment.TotalRemaining(installments)

	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthTxns, err := s.transactions.ListByDateRange(ctx, userID, firstOfMonth, today)
	if err != nil {
		return snap, nil, fmt.Errorf("failed to load month transactions: %w", err)
	}
	weekTxns, err := s.transactions.ListByDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return snap, nil, fmt.Errorf("failed to load week transactions: %w", err)
	}

	monthlyIncome := transaction.CreditTotal(monthTxns)
	monthlyExpenses := expense.TotalRecurringMonthly(expenses) + transaction.DebitTotal(monthTxns)

	snap = Snapshot{
		NetWorth:         money.Round2(totalAssets - totalLiabilities),
		TotalAssets:      money.Round2(totalAssets),
		TotalLiabilities: money.Round2(totalLiabilities),
		MonthlyIncome:    money.Round2(monthlyIncome),
		MonthlyExpenses:  money.Round2(monthlyExpenses),
		CashFlow:         money.Round2(monthlyIncome - monthlyExpenses),
		UtilizationPct:   money.Round2(creditcard.Utilization(cards)),
		SavingsBalance:   money.Round2(savingsBalance),
		WeeklySpending:   money.Round2(transaction.DebitTotal(weekTxns)),
		WeeklyIncome:     money.Round2(transaction.CreditTotal(weekTxns)),
	}
	return snap, weekTxns, nil
}

func computeChanges(current, previous Snapshot) *Changes {
	return &Changes{
		NetWorth:    delta(current.NetWorth, previous.NetWorth),
		Spending:    delta(current.WeeklySpending, previous.WeeklySpending),
		Savings:     delta(current.SavingsBalance, previous.SavingsBalance),
		Utilization: Delta{Absolute: money.Round2(current.UtilizationPct - previous.UtilizationPct)},
	}
}

func delta(current, previous float64) Delta {
	d := Delta{Absolute: money.Round2(current - previous)}
	if previous != 0 {
		pct := money.Round1((current - previous) / abs(previous) * 100)
		d.Pct = &pct
	}
	return d
}

// candidate pairs a priority score with a proposed action.
type candidate struct {
	score  int
	action Action
}

// selectAction generates the weighted candidate list and picks the best
// score, subject to the anti-repeat rule: when the last two reviews both
// carry the winning type, the first alternative scoring at least 30 with a
// different type wins instead, and the fallback is used when none does.
func (s *Service) selectAction(ctx context.Context, userID int64, snap Snapshot, prevSnap *Snapshot, weekTxns []*transaction.Transaction, weekStart, today time.Time) (Action, error) {
	cards, err := s.cards.ListByUserID(ctx, userID)
	if err != nil {
		return Action{}, fmt.Errorf("failed to load credit cards: %w", err)
	}
	goals, err := s.goals.ListByUserID(ctx, userID)
	if err != nil {
		return Action{}, fmt.Errorf("failed to load goals: %w", err)
	}

	var candidates []candidate
	candidates = append(candidates, creditCardCandidates(cards, snap.UtilizationPct)...)
	candidates = append(candidates, goalCandidates(goals, today)...)
	candidates = append(candidates, emergencyFundCandidates(snap)...)
	if prevSnap != nil {
		candidates = append(candidates, overspendingCandidates(snap, *prevSnap, weekTxns)...)
	}

	fallback := Action{
		Type:   ActionReviewTransactions,
		Title:  "Review this week's transactions",
		Detail: "Take 5 minutes to review your spending and make sure everything looks right.",
	}
	candidates = append(candidates, candidate{score: 10, action: fallback})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	winner := candidates[0]

	recent, err := s.reviews.ListRecentBefore(ctx, userID, weekStart, 2)
	if err != nil {
		return Action{}, fmt.Errorf("failed to load recent reviews: %w", err)
	}
	if len(recent) == 2 && recent[0].Action.Type == winner.action.Type && recent[1].Action.Type == winner.action.Type {
		for _, c := range candidates[1:] {
			if c.score >= antiRepeatMinScore && c.action.Type != winner.action.Type {
				return c.action, nil
			}
		}
		return fallback, nil
	}

	return winner.action, nil
}

func creditCardCandidates(cards []*creditcard.CreditCard, util float64) []candidate {
	worst := creditcard.WorstCard(cards)
	if worst == nil {
		return nil
	}

	var payAmount float64
	if worst.CurrentBalance > 0 {
		payAmount = money.Round2(worst.CurrentBalance * 0.5)
	}
	title := fmt.Sprintf("Pay down %s on %s", money.DollarsWhole(payAmount), worst.Name)
	action := func(detail string) Action {
		amount := payAmount
		return Action{
			Type:         ActionPayCreditCard,
			Title:        title,
			Detail:       detail,
			TargetAmount: &amount,
			TargetName:   worst.Name,
		}
	}

	var candidates []candidate
	if util > 75 {
		candidates = append(candidates, candidate{95, action(fmt.Sprintf(
			"Your credit utilization is %.0f%%, well above the recommended 30%%. Paying down this card will improve your credit score.", util))})
	}
	if util > 50 {
		candidates = append(candidates, candidate{85, action(fmt.Sprintf(
			"Your credit utilization is %.0f%%. Getting below 30%% will boost your credit score.", util))})
	}
	if util > 30 {
		candidates = append(candidates, candidate{75, action(fmt.Sprintf(
			"Your utilization is %.0f%%. Reducing it further strengthens your credit profile.", util))})
	}
	return candidates
}

func goalCandidates(goals []*goal.Goal, today time.Time) []candidate {
	var candidates []candidate
	for _, g := range goals {
		if g.TargetDate == nil || g.CurrentAmount >= g.TargetAmount {
			continue
		}
		daysLeft := goal.DaysUntil(today, *g.TargetDate)
		if daysLeft <= 0 {
			continue
		}

		remaining := g.Remaining()
		weeksLeft := float64(daysLeft) / 7
		if weeksLeft < 1 {
			weeksLeft = 1
		}
		weeklyNeeded := money.Round2(remaining / weeksLeft)

		amount := weeklyNeeded
		action := Action{
			Type:         ActionFundGoal,
			Title:        fmt.Sprintf("Add %s to %s", money.DollarsWhole(weeklyNeeded), g.Title),
			TargetAmount: &amount,
			TargetName:   g.Title,
		}

		switch {
		case daysLeft < 30:
			action.Detail = fmt.Sprintf("Only %d days left to reach your goal. You need %s more.", daysLeft, money.DollarsWhole(remaining))
			candidates = append(candidates, candidate{90, action})
		case daysLeft < 90:
			action.Detail = fmt.Sprintf("%d days left. Contributing weekly keeps you on track.", daysLeft)
			candidates = append(candidates, candidate{70, action})
		case daysLeft < 180:
			action.Detail = fmt.Sprintf("Stay consistent: %s/week gets you to your %s goal.", money.DollarsWhole(weeklyNeeded), money.DollarsWhole(g.TargetAmount))
			candidates = append(candidates, candidate{60, action})
		default:
			action.Detail = fmt.Sprintf("Small weekly contributions add up. You're %s away from your goal.", money.DollarsWhole(remaining))
			candidates = append(candidates, candidate{50, action})
		}
	}
	return candidates
}

func emergencyFundCandidates(snap Snapshot) []candidate {
	if snap.MonthlyExpenses <= 0 {
		return nil
	}
	monthsCovered := snap.SavingsBalance / snap.MonthlyExpenses
	targetTransfer := money.Round2(snap.MonthlyExpenses * 0.25)

	action := func(detail string) Action {
		amount := targetTransfer
		return Action{
			Type:         ActionBuildEmergencyFund,
			Title:        fmt.Sprintf("Transfer %s to savings", money.DollarsWhole(targetTransfer)),
			Detail:       detail,
			TargetAmount: &amount,
			TargetName:   "Savings",
		}
	}

	var candidates []candidate
	if monthsCovered < 1 {
		candidates = append(candidates, candidate{80, action(
			"You have less than 1 month of expenses saved. Building an emergency fund is critical.")})
	}
	if monthsCovered < 2 {
		candidates = append(candidates, candidate{60, action(fmt.Sprintf(
			"Your emergency fund covers %.1f months. Aim for at least 3 months.", monthsCovered))})
	}
	if monthsCovered < 3 {
		candidates = append(candidates, candidate{40, action(fmt.Sprintf(
			"You're at %.1f months of expenses. A 3-month cushion provides real security.", monthsCovered))})
	}
	return candidates
}

func overspendingCandidates(snap, prev Snapshot, weekTxns []*transaction.Transaction) []candidate {
	spendingDiff := snap.WeeklySpending - prev.WeeklySpending
	if spendingDiff <= 100 {
		return nil
	}

	topCategory, topAmount := transaction.TopDebitCategory(weekTxns)
	if topCategory == "" {
		topCategory = "spending"
	}
	topAmount = money.Round2(topAmount)

	reduce := func(fraction float64, detail string) Action {
		amount := money.Round2(spendingDiff * fraction)
		return Action{
			Type:         ActionReduceSpending,
			Title:        fmt.Sprintf("Reduce %s by %s", topCategory, money.DollarsWhole(spendingDiff*fraction)),
			Detail:       detail,
			TargetAmount: &amount,
			TargetName:   topCategory,
		}
	}

	var candidates []candidate
	if spendingDiff > 200 {
		candidates = append(candidates, candidate{65, reduce(0.5, fmt.Sprintf(
			"You spent %s more than last week. %s was your top category at %s.",
			money.DollarsWhole(spendingDiff), topCategory, money.DollarsWhole(topAmount)))})
	}
	candidates = append(candidates, candidate{55, reduce(0.3, fmt.Sprintf(
		"Spending increased %s vs last week. Consider cutting back on %s.",
		money.DollarsWhole(spendingDiff), topCategory))})
	return candidates
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
