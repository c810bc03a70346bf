package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ammar30113/finpulse/internal/domain/account"
	"github.com/Ammar30113/finpulse/internal/domain/creditcard"
	"github.com/Ammar30113/finpulse/internal/domain/expense"
	"github.com/Ammar30113/finpulse/internal/domain/goal"
	"github.com/Ammar30113/finpulse/internal/domain/installment"
	"github.com/Ammar30113/finpulse/internal/domain/investment"
	"github.com/Ammar30113/finpulse/internal/domain/transaction"
	"github.com/Ammar30113/finpulse/internal/shared/money"
)

const recentTransactionLimit = 10

// Service aggregates a user's full financial state into dashboard metrics.
type Service struct {
	accounts     account.Repository
	transactions transaction.Repository
	cards        creditcard.Repository
	investments  investment.Repository
	expenses     expense.Repository
	goals        goal.Repository
	installments installment.Repository

	now func() time.Time
}

// NewService creates a new dashboard service
func NewService(
	accounts account.Repository,
	transactions transaction.Repository,
	cards creditcard.Repository,
	investments investment.Repository,
	expenses expense.Repository,
	goals goal.Repository,
	installments installment.Repository,
) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		cards:        cards,
		investments:  investments,
		expenses:     expenses,
		goals:        goals,
		installments: installments,
		now:          time.Now,
	}
}

// SetClock overrides the service clock. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// BuildSummary aggregates all of the user's financial data into a single
// dashboard payload. Absent data contributes zeros; it never errors on an
// empty portfolio.
func (s *Service) BuildSummary(ctx context.Context, userID int64) (*Summary, error) {
	accounts, err := s.accounts.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	cards, err := s.cards.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credit cards: %w", err)
	}
	investments, err := s.investments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	expenses, err := s.expenses.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	goals, err := s.goals.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	installments, err := s.installments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load installment plans: %w", err)
	}

	today := dateOf(s.now())
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	monthTxns, err := s.transactions.ListByDateRange(ctx, userID, firstOfMonth, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	// Assets: liquid account balances + investment values
	var liquidBalance, savingsBalance float64
	for _, a := range accounts {
		if a.IsLiquid() {
			liquidBalance += a.Balance
		}
		if a.AccountType == account.TypeSavings {
			savingsBalance += a.Balance
		}
	}
	totalAssets := liquidBalance + investment.TotalValue(investments)

	// Liabilities: card balances + remaining installment amounts
	totalLiabilities := creditcard.TotalBalance(cards) + installment.TotalRemaining(installments)
	netWorth := totalAssets - totalLiabilities

	monthlyIncome := transaction.CreditTotal(monthTxns)
	monthlyExpenses := MonthlyExpenses(expenses, monthTxns)
	cashFlow := monthlyIncome - monthlyExpenses

	summary := &Summary{
		NetWorth:             money.Round2(netWorth),
		TotalAssets:          money.Round2(totalAssets),
		TotalLiabilities:     money.Round2(totalLiabilities),
		MonthlyIncome:        money.Round2(monthlyIncome),
		MonthlyExpenses:      money.Round2(monthlyExpenses),
		CashFlow:             money.Round2(cashFlow),
		CreditUtilizationPct: money.Round2(creditcard.Utilization(cards)),
		SavingsBalance:       money.Round2(savingsBalance),
		UpcomingBills:        upcomingBills(expenses, today),
		GoalsSummary:         goalsSummary(goals),
	}

	recent, err := s.transactions.ListRecent(ctx, userID, recentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	summary.RecentTransactions = make([]RecentTransaction, 0, len(recent))
	for _, t := range recent {
		summary.RecentTransactions = append(summary.RecentTransactions, RecentTransaction{
			ID:          t.ID,
			Amount:      t.Amount,
			Type:        t.Type,
			Category:    t.Category,
			Description: t.Description,
			Date:        t.Date,
		})
	}

	return summary, nil
}

// MonthlyExpenses computes the user's monthly expense total without double
// counting bills that appear both as a recurring expense definition and as a
// posted debit transaction. Every debit in the window counts; a recurring
// expense only adds its normalized amount when no debit in the window
// matches it.
func MonthlyExpenses(expenses []*expense.Expense, monthTxns []*transaction.Transaction) float64 {
	total := transaction.DebitTotal(monthTxns)

	for _, e := range expenses {
		if !e.IsRecurring {
			continue
		}
		if !hasMatchingDebit(e, monthTxns) {
			total += e.MonthlyAmount()
		}
	}
	return total
}

// hasMatchingDebit reports whether any debit in the window describes the same
// real-world bill as the recurring expense: category must match, and when the
// expense carries a description the transaction's description must match too.
// Comparisons are case-insensitive and trimmed.
func hasMatchingDebit(e *expense.Expense, txns []*transaction.Transaction) bool {
	expCategory := normalize(e.Category)
	if expCategory == "" {
		return false
	}
	expDescription := normalize(e.Description)

	for _, t := range txns {
		if !t.IsDebit() {
			continue
		}
		if normalize(t.Category) != expCategory {
			continue
		}
		if expDescription == "" {
			return true
		}
		if txnDescription := normalize(t.Description); txnDescription != "" && txnDescription == expDescription {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func upcomingBills(expenses []*expense.Expense, today time.Time) []UpcomingBill {
	horizon := today.AddDate(0, 0, 30)

	bills := make([]UpcomingBill, 0)
	for _, e := range expenses {
		if !e.IsRecurring || e.NextDueDate == nil {
			continue
		}
		due := dateOf(*e.NextDueDate)
		if due.Before(today) || due.After(horizon) {
			continue
		}
		bills = append(bills, UpcomingBill{
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			NextDueDate: due,
		})
	}
	return bills
}

func goalsSummary(goals []*goal.Goal) []GoalProgress {
	summary := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		summary = append(summary, GoalProgress{
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			ProgressPct:   money.Round1(g.ProgressPct()),
			TargetDate:    g.TargetDate,
		})
	}
	return summary
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
