package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Ammar30113/finpulse/internal/domain/account"
	"github.com/Ammar30113/finpulse/internal/domain/creditcard"
	"github.com/Ammar30113/finpulse/internal/domain/expense"
	"github.com/Ammar30113/finpulse/internal/domain/goal"
	"github.com/Ammar30113/finpulse/internal/domain/investment"
	"github.com/Ammar30113/finpulse/internal/domain/transaction"
	"github.com/Ammar30113/finpulse/internal/shared/dates"
)

// Wednesday June 11 2025; the ISO week runs June 9-15.
var testToday = time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)

type fixture struct {
	accounts     []*account.Account
	cards        []*creditcard.CreditCard
	investments  []*investment.Investment
	expenses     []*expense.Expense
	goals        []*goal.Goal
	currentWeek  []*transaction.Transaction
	previousWeek []*transaction.Transaction
	previous     *Result
	createErr    error

	created *CreateParams
}

func (f *fixture) newService() *Service {
	weekStart, _ := dates.WeekBounds(testToday)

	svc := NewService(
		&MockAccountRepo{ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*account.Account, error) {
			return f.accounts, nil
		}},
		&MockTransactionRepo{ListByDateRangeFunc: func(ctx context.Context, userID int64, from, to time.Time) ([]*transaction.Transaction, error) {
			if from.Equal(weekStart) {
				return f.currentWeek, nil
			}
			return f.previousWeek, nil
		}},
		&MockCardRepo{ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*creditcard.CreditCard, error) {
			return f.cards, nil
		}},
		&MockInvestmentRepo{ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*investment.Investment, error) {
			return f.investments, nil
		}},
		&MockExpenseRepo{ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*expense.Expense, error) {
			return f.expenses, nil
		}},
		&MockGoalRepo{ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*goal.Goal, error) {
			return f.goals, nil
		}},
		&MockResultRepo{
			CreateFunc: func(ctx context.Context, params CreateParams) (*Result, error) {
				f.created = &params
				if f.createErr != nil {
					return nil, f.createErr
				}
				return &Result{ID: params.ID}, nil
			},
			GetLatestBeforeFunc: func(ctx context.Context, userID int64, before time.Time) (*Result, error) {
				return f.previous, nil
			},
		},
	)
	svc.SetClock(func() time.Time { return testToday })
	return svc
}

func debit(amount float64, category string) *transaction.Transaction {
	return &transaction.Transaction{Type: transaction.TypeDebit, Amount: amount, Category: category}
}

func credit(amount float64) *transaction.Transaction {
	return &transaction.Transaction{Type: transaction.TypeCredit, Amount: amount}
}

func floatPtr(v float64) *float64 { return &v }

func TestGenerateQuotas(t *testing.T) {
	f := &fixture{}
	resp, err := f.newService().Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if len(resp.Insights) != 3 {
		t.Errorf("len(Insights) = %d, want 3", len(resp.Insights))
	}
	if len(resp.Warnings) != 2 {
		t.Errorf("len(Warnings) = %d, want 2", len(resp.Warnings))
	}
	if len(resp.Recommendations) != 2 {
		t.Errorf("len(Recommendations) = %d, want 2", len(resp.Recommendations))
	}
	if resp.Summary == "" {
		t.Error("Summary is empty")
	}
}

func TestSpendingTrendInsight(t *testing.T) {
	tests := []struct {
		name         string
		currentWeek  []*transaction.Transaction
		previousWeek []*transaction.Transaction
		wantContains string
	}{
		{
			name:         "Increase",
			currentWeek:  []*transaction.Transaction{debit(300, "Food")},
			previousWeek: []*transaction.Transaction{debit(200, "Food")},
			wantContains: "up 50.0%",
		},
		{
			name:         "Decrease",
			currentWeek:  []*transaction.Transaction{debit(100, "Food")},
			previousWeek: []*transaction.Transaction{debit(200, "Food")},
			wantContains: "down 50.0%",
		},
		{
			name:         "FlatAtExactlyZeroChange",
			currentWeek:  []*transaction.Transaction{debit(200, "Food")},
			previousWeek: []*transaction.Transaction{debit(200, "Rent")},
			wantContains: "flat",
		},
		{
			name:         "NoPriorWeekReportsTotalOnly",
			currentWeek:  []*transaction.Transaction{debit(150, "Food")},
			wantContains: "You spent $150.00 this week",
		},
		{
			name:         "NoSpendingAtAll",
			wantContains: "No spending recorded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fixture{currentWeek: tt.currentWeek, previousWeek: tt.previousWeek}
			resp, err := f.newService().Generate(context.Background(), 1)
			if err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}

			got := resp.Insights[0]
			if got.Priority != 1 || got.Category != "spending" {
				t.Errorf("insight[0] = %+v, want priority 1 spending", got)
			}
			if !strings.Contains(got.Message, tt.wantContains) {
				t.Errorf("message %q does not contain %q", got.Message, tt.wantContains)
			}
		})
	}
}

func TestSpendingTrendCitesTopCategory(t *testing.T) {
	f := &fixture{
		currentWeek: []*transaction.Transaction{
			debit(100, "Food"),
			debit(900, "Rent"),
		},
		previousWeek: []*transaction.Transaction{debit(500, "Food")},
	}
	resp, err := f.newService().Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if !strings.Contains(resp.Insights[0].Detail, "Top category: Rent") {
		t.Errorf("detail %q should cite Rent as top category", resp.Insights[0].Detail)
	}
}

func TestNetWorthInsight(t *testing.T) {
	accounts := []*account.Account{{AccountType: account.TypeChequing, Balance: 5000}}
	investments := []*investment.Investment{{CurrentValue: 5000}}

	t.Run("NoPriorSnapshotReportsAbsoluteValue", func(t *testing.T) {
		f := &fixture{accounts: accounts, investments: investments}
		resp, err := f.newService().Generate(context.Background(), 1)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}

		got := resp.Insights[1]
		if !strings.Contains(got.Message, "Your current net worth is $10,000.00") {
			t.Errorf("message = %q, want absolute net worth", got.Message)
		}
		if strings.Contains(got.Message, "since last snapshot") {
			t.Errorf("message %q must not cite a snapshot comparison", got.Message)
		}
	})

	t.Run("PriorSnapshotReportsDelta", func(t *testing.T) {
		f := &fixture{
			accounts:    accounts,
			investments: investments,
			previous:    &Result{RawData: RawData{NetWorth: floatPtr(8000)}},
		}
		resp, err := f.newService().Generate(context.Background(), 1)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}

		got := resp.Insights[1]
		if !strings.Contains(got.Message, "up $2,000.00 (25.0%) since last snapshot") {
			t.Errorf("message = %q, want delta since last snapshot", got.Message)
		}
	})

	t.Run("PriorRowWithoutNetWorthFallsBack", func(t *testing.T) {
		f := &fixture{
			accounts:    accounts,
			investments: investments,
			previous:    &Result{RawData: RawData{}}, // legacy row, no net_worth key
		}
		resp, err := f.newService().Generate(context.Background(), 1)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}

		if strings.Contains(resp.Insights[1].Message, "since last snapshot") {
			t.Errorf("message %q must not cite a snapshot comparison", resp.Insights[1].Message)
		}
	})

	t.Run("DownwardDelta", func(t *testing.T) {
		f := &fixture{
			accounts:    accounts,
			investments: investments,
			previous:    &Result{RawData: RawData{NetWorth: floatPtr(12500)}},
		}
		resp, err := f.newService().Generate(context.Background(), 1)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}

		if !strings.Contains(resp.Insights[1].Message, "down $2,500.00 (20.0%)") {
			t.Errorf("message = %q, want downward delta", resp.Insights[1].Message)
		}
	})
}

func TestSavingsRunwayInsight(t *testing.T) {
	f := &fixture{
		accounts: []*account.Account{{AccountType: account.TypeSavings, Balance: 6000}},
		expenses: []*expense.Expense{
			{Amount: 2000, IsRecurring: true, Frequency: "monthly"},
		},
	}
	resp, err := f.newService().Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	got := resp.Insights[2]
	if !strings.Contains(got.Message, "3.0 months of expense runway") {
		t.Errorf("message = %q, want 3.0 months runway", got.Message)
	}

	// Without expense data the insight prompts instead.
	empty := &fixture{accounts: f.accounts}
	resp, err = empty.newService().Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if !strings.Contains(resp.Insights[2].Message, "Add recurring expenses") {
		t.Errorf("message = %q, want expense prompt", resp.Insights[2].Message)
	}
}

func TestUtilizationWarning(t *testing.T) {
	tests := []struct {
		name         string
		cards        []*creditcard.CreditCard
		wantSeverity string
		wantContains string
	}{
		{
			name:         "Healthy",
			cards:        []*creditcard.CreditCard{{CurrentBalance: 100, CreditLimit: 1000}},
			wantSeverity: SeverityLow,
			wantContains: "healthy",
		},
		{
			name:         "AboveThirty",
			cards:        []*creditcard.CreditCard{{CurrentBalance: 400, CreditLimit: 1000}},
			wantSeverity: SeverityMedium,
			wantContains: "above recommended 30%",
		},
		{
			name:         "CriticallyHigh",
			cards:        []*creditcard.CreditCard{{CurrentBalance: 800, CreditLimit: 1000}},
			wantSeverity: SeverityHigh,
			wantContains: "critically high",
		},
		{
			name:         "ZeroLimitIsHealthy",
			cards:        []*creditcard.CreditCard{{CurrentBalance: 900, CreditLimit: 0}},
			wantSeverity: SeverityLow,
			wantContains: "healthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fixture{cards: tt.cards}
			resp, err := f.newService().Generate(context.Background(), 1)
			if err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}

			got := resp.Warnings[0]
			if got.Severity != tt.wantSeverity {
				t.Errorf("severity = %q, want %q", got.Severity, tt.wantSeverity)
			}
			if !strings.Contains(got.Message, tt.wantContains) {
				t.Errorf("message %q does not contain %q", got.Message, tt.wantContains)
			}
		})
	}
}

func TestSpikeWarningAndGoalFallback(t *testing.T) {
	t.Run("ModerateSpike", func(t *testing.T) {
		f := &fixture{
			currentWeek:  []*transaction.Transaction{debit(130, "Dining")},
			previousWeek: []*transaction.Transaction{debit(100, "Dining")},
		}
		resp, _ := f.newService().Generate(context.Background(), 1)
		got := resp.Warnings[1]
		if got.Category != "spending_spike" || got.Severity != SeverityMedium {
			t.Errorf("warning = %+v, want medium spending_spike", got)
		}
		if !strings.Contains(got.Message, "Dining") {
			t.Errorf("message %q should name the top category", got.Message)
		}
	})

	t.Run("SevereSpike", func(t *testing.T) {
		f := &fixture{
			currentWeek:  []*transaction.Transaction{debit(160, "Dining")},
			previousWeek: []*transaction.Transaction{debit(100, "Dining")},
		}
		resp, _ := f.newService().Generate(context.Background(), 1)
		if resp.Warnings[1].Severity != SeverityHigh {
			t.Errorf("severity = %q, want high", resp.Warnings[1].Severity)
		}
	})

	t.Run("BelowThresholdFallsBackToGoals", func(t *testing.T) {
		target := testToday.AddDate(0, 0, 90)
		f := &fixture{
			currentWeek:  []*transaction.Transaction{debit(110, "Dining")},
			previousWeek: []*transaction.Transaction{debit(100, "Dining")},
			goals: []*goal.Goal{
				{Title: "Vacation", TargetAmount: 5000, CurrentAmount: 500, TargetDate: &target},
			},
		}
		resp, _ := f.newService().Generate(context.Background(), 1)
		got := resp.Warnings[1]
		if got.Category != "goals" {
			t.Errorf("category = %q, want goals", got.Category)
		}
		if !strings.Contains(got.Message, "Vacation") {
			t.Errorf("message %q should list the off-track goal", got.Message)
		}
	})

	t.Run("NoGoalsSet", func(t *testing.T) {
		f := &fixture{}
		resp, _ := f.newService().Generate(context.Background(), 1)
		if !strings.Contains(resp.Warnings[1].Message, "No financial goals set yet") {
			t.Errorf("message = %q", resp.Warnings[1].Message)
		}
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("HighUtilizationNamesWorstCard", func(t *testing.T) {
		f := &fixture{
			cards: []*creditcard.CreditCard{
				{Name: "Visa", CurrentBalance: 300, CreditLimit: 1000},   // 30%
				{Name: "Amex", CurrentBalance: 1800, CreditLimit: 2000}, // 90%
			},
		}
		resp, _ := f.newService().Generate(context.Background(), 1)
		got := resp.Recommendations[0]
		if !strings.Contains(got.Action, "Amex") || got.Impact != ImpactHigh {
			t.Errorf("recommendation = %+v, want high-impact Amex paydown", got)
		}
	})

	t.Run("SpendingAboveLastWeekCapsTopCategory", func(t *testing.T) {
		f := &fixture{
			currentWeek:  []*transaction.Transaction{debit(115, "Dining")},
			previousWeek: []*transaction.Transaction{debit(100, "Dining")},
			investments:  []*investment.Investment{{CurrentValue: 100}},
		}
		resp, _ := f.newService().Generate(context.Background(), 1)
		got := resp.Recommendations[0]
		if !strings.Contains(got.Action, "Dining") {
			t.Errorf("action = %q, want Dining cap", got.Action)
		}
	})

	t.Run("NoInvestmentsSuggestsStarting", func(t *testing.T) {
		f := &fixture{}
		resp, _ := f.newService().Generate(context.Background(), 1)
		if !strings.Contains(resp.Recommendations[0].Action, "TFSA or RRSP") {
			t.Errorf("action = %q", resp.Recommendations[0].Action)
		}
	})

	t.Run("OtherwiseIncreaseContributions", func(t *testing.T) {
		f := &fixture{investments: []*investment.Investment{{CurrentValue: 100}}}
		resp, _ := f.newService().Generate(context.Background(), 1)
		got := resp.Recommendations[0]
		if !strings.Contains(got.Action, "Increase monthly investment contributions") || got.Impact != ImpactMedium {
			t.Errorf("recommendation = %+v", got)
		}
	})

	t.Run("EmergencyFundBelowThreeMonths", func(t *testing.T) {
		f := &fixture{
			accounts: []*account.Account{{AccountType: account.TypeChequing, Balance: 2000}},
			expenses: []*expense.Expense{{Amount: 2000, IsRecurring: true, Frequency: "monthly"}},
		}
		resp, _ := f.newService().Generate(context.Background(), 1)
		got := resp.Recommendations[1]
		if !strings.Contains(got.Action, "emergency fund") || got.Impact != ImpactHigh {
			t.Errorf("recommendation = %+v", got)
		}
		if !strings.Contains(got.Detail, "$6,000.00") {
			t.Errorf("detail = %q, want 3x monthly target", got.Detail)
		}
	})

	t.Run("NoExpenseDataSuggestsTracking", func(t *testing.T) {
		f := &fixture{}
		resp, _ := f.newService().Generate(context.Background(), 1)
		if !strings.Contains(resp.Recommendations[1].Action, "Track your recurring expenses") {
			t.Errorf("action = %q", resp.Recommendations[1].Action)
		}
	})
}

func TestGeneratePersistsSnapshot(t *testing.T) {
	f := &fixture{
		accounts:    []*account.Account{{AccountType: account.TypeChequing, Balance: 1000}},
		currentWeek: []*transaction.Transaction{debit(50, "Food"), credit(500)},
	}
	if _, err := f.newService().Generate(context.Background(), 42); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if f.created == nil {
		t.Fatal("no analysis result persisted")
	}
	if f.created.UserID != 42 {
		t.Errorf("persisted UserID = %d, want 42", f.created.UserID)
	}
	if f.created.ID == "" {
		t.Error("persisted result has no ID")
	}
	if f.created.RawData.NetWorth == nil || *f.created.RawData.NetWorth != 1000 {
		t.Errorf("persisted net worth = %v, want 1000", f.created.RawData.NetWorth)
	}
	if f.created.RawData.CurrentWeekSpending != 50 {
		t.Errorf("persisted week spending = %v, want 50", f.created.RawData.CurrentWeekSpending)
	}
	if f.created.RawData.CurrentWeekIncome != 500 {
		t.Errorf("persisted week income = %v, want 500", f.created.RawData.CurrentWeekIncome)
	}
	if f.created.RawData.MonthsRunway != nil {
		t.Errorf("persisted months runway = %v, want nil without expense data", f.created.RawData.MonthsRunway)
	}
}

func TestGenerateSurvivesPersistenceFailure(t *testing.T) {
	f := &fixture{createErr: errors.New("store unavailable")}
	resp, err := f.newService().Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() must not propagate persistence errors, got %v", err)
	}
	if resp == nil || len(resp.Insights) != 3 {
		t.Fatalf("computed response must still be returned, got %+v", resp)
	}
}

func TestSummaryContents(t *testing.T) {
	f := &fixture{
		accounts:     []*account.Account{{AccountType: account.TypeChequing, Balance: 4000}},
		investments:  []*investment.Investment{{CurrentValue: 1000}, {CurrentValue: 500}},
		cards:        []*creditcard.CreditCard{{CurrentBalance: 500, CreditLimit: 1000}},
		currentWeek:  []*transaction.Transaction{debit(300, "Food")},
		previousWeek: []*transaction.Transaction{debit(200, "Food")},
	}
	resp, err := f.newService().Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for _, want := range []string{
		"Net worth: $5,000.00.",
		"Weekly spending is up 50.0%.",
		"Credit utilization at 50% needs attention.",
		"$1,500.00 invested across 2 investment account(s).",
	} {
		if !strings.Contains(resp.Summary, want) {
			t.Errorf("summary %q missing %q", resp.Summary, want)
		}
	}
}
