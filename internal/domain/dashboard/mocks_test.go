package dashboard

import (
	"context"
	"time"

	"github.com/Ammar30113/finpulse/internal/domain/account"
	"github.com/Ammar30113/finpulse/internal/domain/creditcard"
	"github.com/Ammar30113/finpulse/internal/domain/expense"
	"github.com/Ammar30113/finpulse/internal/domain/goal"
	"github.com/Ammar30113/finpulse/internal/domain/installment"
	"github.com/Ammar30113/finpulse/internal/domain/investment"
	"github.com/Ammar30113/finpulse/internal/domain/transaction"
)

// Mock repositories implementing the domain interfaces for testing

type MockAccountRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*account.Account, error)
}

func (m *MockAccountRepo) Create(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	return nil, nil
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id string) (*account.Account, error) {
	return nil, nil
}
func (m *MockAccountRepo) ListByUserID(ctx context.Context, userID int64) ([]*account.Account, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type MockTransactionRepo struct {
	ListByDateRangeFunc func(ctx context.Context, userID int64, from, to time.Time) ([]*transaction.Transaction, error)
	ListRecentFunc      func(ctx context.Context, userID int64, limit int) ([]*transaction.Transaction, error)
}

func (m *MockTransactionRepo) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTransactionRepo) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*transaction.Transaction, error) {
	return nil, nil
}
func (m *MockTransactionRepo) ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]*transaction.Transaction, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, userID, from, to)
	}
	return nil, nil
}
func (m *MockTransactionRepo) ListRecent(ctx context.Context, userID int64, limit int) ([]*transaction.Transaction, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, userID, limit)
	}
	return nil, nil
}

type MockCardRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*creditcard.CreditCard, error)
}

func (m *MockCardRepo) Create(ctx context.Context, params creditcard.CreateParams) (*creditcard.CreditCard, error) {
	return nil, nil
}
func (m *MockCardRepo) ListByUserID(ctx context.Context, userID int64) ([]*creditcard.CreditCard, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type MockInvestmentRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*investment.Investment, error)
}

func (m *MockInvestmentRepo) Create(ctx context.Context, params investment.CreateParams) (*investment.Investment, error) {
	return nil, nil
}
func (m *MockInvestmentRepo) ListByUserID(ctx context.Context, userID int64) ([]*investment.Investment, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type MockExpenseRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*expense.Expense, error)
}

func (m *MockExpenseRepo) Create(ctx context.Context, params expense.CreateParams) (*expense.Expense, error) {
	return nil, nil
}
func (m *MockExpenseRepo) Delete(ctx context.Context, id string, userID int64) error {
	return nil
}
func (m *MockExpenseRepo) ListByUserID(ctx context.Context, userID int64) ([]*expense.Expense, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type MockGoalRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*goal.Goal, error)
}

func (m *MockGoalRepo) Create(ctx context.Context, params goal.CreateParams) (*goal.Goal, error) {
	return nil, nil
}
func (m *MockGoalRepo) ListByUserID(ctx context.Context, userID int64) ([]*goal.Goal, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type MockInstallmentRepo struct {
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*installment.Plan, error)
}

func (m *MockInstallmentRepo) Create(ctx context.Context, params installment.CreateParams) (*installment.Plan, error) {
	return nil, nil
}
func (m *MockInstallmentRepo) ListByUserID(ctx context.Context, userID int64) ([]*installment.Plan, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}
