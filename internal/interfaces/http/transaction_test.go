package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ammar30113/finpulse/internal/domain/transaction"
)

// MockTransactionRepo implements transaction.Repository for testing
type MockTransactionRepo struct {
	CreateFunc          func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
	ListByUserIDFunc    func(ctx context.Context, userID int64, limit, offset int) ([]*transaction.Transaction, error)
	ListByDateRangeFunc func(ctx context.Context, userID int64, from, to time.Time) ([]*transaction.Transaction, error)
	ListRecentFunc      func(ctx context.Context, userID int64, limit int) ([]*transaction.Transaction, error)
}

func (m *MockTransactionRepo) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockTransactionRepo) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]*transaction.Transaction, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, limit, offset)
	}
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

func TestHandleTransactions_ListPagination(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "Defaults",
			target:     "/api/transactions",
			wantLimit:  50,
			wantOffset: 0,
		},
		{
			name:       "Explicit Limit And Offset",
			target:     "/api/transactions?limit=25&offset=100",
			wantLimit:  25,
			wantOffset: 100,
		},
		{
			name:       "Limit Above Cap Falls Back",
			target:     "/api/transactions?limit=5000",
			wantLimit:  50,
			wantOffset: 0,
		},
		{
			name:       "Negative Offset Clamped",
			target:     "/api/transactions?offset=-5",
			wantLimit:  50,
			wantOffset: 0,
		},
		{
			name:       "Malformed Limit Falls Back",
			target:     "/api/transactions?limit=abc",
			wantLimit:  50,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit, gotOffset int
			repo := &MockTransactionRepo{
				ListByUserIDFunc: func(ctx context.Context, userID int64, limit, offset int) ([]*transaction.Transaction, error) {
					gotLimit, gotOffset = limit, offset
					return []*transaction.Transaction{}, nil
				},
			}
			handler := NewTransactionHandler(repo)

			req := authedRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler.HandleTransactions(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if gotLimit != tt.wantLimit || gotOffset != tt.wantOffset {
				t.Errorf("limit/offset = %d/%d, want %d/%d", gotLimit, gotOffset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestHandleTransactions_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"accountId":"a1","amount":45.50,"type":"debit","category":"Groceries","date":"2025-06-10"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid Type",
			body:           `{"accountId":"a1","amount":45.50,"type":"transfer","date":"2025-06-10"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid Date",
			body:           `{"accountId":"a1","amount":45.50,"type":"debit","date":"10/06/2025"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Account",
			body:           `{"amount":45.50,"type":"debit","date":"2025-06-10"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockTransactionRepo{
				CreateFunc: func(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
					return &transaction.Transaction{
						ID:       params.ID,
						UserID:   params.UserID,
						Amount:   params.Amount,
						Type:     params.Type,
						Category: params.Category,
						Date:     params.Date,
					}, nil
				},
			}
			handler := NewTransactionHandler(repo)

			req := authedRequest(http.MethodPost, "/api/transactions", []byte(tt.body))
			rr := httptest.NewRecorder()
			handler.HandleTransactions(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}
