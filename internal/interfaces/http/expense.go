package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/expense"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type ExpenseHandler struct {
	expenses expense.Repository
}

func NewExpenseHandler(expenses expense.Repository) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type CreateExpenseRequest struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsRecurring bool    `json:"isRecurring"`
	Frequency   string  `json:"frequency"`
	NextDueDate string  `json:"nextDueDate"` // YYYY-MM-DD, optional
}

// HandleExpenses lists expense definitions (GET) or creates one (POST)
func (h *ExpenseHandler) HandleExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListExpenses(w, r, userID)
	case http.MethodPost:
		h.handleCreateExpense(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ExpenseHandler) handleListExpenses(w http.ResponseWriter, r *http.Request, userID int64) {
	expenses, err := h.expenses.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing expenses for user %d: %v", userID, err)
		http.Error(w, "Failed to list expenses", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(expenses)
}

func (h *ExpenseHandler) handleCreateExpense(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var nextDue *time.Time
	if req.NextDueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.NextDueDate)
		if err != nil {
			http.Error(w, "Invalid next due date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		nextDue = &parsed
	}

	params := expense.CreateParams{
		ID:          uuid.NewString(),
		UserID:      userID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
		NextDueDate: nextDue,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.expenses.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating expense for user %d: %v", userID, err)
		http.Error(w, "Failed to create expense", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleExpenseByID deletes an expense definition
func (h *ExpenseHandler) HandleExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	expenseID := r.PathValue("id")
	if expenseID == "" {
		http.Error(w, "Expense ID is required", http.StatusBadRequest)
		return
	}

	if err := h.expenses.Delete(r.Context(), expenseID, userID); err != nil {
		if errors.Is(err, expense.ErrExpenseNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		log.Printf("Error deleting expense %s: %v", expenseID, err)
		http.Error(w, "Failed to delete expense", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
