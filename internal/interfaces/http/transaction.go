package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/transaction"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 200
)

type TransactionHandler struct {
	transactions transaction.Repository
}

func NewTransactionHandler(transactions transaction.Repository) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type CreateTransactionRequest struct {
	AccountID   string  `json:"accountId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD
}

// HandleTransactions lists transactions (GET) or records one (POST)
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListTransactions(w, r, userID)
	case http.MethodPost:
		h.handleCreateTransaction(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TransactionHandler) handleListTransactions(w http.ResponseWriter, r *http.Request, userID int64) {
	limit := queryInt(r, "limit", defaultTransactionLimit)
	if limit < 1 || limit > maxTransactionLimit {
		limit = defaultTransactionLimit
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	transactions, err := h.transactions.ListByUserID(r.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("Error listing transactions for user %d: %v", userID, err)
		http.Error(w, "Failed to list transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

func (h *TransactionHandler) handleCreateTransaction(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	params := transaction.CreateParams{
		ID:          uuid.NewString(),
		UserID:      userID,
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.transactions.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating transaction for user %d: %v", userID, err)
		http.Error(w, "Failed to create transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// queryInt parses an integer query parameter, falling back to def when
// absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
