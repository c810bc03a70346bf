package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/account"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type AccountHandler struct {
	accounts account.Repository
}

func NewAccountHandler(accounts account.Repository) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type CreateAccountRequest struct {
	Name        string  `json:"name"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency"`
}

// HandleAccounts lists accounts (GET) or creates one (POST)
func (h *AccountHandler) HandleAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListAccounts(w, r, userID)
	case http.MethodPost:
		h.handleCreateAccount(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AccountHandler) handleListAccounts(w http.ResponseWriter, r *http.Request, userID int64) {
	accounts, err := h.accounts.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing accounts for user %d: %v", userID, err)
		http.Error(w, "Failed to list accounts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(accounts)
}

func (h *AccountHandler) handleCreateAccount(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := account.CreateParams{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Currency:    req.Currency,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.accounts.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating account for user %d: %v", userID, err)
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleAccountByID returns a specific account
func (h *AccountHandler) HandleAccountByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	accountID := r.PathValue("id")
	if accountID == "" {
		http.Error(w, "Account ID is required", http.StatusBadRequest)
		return
	}

	acc, err := h.accounts.GetByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			http.Error(w, "Account not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting account %s: %v", accountID, err)
		http.Error(w, "Failed to get account", http.StatusInternalServerError)
		return
	}
	if acc.UserID != userID {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(acc)
}
