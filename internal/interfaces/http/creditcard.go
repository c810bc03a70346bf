package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/creditcard"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type CreditCardHandler struct {
	cards creditcard.Repository
}

func NewCreditCardHandler(cards creditcard.Repository) *CreditCardHandler {
	return &CreditCardHandler{cards: cards}
}

type CreateCreditCardRequest struct {
	Name           string  `json:"name"`
	CurrentBalance float64 `json:"currentBalance"`
	CreditLimit    float64 `json:"creditLimit"`
}

// HandleCreditCards lists credit cards (GET) or creates one (POST)
func (h *CreditCardHandler) HandleCreditCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListCreditCards(w, r, userID)
	case http.MethodPost:
		h.handleCreateCreditCard(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CreditCardHandler) handleListCreditCards(w http.ResponseWriter, r *http.Request, userID int64) {
	cards, err := h.cards.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing credit cards for user %d: %v", userID, err)
		http.Error(w, "Failed to list credit cards", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (h *CreditCardHandler) handleCreateCreditCard(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateCreditCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := creditcard.CreateParams{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		CurrentBalance: req.CurrentBalance,
		CreditLimit:    req.CreditLimit,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.cards.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating credit card for user %d: %v", userID, err)
		http.Error(w, "Failed to create credit card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
