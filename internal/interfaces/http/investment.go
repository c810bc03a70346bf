package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/investment"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type InvestmentHandler struct {
	investments investment.Repository
}

func NewInvestmentHandler(investments investment.Repository) *InvestmentHandler {
	return &InvestmentHandler{investments: investments}
}

type CreateInvestmentRequest struct {
	Name         string  `json:"name"`
	CurrentValue float64 `json:"currentValue"`
	BookValue    float64 `json:"bookValue"`
}

// HandleInvestments lists investments (GET) or creates one (POST)
func (h *InvestmentHandler) HandleInvestments(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListInvestments(w, r, userID)
	case http.MethodPost:
		h.handleCreateInvestment(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *InvestmentHandler) handleListInvestments(w http.ResponseWriter, r *http.Request, userID int64) {
	investments, err := h.investments.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing investments for user %d: %v", userID, err)
		http.Error(w, "Failed to list investments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(investments)
}

func (h *InvestmentHandler) handleCreateInvestment(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := investment.CreateParams{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		CurrentValue: req.CurrentValue,
		BookValue:    req.BookValue,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.investments.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating investment for user %d: %v", userID, err)
		http.Error(w, "Failed to create investment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
