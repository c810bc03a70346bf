package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/installment"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type InstallmentHandler struct {
	plans installment.Repository
}

func NewInstallmentHandler(plans installment.Repository) *InstallmentHandler {
	return &InstallmentHandler{plans: plans}
}

type CreateInstallmentRequest struct {
	Description       string  `json:"description"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	RemainingPayments int     `json:"remainingPayments"`
}

// HandleInstallments lists installment plans (GET) or creates one (POST)
func (h *InstallmentHandler) HandleInstallments(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListInstallments(w, r, userID)
	case http.MethodPost:
		h.handleCreateInstallment(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *InstallmentHandler) handleListInstallments(w http.ResponseWriter, r *http.Request, userID int64) {
	plans, err := h.plans.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing installment plans for user %d: %v", userID, err)
		http.Error(w, "Failed to list installment plans", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plans)
}

func (h *InstallmentHandler) handleCreateInstallment(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateInstallmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := installment.CreateParams{
		ID:                uuid.NewString(),
		UserID:            userID,
		Description:       req.Description,
		MonthlyPayment:    req.MonthlyPayment,
		RemainingPayments: req.RemainingPayments,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.plans.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating installment plan for user %d: %v", userID, err)
		http.Error(w, "Failed to create installment plan", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
