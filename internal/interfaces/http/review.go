package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Ammar30113/finpulse/internal/domain/review"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

// ReviewService is the subset of review.Service the handler needs.
type ReviewService interface {
	GetOrCreate(ctx context.Context, userID int64) (*review.WeeklyReview, error)
	CompleteAction(ctx context.Context, userID int64, reviewID, status string) (*review.WeeklyReview, error)
	History(ctx context.Context, userID int64, limit int) (*review.History, error)
}

type ReviewHandler struct {
	reviews ReviewService
}

func NewReviewHandler(reviews ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type CompleteActionRequest struct {
	Status string `json:"status"` // "completed" or "skipped"
}

// HandleCurrentReview returns this week's review, generating it on first
// request
func (h *ReviewHandler) HandleCurrentReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	weeklyReview, err := h.reviews.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Printf("Error generating weekly review for user %d: %v", userID, err)
		http.Error(w, "Failed to generate weekly review", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(weeklyReview)
}

// HandleCompleteAction marks the review's action as completed or skipped
func (h *ReviewHandler) HandleCompleteAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reviewID := r.PathValue("id")
	if reviewID == "" {
		http.Error(w, "Review ID is required", http.StatusBadRequest)
		return
	}

	var req CompleteActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.reviews.CompleteAction(r.Context(), userID, reviewID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidStatus):
			http.Error(w, "Status must be completed or skipped", http.StatusBadRequest)
		case errors.Is(err, review.ErrReviewNotFound):
			http.Error(w, "Review not found", http.StatusNotFound)
		case errors.Is(err, review.ErrActionAlreadyResolved):
			http.Error(w, "Action already completed or skipped", http.StatusConflict)
		default:
			log.Printf("Error completing action on review %s: %v", reviewID, err)
			http.Error(w, "Failed to update review", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// HandleHistory returns past reviews with completion stats
func (h *ReviewHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := queryInt(r, "limit", 0)

	history, err := h.reviews.History(r.Context(), userID, limit)
	if err != nil {
		log.Printf("Error loading review history for user %d: %v", userID, err)
		http.Error(w, "Failed to load review history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}
