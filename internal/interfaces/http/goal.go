package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Ammar30113/finpulse/internal/domain/goal"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type GoalHandler struct {
	goals goal.Repository
}

func NewGoalHandler(goals goal.Repository) *GoalHandler {
	return &GoalHandler{goals: goals}
}

type CreateGoalRequest struct {
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    string  `json:"targetDate"` // YYYY-MM-DD, optional
}

// GoalResponse includes derived progress fields alongside the stored goal
type GoalResponse struct {
	*goal.Goal
	ProgressPct float64 `json:"progressPct"`
	Remaining   float64 `json:"remaining"`
}

// HandleGoals lists goals (GET) or creates one (POST)
func (h *GoalHandler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleListGoals(w, r, userID)
	case http.MethodPost:
		h.handleCreateGoal(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *GoalHandler) handleListGoals(w http.ResponseWriter, r *http.Request, userID int64) {
	goals, err := h.goals.ListByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing goals for user %d: %v", userID, err)
		http.Error(w, "Failed to list goals", http.StatusInternalServerError)
		return
	}

	response := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		response = append(response, GoalResponse{
			Goal:        g,
			ProgressPct: g.ProgressPct(),
			Remaining:   g.Remaining(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *GoalHandler) handleCreateGoal(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var targetDate *time.Time
	if req.TargetDate != "" {
		parsed, err := time.Parse("2006-01-02", req.TargetDate)
		if err != nil {
			http.Error(w, "Invalid target date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		targetDate = &parsed
	}

	params := goal.CreateParams{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    targetDate,
	}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.goals.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating goal for user %d: %v", userID, err)
		http.Error(w, "Failed to create goal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(GoalResponse{
		Goal:        created,
		ProgressPct: created.ProgressPct(),
		Remaining:   created.Remaining(),
	})
}
