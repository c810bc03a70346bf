package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Ammar30113/finpulse/internal/domain/dashboard"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type DashboardHandler struct {
	dashboard *dashboard.Service
}

func NewDashboardHandler(dashboard *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// HandleDashboard returns the aggregated financial summary for the
// authenticated user
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.dashboard.BuildSummary(r.Context(), userID)
	if err != nil {
		log.Printf("Error building dashboard for user %d: %v", userID, err)
		http.Error(w, "Failed to build dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
