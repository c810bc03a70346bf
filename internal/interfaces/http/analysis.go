package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Ammar30113/finpulse/internal/domain/analysis"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type AnalysisHandler struct {
	analysis *analysis.Service
}

func NewAnalysisHandler(analysis *analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// HandleAnalysis runs the analysis engine and returns insights, warnings,
// and recommendations for the authenticated user
func (h *AnalysisHandler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.analysis.Generate(r.Context(), userID)
	if err != nil {
		log.Printf("Error generating analysis for user %d: %v", userID, err)
		http.Error(w, "Failed to generate analysis", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleLatestAnalysis returns the most recently stored analysis result
// without recomputing
func (h *AnalysisHandler) HandleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.analysis.Latest(r.Context(), userID)
	if err != nil {
		log.Printf("Error loading latest analysis for user %d: %v", userID, err)
		http.Error(w, "Failed to load analysis", http.StatusInternalServerError)
		return
	}
	if result == nil {
		http.Error(w, "No analysis found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
