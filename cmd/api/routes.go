package main

import (
	"log"
	"net/http"

	"github.com/Ammar30113/finpulse/internal/shared/config"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", handleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/register", deps.AuthHandler.HandleRegister)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)
	mux.HandleFunc("/api/auth/logout", deps.AuthHandler.HandleLogout)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)

	mux.Handle("/api/accounts", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleAccounts)))
	mux.Handle("/api/accounts/{id}", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleAccountByID)))
	mux.Handle("/api/transactions", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleTransactions)))
	mux.Handle("/api/expenses", authMiddleware(http.HandlerFunc(deps.ExpenseHandler.HandleExpenses)))
	mux.Handle("/api/expenses/{id}", authMiddleware(http.HandlerFunc(deps.ExpenseHandler.HandleExpenseByID)))
	mux.Handle("/api/credit-cards", authMiddleware(http.HandlerFunc(deps.CreditCardHandler.HandleCreditCards)))
	mux.Handle("/api/investments", authMiddleware(http.HandlerFunc(deps.InvestmentHandler.HandleInvestments)))
	mux.Handle("/api/goals", authMiddleware(http.HandlerFunc(deps.GoalHandler.HandleGoals)))
	mux.Handle("/api/installments", authMiddleware(http.HandlerFunc(deps.InstallmentHandler.HandleInstallments)))
	mux.Handle("/api/dashboard", authMiddleware(http.HandlerFunc(deps.DashboardHandler.HandleDashboard)))
	mux.Handle("/api/analysis", authMiddleware(http.HandlerFunc(deps.AnalysisHandler.HandleAnalysis)))
	mux.Handle("/api/analysis/latest", authMiddleware(http.HandlerFunc(deps.AnalysisHandler.HandleLatestAnalysis)))
	mux.Handle("/api/weekly-review/current", authMiddleware(http.HandlerFunc(deps.ReviewHandler.HandleCurrentReview)))
	mux.Handle("/api/weekly-review/history", authMiddleware(http.HandlerFunc(deps.ReviewHandler.HandleHistory)))
	mux.Handle("/api/weekly-review/{id}/complete-action", authMiddleware(http.HandlerFunc(deps.ReviewHandler.HandleCompleteAction)))
	mux.Handle("/api/notifications/devices", authMiddleware(http.HandlerFunc(deps.NotificationHandler.HandleDevices)))

	// Apply global middleware
	handler := middleware.Logging(middleware.Tracing(middleware.CORS(cfg.Server.AllowedHosts)(mux)))

	// otelhttp instrumentation sits outermost so its span is the parent
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(handler)
	}

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		log.Println("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
