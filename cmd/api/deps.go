package main

import (
	"context"
	"log"

	"github.com/Ammar30113/finpulse/internal/domain/analysis"
	"github.com/Ammar30113/finpulse/internal/domain/dashboard"
	"github.com/Ammar30113/finpulse/internal/domain/notification"
	"github.com/Ammar30113/finpulse/internal/domain/review"
	"github.com/Ammar30113/finpulse/internal/infrastructure/firebase"
	"github.com/Ammar30113/finpulse/internal/infrastructure/postgres"
	httphandlers "github.com/Ammar30113/finpulse/internal/interfaces/http"
	"github.com/Ammar30113/finpulse/internal/shared/auth"
	"github.com/Ammar30113/finpulse/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler         *httphandlers.AuthHandler
	AccountHandler      *httphandlers.AccountHandler
	TransactionHandler  *httphandlers.TransactionHandler
	ExpenseHandler      *httphandlers.ExpenseHandler
	CreditCardHandler   *httphandlers.CreditCardHandler
	InvestmentHandler   *httphandlers.InvestmentHandler
	GoalHandler         *httphandlers.GoalHandler
	InstallmentHandler  *httphandlers.InstallmentHandler
	DashboardHandler    *httphandlers.DashboardHandler
	AnalysisHandler     *httphandlers.AnalysisHandler
	ReviewHandler       *httphandlers.ReviewHandler
	NotificationHandler *httphandlers.NotificationHandler

	// Auth
	JWT *auth.JWT
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	creditCardRepo := postgres.NewCreditCardRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	installmentRepo := postgres.NewInstallmentRepository(db)
	analysisRepo := postgres.NewAnalysisRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	deviceTokenRepo := postgres.NewDeviceTokenRepository(db)

	// Initialize FCM client if configured. Invalid tokens reported by FCM
	// are deactivated through the device token repository.
	var messenger notification.Messenger
	if cfg.Firebase.CredentialsFile != "" {
		fcmClient, err := firebase.NewClient(ctx, cfg.Firebase.CredentialsFile, deviceTokenRepo.DeactivateToken)
		if err != nil {
			log.Printf("Warning: Failed to initialize Firebase messaging: %v", err)
		} else {
			messenger = fcmClient
			log.Println("Firebase messaging initialized")
		}
	} else {
		log.Println("Firebase messaging not configured, push notifications disabled")
	}

	// Initialize domain services
	notificationService := notification.NewService(deviceTokenRepo, messenger)
	dashboardService := dashboard.NewService(
		accountRepo, transactionRepo, creditCardRepo, investmentRepo,
		expenseRepo, goalRepo, installmentRepo,
	)
	analysisService := analysis.NewService(
		accountRepo, transactionRepo, creditCardRepo, investmentRepo,
		expenseRepo, goalRepo, analysisRepo,
	)
	reviewService := review.NewService(
		accountRepo, transactionRepo, creditCardRepo, investmentRepo,
		expenseRepo, goalRepo, installmentRepo, reviewRepo, notificationService,
	)

	// Initialize auth components
	jwt := auth.NewJWT(cfg.JWT.Secret)

	return &Dependencies{
		DB:                  db,
		AuthHandler:         httphandlers.NewAuthHandler(userRepo, jwt),
		AccountHandler:      httphandlers.NewAccountHandler(accountRepo),
		TransactionHandler:  httphandlers.NewTransactionHandler(transactionRepo),
		ExpenseHandler:      httphandlers.NewExpenseHandler(expenseRepo),
		CreditCardHandler:   httphandlers.NewCreditCardHandler(creditCardRepo),
		InvestmentHandler:   httphandlers.NewInvestmentHandler(investmentRepo),
		GoalHandler:         httphandlers.NewGoalHandler(goalRepo),
		InstallmentHandler:  httphandlers.NewInstallmentHandler(installmentRepo),
		DashboardHandler:    httphandlers.NewDashboardHandler(dashboardService),
		AnalysisHandler:     httphandlers.NewAnalysisHandler(analysisService),
		ReviewHandler:       httphandlers.NewReviewHandler(reviewService),
		NotificationHandler: httphandlers.NewNotificationHandler(notificationService),
		JWT:                 jwt,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
