package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/api"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/auth"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/config"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage/sqlite"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	router := api.NewRouter(api.Services{
		Auth:         service.NewAuthService(authenticator, jwtManager),
		Categories:   service.NewCategoryService(store),
		Budgets:      service.NewBudgetService(store),
		Transactions: service.NewTransactionService(store),
		Groups:       service.NewGroupService(store),
		Splits:       service.NewSplitService(store),
		JWT:          jwtManager,
	})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
