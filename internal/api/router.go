package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/auth"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/middleware"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
)

// Services bundles everything the router needs. All services are constructed
// once at startup and shared across requests.
type Services struct {
	Auth         *service.AuthService
	Categories   *service.CategoryService
	Budgets      *service.BudgetService
	Transactions *service.TransactionService
	Groups       *service.GroupService
	Splits       *service.SplitService
	JWT          *auth.JWTManager
}

// NewRouter builds the HTTP surface: public auth endpoints, health and
// metrics, and the JWT-protected resource routes.
func NewRouter(s Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", Register(s.Auth))
		r.Post("/login", Login(s.Auth))

		// Protected routes
		r.With(middleware.RequireAuth(s.JWT)).Group(func(r chi.Router) {
			// Categories
			r.Post("/categories", CreateCategory(s.Categories))
			r.Get("/categories", ListCategories(s.Categories))
			r.Get("/categories/{category_id}", GetCategory(s.Categories))
			r.Put("/categories/{category_id}", UpdateCategory(s.Categories))
			r.Delete("/categories/{category_id}", DeleteCategory(s.Categories))
			r.Get("/categories/{category_id}/transactions", ListTransactionsByCategory(s.Transactions))

			// Budgets
			r.Post("/budgets", CreateBudget(s.Budgets))
			r.Get("/budgets", ListBudgets(s.Budgets))
			r.Get("/budgets/{budget_id}", GetBudget(s.Budgets))
			r.Put("/budgets/{budget_id}", UpdateBudget(s.Budgets))
			r.Delete("/budgets/{budget_id}", DeleteBudget(s.Budgets))

			// Transactions
			r.Post("/transactions", CreateTransaction(s.Transactions))
			r.Get("/transactions/summary", MonthlySummary(s.Transactions))
			r.Get("/transactions/{transaction_id}", GetTransaction(s.Transactions))
			r.Put("/transactions/{transaction_id}", UpdateTransaction(s.Transactions))
			r.Delete("/transactions/{transaction_id}", DeleteTransaction(s.Transactions))

			// Groups and shared expenses
			r.Post("/groups", CreateGroup(s.Groups))
			r.Get("/groups", ListGroups(s.Groups))
			r.Get("/groups/{group_id}", GetGroup(s.Groups))
			r.Put("/groups/{group_id}", UpdateGroup(s.Groups))
			r.Delete("/groups/{group_id}", DeleteGroup(s.Groups))
			r.Get("/groups/{group_id}/members", ListGroupMembers(s.Groups))
			r.Post("/groups/{group_id}/expenses", CreateSplitExpense(s.Splits))
			r.Get("/groups/{group_id}/expenses", ListSplitExpenses(s.Splits))
			r.Get("/groups/{group_id}/settlement", GetSettlementSummary(s.Splits))
		})
	})

	return r
}
