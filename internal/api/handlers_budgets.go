package api

import (
	"net/http"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/middleware"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
)

// CreateBudget handles POST /api/budgets.
func CreateBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.BudgetInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		b, err := svc.Create(r.Context(), middleware.GetUserID(r.Context()), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, b)
	}
}

// ListBudgets handles GET /api/budgets.
func ListBudgets(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgets, err := svc.List(r.Context(), middleware.GetUserID(r.Context()))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, budgets)
	}
}

// GetBudget handles GET /api/budgets/{budget_id}.
func GetBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "budget_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		b, err := svc.Get(r.Context(), middleware.GetUserID(r.Context()), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

// UpdateBudget handles PUT /api/budgets/{budget_id}.
func UpdateBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "budget_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var in service.BudgetInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		b, err := svc.Update(r.Context(), middleware.GetUserID(r.Context()), id, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

// DeleteBudget handles DELETE /api/budgets/{budget_id}.
func DeleteBudget(svc *service.BudgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "budget_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
