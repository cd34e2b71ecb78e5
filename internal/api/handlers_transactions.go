package api

import (
	"net/http"
	"strconv"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/middleware"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
)

// CreateTransaction handles POST /api/transactions.
func CreateTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.TransactionInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		t, err := svc.Create(r.Context(), middleware.GetUserID(r.Context()), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

// ListTransactionsByCategory handles GET /api/categories/{category_id}/transactions.
func ListTransactionsByCategory(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := idParam(r, "category_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		txs, err := svc.ListByCategory(r.Context(), middleware.GetUserID(r.Context()), categoryID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, txs)
	}
}

// GetTransaction handles GET /api/transactions/{transaction_id}.
func GetTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "transaction_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		t, err := svc.Get(r.Context(), middleware.GetUserID(r.Context()), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// UpdateTransaction handles PUT /api/transactions/{transaction_id}.
func UpdateTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "transaction_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var in service.TransactionInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		t, err := svc.Update(r.Context(), middleware.GetUserID(r.Context()), id, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// DeleteTransaction handles DELETE /api/transactions/{transaction_id}.
func DeleteTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "transaction_id")
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

// MonthlySummary handles GET /api/transactions/summary?year=YYYY.
func MonthlySummary(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			writeError(w, r, apperr.Validationf("year", "must be a four-digit year"))
			return
		}
		summary, err := svc.MonthlySummary(r.Context(), middleware.GetUserID(r.Context()), year)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
