package api

import (
	"net/http"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/settlement"
)

// splitExpenseBody is the JSON body of a split-expense creation; the group id
// comes from the URL.
type splitExpenseBody struct {
	CategoryID     int64   `json:"categoryId"`
	Date           string  `json:"date"`
	Amount         string  `json:"amount"`
	Notes          string  `json:"notes"`
	PayerID        int64   `json:"payerId"`
	BeneficiaryIDs []int64 `json:"beneficiaryIds"`
}

// CreateSplitExpense handles POST /api/groups/{group_id}/expenses.
func CreateSplitExpense(svc *service.SplitService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := idParam(r, "group_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var body splitExpenseBody
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, r, err)
			return
		}
		result, err := svc.Create(r.Context(), service.CreateSplitExpenseInput{
			GroupID:        groupID,
			CategoryID:     body.CategoryID,
			Date:           body.Date,
			Amount:         body.Amount,
			Notes:          body.Notes,
			PayerID:        body.PayerID,
			BeneficiaryIDs: body.BeneficiaryIDs,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	}
}

// ListSplitExpenses handles GET /api/groups/{group_id}/expenses.
func ListSplitExpenses(svc *service.SplitService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := idParam(r, "group_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		splits, err := svc.ListByGroup(r.Context(), groupID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, splits)
	}
}

// settlementResponse pairs the per-member rows with the settled flag.
type settlementResponse struct {
	Members []settlement.Row `json:"members"`
	Settled bool             `json:"settled"`
}

// GetSettlementSummary handles GET /api/groups/{group_id}/settlement.
//
// An unknown group id yields an empty member list with settled=true, matching
// the engine's unknown-group behavior.
func GetSettlementSummary(svc *service.SplitService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := idParam(r, "group_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		rows, err := svc.SettlementSummary(r.Context(), groupID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, settlementResponse{
			Members: rows,
			Settled: settlement.IsSettled(rows),
		})
	}
}
