package models

import "github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"

// Budget is a monthly spending target for one category.
// At most one budget exists per (owner, category, month).
type Budget struct {
	ID         int64 `json:"id"`
	OwnerID    int64 `json:"ownerId"`
	CategoryID int64 `json:"categoryId"`

	// Month is in YYYY-MM form.
	Month string `json:"month"`

	Amount money.Cents `json:"amount"`
}
