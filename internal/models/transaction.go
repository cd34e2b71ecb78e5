package models

import "github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"

// TransactionType distinguishes money going out from money coming in.
type TransactionType string

const (
	TypeExpense TransactionType = "Expense"
	TypeIncome  TransactionType = "Income"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction is a single expense or income under a category. It represents
// either a personal transaction or the parent of a shared-expense split.
type Transaction struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"categoryId"`
	Type       TransactionType `json:"type"`

	// Date is the calendar date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Amount is non-negative.
	Amount money.Cents `json:"amount"`

	// Notes is required and non-empty.
	Notes string `json:"notes"`
}

// MonthlySummary aggregates transaction totals for one calendar month.
type MonthlySummary struct {
	// Month is in YYYY-MM form.
	Month   string      `json:"month"`
	Income  money.Cents `json:"income"`
	Expense money.Cents `json:"expense"`
}
