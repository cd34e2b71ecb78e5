package models

import "github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"

// GroupTransaction is one beneficiary's share of a group-paid expense.
//
// Rows are derived from a single parent Transaction: one row per beneficiary
// in the payer's split list, with date and notes copied from the parent and
// Amount holding that beneficiary's share. The shares of one parent sum
// exactly to the parent's amount.
type GroupTransaction struct {
	ID            int64       `json:"id"`
	GroupID       int64       `json:"groupId"`
	TransactionID int64       `json:"transactionId"`
	PayerID       int64       `json:"payerId"`
	BeneficiaryID int64       `json:"beneficiaryId"`
	Date          string      `json:"date"`
	Amount        money.Cents `json:"amount"`
	Notes         string      `json:"notes"`
}
