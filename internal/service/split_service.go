package service

import (
	"context"
	"log/slog"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/settlement"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage"
)

// SplitService is the settlement engine: it records shared expenses as a
// parent transaction plus per-beneficiary split rows, and aggregates split
// rows into per-member settlement summaries.
type SplitService struct {
	store storage.Store
}

// NewSplitService creates a new SplitService with the given storage backend.
func NewSplitService(store storage.Store) *SplitService {
	return &SplitService{store: store}
}

// CreateSplitExpenseInput is the contract for recording a shared expense.
type CreateSplitExpenseInput struct {
	GroupID        int64   `json:"groupId" validate:"required,gt=0"`
	CategoryID     int64   `json:"categoryId" validate:"required,gt=0"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	Amount         string  `json:"amount" validate:"required"`
	Notes          string  `json:"notes" validate:"required"`
	PayerID        int64   `json:"payerId" validate:"required,gt=0"`
	BeneficiaryIDs []int64 `json:"beneficiaryIds" validate:"required,min=1,unique,dive,gt=0"`
}

// CreateSplitExpenseResult identifies the rows a split-expense creation wrote.
type CreateSplitExpenseResult struct {
	TransactionID int64   `json:"transactionId"`
	SplitRowIDs   []int64 `json:"splitRowIds"`
}

// Create records a shared expense: one parent Expense transaction for the
// full amount and one split row per beneficiary, all-or-nothing.
//
// The amount is divided evenly with remainder cents going to the first
// beneficiaries, so the split rows always sum exactly to the parent amount.
func (s *SplitService) Create(ctx context.Context, in CreateSplitExpenseInput) (*CreateSplitExpenseResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, apperr.Validationf("amount", "must be a non-negative decimal number")
	}

	// Referenced rows must exist before anything is written.
	if _, err := s.store.GetGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	amounts, err := settlement.SplitEven(amount, len(in.BeneficiaryIDs))
	if err != nil {
		return nil, apperr.Validationf("beneficiaryIds", "%s", err.Error())
	}

	parent := &models.Transaction{
		CategoryID: in.CategoryID,
		Type:       models.TypeExpense,
		Date:       in.Date,
		Amount:     amount,
		Notes:      in.Notes,
	}
	shares := make([]storage.SplitShare, len(in.BeneficiaryIDs))
	for i, beneficiaryID := range in.BeneficiaryIDs {
		shares[i] = storage.SplitShare{BeneficiaryID: beneficiaryID, Amount: amounts[i]}
	}

	splitIDs, err := s.store.CreateSplitExpense(ctx, in.GroupID, parent, in.PayerID, shares)
	if err != nil {
		slog.Error("split expense creation failed", "group_id", in.GroupID, "error", err)
		return nil, err
	}

	slog.Info("split expense created",
		"group_id", in.GroupID,
		"transaction_id", parent.ID,
		"payer_id", in.PayerID,
		"beneficiaries", len(shares),
		"amount", amount,
	)
	return &CreateSplitExpenseResult{TransactionID: parent.ID, SplitRowIDs: splitIDs}, nil
}

// SettlementSummary computes one row per current group member: total paid,
// total received and the net unsettled due (paid minus received; negative
// means the member owes money). Members with no split activity get all-zero
// rows. An unknown group id yields an empty list, not an error.
func (s *SplitService) SettlementSummary(ctx context.Context, groupID int64) ([]settlement.Row, error) {
	groupMembers, err := s.store.GetGroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	paid, err := s.store.SumSplitAmountsByPayer(ctx, groupID)
	if err != nil {
		return nil, err
	}
	received, err := s.store.SumSplitAmountsByBeneficiary(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members := make([]settlement.Member, len(groupMembers))
	for i, m := range groupMembers {
		members[i] = settlement.Member{UserID: m.UserID, FullName: m.FullName}
	}
	return settlement.Summarize(members, paid, received), nil
}

// IsGroupSettled reports whether every member's unsettled due is exactly zero.
func (s *SplitService) IsGroupSettled(ctx context.Context, groupID int64) (bool, error) {
	rows, err := s.SettlementSummary(ctx, groupID)
	if err != nil {
		return false, err
	}
	return settlement.IsSettled(rows), nil
}

// ListByGroup retrieves a group's split rows.
func (s *SplitService) ListByGroup(ctx context.Context, groupID int64) ([]*models.GroupTransaction, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSplitsByGroup(ctx, groupID)
}
