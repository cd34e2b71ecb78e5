package service

import (
	"context"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage"
)

// TransactionService manages personal transactions under a category.
type TransactionService struct {
	store storage.Store
}

// NewTransactionService creates a new TransactionService with the given
// storage backend.
func NewTransactionService(store storage.Store) *TransactionService {
	return &TransactionService{store: store}
}

// TransactionInput carries the caller-editable transaction fields.
type TransactionInput struct {
	CategoryID int64  `json:"categoryId" validate:"required,gt=0"`
	Type       string `json:"type" validate:"required,oneof=Expense Income"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount     string `json:"amount" validate:"required"`
	Notes      string `json:"notes" validate:"required"`
}

func (s *TransactionService) ownedCategory(ctx context.Context, ownerID, categoryID int64) (*models.Category, error) {
	c, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, apperr.NotFound("category", categoryID)
	}
	return c, nil
}

// Create records a personal transaction under one of the owner's categories.
func (s *TransactionService) Create(ctx context.Context, ownerID int64, in TransactionInput) (*models.Transaction, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, apperr.Validationf("amount", "must be a non-negative decimal number")
	}
	if _, err := s.ownedCategory(ctx, ownerID, in.CategoryID); err != nil {
		return nil, err
	}

	t := &models.Transaction{
		CategoryID: in.CategoryID,
		Type:       models.TransactionType(in.Type),
		Date:       in.Date,
		Amount:     amount,
		Notes:      in.Notes,
	}
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get retrieves a transaction the owner can see.
func (s *TransactionService) Get(ctx context.Context, ownerID, id int64) (*models.Transaction, error) {
	t, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCategory(ctx, ownerID, t.CategoryID); err != nil {
		return nil, apperr.NotFound("transaction", id)
	}
	return t, nil
}

// ListByCategory retrieves the transactions of one of the owner's categories.
func (s *TransactionService) ListByCategory(ctx context.Context, ownerID, categoryID int64) ([]*models.Transaction, error) {
	if _, err := s.ownedCategory(ctx, ownerID, categoryID); err != nil {
		return nil, err
	}
	return s.store.ListTransactionsByCategory(ctx, categoryID)
}

// Update rewrites a transaction's type, date, amount and notes. The category
// cannot be changed after creation.
func (s *TransactionService) Update(ctx context.Context, ownerID, id int64, in TransactionInput) (*models.Transaction, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, apperr.Validationf("amount", "must be a non-negative decimal number")
	}

	t, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	t.Type = models.TransactionType(in.Type)
	t.Date = in.Date
	t.Amount = amount
	t.Notes = in.Notes
	if err := s.store.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a transaction; any split rows derived from it cascade away.
func (s *TransactionService) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	return s.store.DeleteTransaction(ctx, id)
}

// MonthlySummary returns per-month income and expense totals for the owner's
// transactions in the given year.
func (s *TransactionService) MonthlySummary(ctx context.Context, ownerID int64, year int) ([]models.MonthlySummary, error) {
	if year < 1970 || year > 9999 {
		return nil, apperr.Validationf("year", "must be a four-digit year")
	}
	return s.store.MonthlySummary(ctx, ownerID, year)
}
