package service

import (
	"context"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage"
)

// BudgetService manages monthly per-category budgets.
type BudgetService struct {
	store storage.Store
}

// NewBudgetService creates a new BudgetService with the given storage backend.
func NewBudgetService(store storage.Store) *BudgetService {
	return &BudgetService{store: store}
}

// BudgetInput carries the caller-editable budget fields.
type BudgetInput struct {
	CategoryID int64  `json:"categoryId" validate:"required,gt=0"`
	Month      string `json:"month" validate:"required,datetime=2006-01"`
	Amount     string `json:"amount" validate:"required"`
}

// Create creates a budget owned by ownerID for one of their categories.
func (s *BudgetService) Create(ctx context.Context, ownerID int64, in BudgetInput) (*models.Budget, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, apperr.Validationf("amount", "must be a non-negative decimal number")
	}

	category, err := s.store.GetCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.OwnerID != ownerID {
		return nil, apperr.NotFound("category", in.CategoryID)
	}

	b := &models.Budget{OwnerID: ownerID, CategoryID: in.CategoryID, Month: in.Month, Amount: amount}
	if err := s.store.CreateBudget(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Get retrieves one of the owner's budgets.
func (s *BudgetService) Get(ctx context.Context, ownerID, id int64) (*models.Budget, error) {
	b, err := s.store.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, apperr.NotFound("budget", id)
	}
	return b, nil
}

// List retrieves all budgets owned by the user.
func (s *BudgetService) List(ctx context.Context, ownerID int64) ([]*models.Budget, error) {
	return s.store.ListBudgetsByOwner(ctx, ownerID)
}

// Update rewrites a budget's month and amount.
func (s *BudgetService) Update(ctx context.Context, ownerID, id int64, in BudgetInput) (*models.Budget, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, apperr.Validationf("amount", "must be a non-negative decimal number")
	}

	b, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	b.Month = in.Month
	b.Amount = amount
	if err := s.store.UpdateBudget(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a budget.
func (s *BudgetService) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	return s.store.DeleteBudget(ctx, id)
}
