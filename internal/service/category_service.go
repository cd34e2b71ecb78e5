package service

import (
	"context"
	"log/slog"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage"
)

// CategoryService manages owner-scoped categories.
type CategoryService struct {
	store storage.Store
}

// NewCategoryService creates a new CategoryService with the given storage backend.
func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

// CategoryInput carries the caller-editable category fields.
type CategoryInput struct {
	Title       string `json:"title" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=3,max=100"`
}

// Create creates a category owned by ownerID.
func (s *CategoryService) Create(ctx context.Context, ownerID int64, in CategoryInput) (*models.Category, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	c := &models.Category{OwnerID: ownerID, Title: in.Title, Description: in.Description}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	slog.Info("category created", "category_id", c.ID, "owner_id", ownerID)
	return c, nil
}

// Get retrieves one of the owner's categories. Another owner's category is
// reported as not found rather than forbidden.
func (s *CategoryService) Get(ctx context.Context, ownerID, id int64) (*models.Category, error) {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, apperr.NotFound("category", id)
	}
	return c, nil
}

// List retrieves all categories owned by the user.
func (s *CategoryService) List(ctx context.Context, ownerID int64) ([]*models.Category, error) {
	return s.store.ListCategoriesByOwner(ctx, ownerID)
}

// Update rewrites a category's title and description.
func (s *CategoryService) Update(ctx context.Context, ownerID, id int64, in CategoryInput) (*models.Category, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	c, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	c.Title = in.Title
	c.Description = in.Description
	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category unless a transaction or budget still references it.
func (s *CategoryService) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	inUse, err := s.store.CategoryInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperr.Conflictf("category is referenced by transactions or budgets and cannot be deleted")
	}
	return s.store.DeleteCategory(ctx, id)
}
