// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"
)

// SplitShare is one beneficiary's computed share of a split expense,
// as handed to the store for persistence.
type SplitShare struct {
	BeneficiaryID int64
	Amount        money.Cents
}

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new user; the ID field is populated by the store.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil, nil when no user has the given email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// CategoryStore persists categories.
type CategoryStore interface {
	CreateCategory(ctx context.Context, c *models.Category) error
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	ListCategoriesByOwner(ctx context.Context, ownerID int64) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	// CategoryInUse reports whether any transaction or budget references the
	// category. Checked by the service before a delete.
	CategoryInUse(ctx context.Context, id int64) (bool, error)
}

// BudgetStore persists budgets.
type BudgetStore interface {
	CreateBudget(ctx context.Context, b *models.Budget) error
	GetBudget(ctx context.Context, id int64) (*models.Budget, error)
	ListBudgetsByOwner(ctx context.Context, ownerID int64) ([]*models.Budget, error)
	UpdateBudget(ctx context.Context, b *models.Budget) error
	DeleteBudget(ctx context.Context, id int64) error
}

// TransactionStore persists personal transactions.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, categoryID int64) ([]*models.Transaction, error)
	UpdateTransaction(ctx context.Context, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error

	// MonthlySummary returns per-month income and expense totals across all of
	// the owner's categories for the given year, months with activity only.
	MonthlySummary(ctx context.Context, ownerID int64, year int) ([]models.MonthlySummary, error)
}

// GroupStore persists groups and their membership sets.
type GroupStore interface {
	// CreateGroup inserts the group and its membership rows atomically.
	CreateGroup(ctx context.Context, g *models.Group) error

	GetGroup(ctx context.Context, id int64) (*models.Group, error)
	ListGroupsByMember(ctx context.Context, userID int64) ([]*models.Group, error)

	// UpdateGroup writes title and description and reconciles the membership
	// set against g.MemberIDs (removals then additions) in one transaction.
	UpdateGroup(ctx context.Context, g *models.Group) error

	DeleteGroup(ctx context.Context, id int64) error

	// GetGroupMembers returns the current members with display names.
	// An unknown group id yields an empty list, not an error.
	GetGroupMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error)
}

// SplitStore persists split-expense rows and their aggregates.
type SplitStore interface {
	// CreateSplitExpense inserts the parent transaction and one split row per
	// share as a single transaction: on any failure nothing persists. It also
	// verifies, inside the same transaction, that the payer and every
	// beneficiary are current members of the group. Returns the created split
	// row ids in share order; parent.ID is populated.
	CreateSplitExpense(ctx context.Context, groupID int64, parent *models.Transaction, payerID int64, shares []SplitShare) ([]int64, error)

	ListSplitsByGroup(ctx context.Context, groupID int64) ([]*models.GroupTransaction, error)

	// SumSplitAmountsByPayer returns userID -> total of split amounts where
	// that user is the payer, for the given group.
	SumSplitAmountsByPayer(ctx context.Context, groupID int64) (map[int64]money.Cents, error)

	// SumSplitAmountsByBeneficiary is the beneficiary-side counterpart.
	SumSplitAmountsByBeneficiary(ctx context.Context, groupID int64) (map[int64]money.Cents, error)

	// HasSplitActivity reports whether the user appears as payer or
	// beneficiary in any split row of the group.
	HasSplitActivity(ctx context.Context, groupID, userID int64) (bool, error)

	// GroupHasSplits reports whether the group has any split rows at all.
	GroupHasSplits(ctx context.Context, groupID int64) (bool, error)
}

// Store is the full persistence contract. The single implementation is
// sqlite-backed; the abstraction keeps the service layer free of SQL and lets
// tests substitute failing stores.
type Store interface {
	UserStore
	CategoryStore
	BudgetStore
	TransactionStore
	GroupStore
	SplitStore

	// Close releases any resources held by the store.
	Close() error
}
