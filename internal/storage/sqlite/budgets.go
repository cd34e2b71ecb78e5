package sqlite

import (
	"context"
	"database/sql"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
)

// CreateBudget inserts a new budget and populates its ID.
func (s *SQLiteStore) CreateBudget(ctx context.Context, b *models.Budget) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO budgets (owner_id, category_id, month, amount_cents) VALUES (?, ?, ?, ?)",
		b.OwnerID, b.CategoryID, b.Month, int64(b.Amount),
	)
	if err != nil {
		return apperr.Persistence("create budget", err)
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return apperr.Persistence("create budget", err)
	}
	return nil
}

// GetBudget retrieves a budget by id.
func (s *SQLiteStore) GetBudget(ctx context.Context, id int64) (*models.Budget, error) {
	b := &models.Budget{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, category_id, month, amount_cents FROM budgets WHERE id = ?",
		id,
	).Scan(&b.ID, &b.OwnerID, &b.CategoryID, &b.Month, &b.Amount)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("budget", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get budget", err)
	}
	return b, nil
}

// ListBudgetsByOwner retrieves all budgets owned by the user, newest month first.
func (s *SQLiteStore) ListBudgetsByOwner(ctx context.Context, ownerID int64) ([]*models.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, category_id, month, amount_cents FROM budgets WHERE owner_id = ? ORDER BY month DESC",
		ownerID,
	)
	if err != nil {
		return nil, apperr.Persistence("list budgets", err)
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		b := &models.Budget{}
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.CategoryID, &b.Month, &b.Amount); err != nil {
			return nil, apperr.Persistence("scan budget", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate budgets", err)
	}
	return budgets, nil
}

// UpdateBudget writes month and amount for an existing budget.
func (s *SQLiteStore) UpdateBudget(ctx context.Context, b *models.Budget) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE budgets SET month = ?, amount_cents = ? WHERE id = ?",
		b.Month, int64(b.Amount), b.ID,
	)
	if err != nil {
		return apperr.Persistence("update budget", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("update budget", err)
	}
	if n == 0 {
		return apperr.NotFound("budget", b.ID)
	}
	return nil
}

// DeleteBudget removes a budget by id.
func (s *SQLiteStore) DeleteBudget(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM budgets WHERE id = ?", id)
	if err != nil {
		return apperr.Persistence("delete budget", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("delete budget", err)
	}
	if n == 0 {
		return apperr.NotFound("budget", id)
	}
	return nil
}
