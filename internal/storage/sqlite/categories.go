package sqlite

import (
	"context"
	"database/sql"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
)

// CreateCategory inserts a new category and populates its ID.
func (s *SQLiteStore) CreateCategory(ctx context.Context, c *models.Category) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (owner_id, title, description) VALUES (?, ?, ?)",
		c.OwnerID, c.Title, c.Description,
	)
	if err != nil {
		return apperr.Persistence("create category", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return apperr.Persistence("create category", err)
	}
	return nil
}

// GetCategory retrieves a category by id.
func (s *SQLiteStore) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, title, description FROM categories WHERE id = ?",
		id,
	).Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("category", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get category", err)
	}
	return c, nil
}

// ListCategoriesByOwner retrieves all categories owned by the user.
func (s *SQLiteStore) ListCategoriesByOwner(ctx context.Context, ownerID int64) ([]*models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, title, description FROM categories WHERE owner_id = ? ORDER BY title",
		ownerID,
	)
	if err != nil {
		return nil, apperr.Persistence("list categories", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description); err != nil {
			return nil, apperr.Persistence("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate categories", err)
	}
	return categories, nil
}

// UpdateCategory writes title and description for an existing category.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, c *models.Category) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET title = ?, description = ? WHERE id = ?",
		c.Title, c.Description, c.ID,
	)
	if err != nil {
		return apperr.Persistence("update category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("update category", err)
	}
	if n == 0 {
		return apperr.NotFound("category", c.ID)
	}
	return nil
}

// DeleteCategory removes a category by id. Reference checks happen in the
// service layer before this is called.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return apperr.Persistence("delete category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("delete category", err)
	}
	if n == 0 {
		return apperr.NotFound("category", id)
	}
	return nil
}

// CategoryInUse reports whether any transaction or budget references the category.
func (s *SQLiteStore) CategoryInUse(ctx context.Context, id int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM transactions WHERE category_id = ?)
		      + (SELECT COUNT(*) FROM budgets WHERE category_id = ?)`,
		id, id,
	).Scan(&n)
	if err != nil {
		return false, apperr.Persistence("check category references", err)
	}
	return n > 0, nil
}
