package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
)

// CreateTransaction inserts a new transaction and populates its ID.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO transactions (category_id, type, tx_date, amount_cents, notes) VALUES (?, ?, ?, ?, ?)",
		t.CategoryID, string(t.Type), t.Date, int64(t.Amount), t.Notes,
	)
	if err != nil {
		return apperr.Persistence("create transaction", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return apperr.Persistence("create transaction", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by id.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, category_id, type, tx_date, amount_cents, notes FROM transactions WHERE id = ?",
		id,
	).Scan(&t.ID, &t.CategoryID, &t.Type, &t.Date, &t.Amount, &t.Notes)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("transaction", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get transaction", err)
	}
	return t, nil
}

// ListTransactionsByCategory retrieves a category's transactions, newest first.
func (s *SQLiteStore) ListTransactionsByCategory(ctx context.Context, categoryID int64) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, category_id, type, tx_date, amount_cents, notes FROM transactions WHERE category_id = ? ORDER BY tx_date DESC, id DESC",
		categoryID,
	)
	if err != nil {
		return nil, apperr.Persistence("list transactions", err)
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Type, &t.Date, &t.Amount, &t.Notes); err != nil {
			return nil, apperr.Persistence("scan transaction", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate transactions", err)
	}
	return txs, nil
}

// UpdateTransaction writes type, date, amount and notes for an existing transaction.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET type = ?, tx_date = ?, amount_cents = ?, notes = ? WHERE id = ?",
		string(t.Type), t.Date, int64(t.Amount), t.Notes, t.ID,
	)
	if err != nil {
		return apperr.Persistence("update transaction", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("update transaction", err)
	}
	if n == 0 {
		return apperr.NotFound("transaction", t.ID)
	}
	return nil
}

// DeleteTransaction removes a transaction by id. Split rows referencing it are
// removed by the schema's cascade.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return apperr.Persistence("delete transaction", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("delete transaction", err)
	}
	if n == 0 {
		return apperr.NotFound("transaction", id)
	}
	return nil
}

// MonthlySummary returns per-month income and expense totals for the owner's
// categories in the given year. Months without activity are omitted.
func (s *SQLiteStore) MonthlySummary(ctx context.Context, ownerID int64, year int) ([]models.MonthlySummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT substr(t.tx_date, 1, 7) AS month,
		        COALESCE(SUM(CASE WHEN t.type = 'Income' THEN t.amount_cents ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN t.type = 'Expense' THEN t.amount_cents ELSE 0 END), 0)
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 WHERE c.owner_id = ? AND substr(t.tx_date, 1, 4) = ?
		 GROUP BY month
		 ORDER BY month`,
		ownerID, fmt.Sprintf("%04d", year),
	)
	if err != nil {
		return nil, apperr.Persistence("monthly summary", err)
	}
	defer rows.Close()

	var summaries []models.MonthlySummary
	for rows.Next() {
		var m models.MonthlySummary
		if err := rows.Scan(&m.Month, &m.Income, &m.Expense); err != nil {
			return nil, apperr.Persistence("scan monthly summary", err)
		}
		summaries = append(summaries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate monthly summary", err)
	}
	return summaries, nil
}
