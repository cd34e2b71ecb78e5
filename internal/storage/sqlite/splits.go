package sqlite

import (
	"context"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/money"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/storage"
)

// CreateSplitExpense inserts the parent transaction and one split row per
// share as a single atomic unit. Membership of the payer and every
// beneficiary is re-checked inside the transaction so a concurrent membership
// update cannot leave a split row pointing at a removed member.
func (s *SQLiteStore) CreateSplitExpense(ctx context.Context, groupID int64, parent *models.Transaction, payerID int64, shares []storage.SplitShare) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Persistence("begin split expense", err)
	}
	defer tx.Rollback()

	memberOf := func(userID int64) (bool, error) {
		var n int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM group_members WHERE group_id = ? AND user_id = ?",
			groupID, userID,
		).Scan(&n)
		return n > 0, err
	}

	ok, err := memberOf(payerID)
	if err != nil {
		return nil, apperr.Persistence("check payer membership", err)
	}
	if !ok {
		return nil, apperr.Conflictf("payer %d is not a member of group %d", payerID, groupID)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO transactions (category_id, type, tx_date, amount_cents, notes) VALUES (?, ?, ?, ?, ?)",
		parent.CategoryID, string(parent.Type), parent.Date, int64(parent.Amount), parent.Notes,
	)
	if err != nil {
		return nil, apperr.Persistence("insert parent transaction", err)
	}
	parentID, err := res.LastInsertId()
	if err != nil {
		return nil, apperr.Persistence("insert parent transaction", err)
	}

	splitIDs := make([]int64, 0, len(shares))
	for _, share := range shares {
		ok, err := memberOf(share.BeneficiaryID)
		if err != nil {
			return nil, apperr.Persistence("check beneficiary membership", err)
		}
		if !ok {
			return nil, apperr.Conflictf("beneficiary %d is not a member of group %d", share.BeneficiaryID, groupID)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO group_transactions (group_id, transaction_id, payer_id, beneficiary_id, tx_date, amount_cents, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			groupID, parentID, payerID, share.BeneficiaryID, parent.Date, int64(share.Amount), parent.Notes,
		)
		if err != nil {
			return nil, apperr.Persistence("insert split row", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, apperr.Persistence("insert split row", err)
		}
		splitIDs = append(splitIDs, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Persistence("commit split expense", err)
	}

	parent.ID = parentID
	return splitIDs, nil
}

// ListSplitsByGroup retrieves a group's split rows, newest first.
func (s *SQLiteStore) ListSplitsByGroup(ctx context.Context, groupID int64) ([]*models.GroupTransaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, transaction_id, payer_id, beneficiary_id, tx_date, amount_cents, notes
		 FROM group_transactions WHERE group_id = ? ORDER BY tx_date DESC, id DESC`,
		groupID,
	)
	if err != nil {
		return nil, apperr.Persistence("list splits", err)
	}
	defer rows.Close()

	var splits []*models.GroupTransaction
	for rows.Next() {
		gt := &models.GroupTransaction{}
		if err := rows.Scan(&gt.ID, &gt.GroupID, &gt.TransactionID, &gt.PayerID, &gt.BeneficiaryID, &gt.Date, &gt.Amount, &gt.Notes); err != nil {
			return nil, apperr.Persistence("scan split", err)
		}
		splits = append(splits, gt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate splits", err)
	}
	return splits, nil
}

// SumSplitAmountsByPayer returns userID -> summed split amounts where that
// user is the payer.
func (s *SQLiteStore) SumSplitAmountsByPayer(ctx context.Context, groupID int64) (map[int64]money.Cents, error) {
	return s.sumSplitAmounts(ctx, groupID, "payer_id")
}

// SumSplitAmountsByBeneficiary returns userID -> summed split amounts where
// that user is the beneficiary.
func (s *SQLiteStore) SumSplitAmountsByBeneficiary(ctx context.Context, groupID int64) (map[int64]money.Cents, error) {
	return s.sumSplitAmounts(ctx, groupID, "beneficiary_id")
}

func (s *SQLiteStore) sumSplitAmounts(ctx context.Context, groupID int64, column string) (map[int64]money.Cents, error) {
	// column is one of two compile-time constants, never user input.
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+column+", SUM(amount_cents) FROM group_transactions WHERE group_id = ? GROUP BY "+column,
		groupID,
	)
	if err != nil {
		return nil, apperr.Persistence("sum split amounts", err)
	}
	defer rows.Close()

	totals := make(map[int64]money.Cents)
	for rows.Next() {
		var userID int64
		var total money.Cents
		if err := rows.Scan(&userID, &total); err != nil {
			return nil, apperr.Persistence("scan split total", err)
		}
		totals[userID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate split totals", err)
	}
	return totals, nil
}

// HasSplitActivity reports whether the user appears as payer or beneficiary
// in any split row of the group.
func (s *SQLiteStore) HasSplitActivity(ctx context.Context, groupID, userID int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM group_transactions WHERE group_id = ? AND (payer_id = ? OR beneficiary_id = ?)",
		groupID, userID, userID,
	).Scan(&n)
	if err != nil {
		return false, apperr.Persistence("check split activity", err)
	}
	return n > 0, nil
}

// GroupHasSplits reports whether the group has any split rows.
func (s *SQLiteStore) GroupHasSplits(ctx context.Context, groupID int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM group_transactions WHERE group_id = ?",
		groupID,
	).Scan(&n)
	if err != nil {
		return false, apperr.Persistence("check group splits", err)
	}
	return n > 0, nil
}
