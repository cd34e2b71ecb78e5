package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
)

// CreateGroup inserts the group and its membership rows in one transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, g *models.Group) error {
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Persistence("begin create group", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO groups (owner_id, title, description, created_at) VALUES (?, ?, ?, ?)",
		g.OwnerID, g.Title, g.Description, g.CreatedAt,
	)
	if err != nil {
		return apperr.Persistence("insert group", err)
	}
	g.ID, err = res.LastInsertId()
	if err != nil {
		return apperr.Persistence("insert group", err)
	}

	for _, userID := range g.MemberIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO group_members (group_id, user_id) VALUES (?, ?)",
			g.ID, userID,
		); err != nil {
			return apperr.Persistence("insert group member", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.Persistence("commit create group", err)
	}
	return nil
}

// GetGroup retrieves a group by id including its membership set.
func (s *SQLiteStore) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	g := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, title, description, created_at FROM groups WHERE id = ?",
		id,
	).Scan(&g.ID, &g.OwnerID, &g.Title, &g.Description, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("group", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get group", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM group_members WHERE group_id = ? ORDER BY user_id",
		id,
	)
	if err != nil {
		return nil, apperr.Persistence("get group members", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, apperr.Persistence("scan group member", err)
		}
		g.MemberIDs = append(g.MemberIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate group members", err)
	}
	return g, nil
}

// ListGroupsByMember retrieves all groups the user belongs to.
func (s *SQLiteStore) ListGroupsByMember(ctx context.Context, userID int64) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = ?
		 ORDER BY g.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, apperr.Persistence("list groups", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Persistence("scan group id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate group ids", err)
	}

	var groups []*models.Group
	for _, id := range ids {
		g, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// UpdateGroup writes title and description and reconciles membership against
// g.MemberIDs as a set difference, removals then additions, in one transaction.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, g *models.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Persistence("begin update group", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE groups SET title = ?, description = ? WHERE id = ?",
		g.Title, g.Description, g.ID,
	)
	if err != nil {
		return apperr.Persistence("update group", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("update group", err)
	}
	if n == 0 {
		return apperr.NotFound("group", g.ID)
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT user_id FROM group_members WHERE group_id = ?",
		g.ID,
	)
	if err != nil {
		return apperr.Persistence("load membership", err)
	}
	existing := make(map[int64]bool)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			rows.Close()
			return apperr.Persistence("scan membership", err)
		}
		existing[userID] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperr.Persistence("iterate membership", err)
	}

	desired := make(map[int64]bool, len(g.MemberIDs))
	for _, userID := range g.MemberIDs {
		desired[userID] = true
	}

	for userID := range existing {
		if !desired[userID] {
			if _, err := tx.ExecContext(ctx,
				"DELETE FROM group_members WHERE group_id = ? AND user_id = ?",
				g.ID, userID,
			); err != nil {
				return apperr.Persistence("remove group member", err)
			}
		}
	}
	for userID := range desired {
		if !existing[userID] {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO group_members (group_id, user_id) VALUES (?, ?)",
				g.ID, userID,
			); err != nil {
				return apperr.Persistence("add group member", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.Persistence("commit update group", err)
	}
	return nil
}

// DeleteGroup removes a group by id; membership rows cascade.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", id)
	if err != nil {
		return apperr.Persistence("delete group", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("delete group", err)
	}
	if n == 0 {
		return apperr.NotFound("group", id)
	}
	return nil
}

// GetGroupMembers returns the current members with display names.
// An unknown group id yields an empty list.
func (s *SQLiteStore) GetGroupMembers(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.id, u.first_name || ' ' || u.last_name
		 FROM group_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.group_id = ?
		 ORDER BY u.id`,
		groupID,
	)
	if err != nil {
		return nil, apperr.Persistence("get group members", err)
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.UserID, &m.FullName); err != nil {
			return nil, apperr.Persistence("scan group member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate group members", err)
	}
	return members, nil
}
