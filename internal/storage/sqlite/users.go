package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
)

// CreateUser inserts a new user and populates its ID.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, first_name, last_name, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return apperr.Persistence("create user", err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return apperr.Persistence("create user", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email. Returns nil, nil when not found.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, password_hash, created_at
		 FROM users WHERE email = ?`,
		email,
	).Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Persistence("get user by email", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by id.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, password_hash, created_at
		 FROM users WHERE id = ?`,
		id,
	).Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("user", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get user by id", err)
	}
	return user, nil
}
