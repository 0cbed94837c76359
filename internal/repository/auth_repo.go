package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
)

// ErrUsernameTaken is returned by Create when the name is already registered.
var ErrUsernameTaken = errors.New("username already taken")

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite { return &UserSQLite{db: db} }

var _ Authorization = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	selectUserSQL = `SELECT id, username, password_hash FROM users WHERE username = ? COLLATE NOCASE`
)

func (r *UserSQLite) Create(ctx context.Context, username, hash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, hash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrUsernameTaken, username)
		}
		return 0, fmt.Errorf("create user %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user %q: read id: %w", username, err)
	}
	return int(id), nil
}

// GetByUsername matches the name case-insensitively. A missing user is (nil, nil).
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	row := r.db.QueryRowContext(ctx, selectUserSQL, username)
	switch err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &u, nil
}

// The sqlite driver reports constraint failures only through the message text.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
