package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newUserRepo(t *testing.T) (*UserSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewUserSQLite(db), mock
}

func TestUserSQLite_Create(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("yardmaster", "$2a$hash").
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := repo.Create(context.Background(), "yardmaster", "$2a$hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 12 {
		t.Fatalf("id=%d, want 12", id)
	}
}

func TestUserSQLite_CreateDuplicate(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("yardmaster", "h").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))

	_, err := repo.Create(context.Background(), "yardmaster", "h")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserSQLite_CreateFailures(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no id")))

	for _, want := range []string{"disk I/O error", "read id"} {
		_, err := repo.Create(context.Background(), "u", "h")
		if err == nil || errors.Is(err, ErrUsernameTaken) || !regexp.MustCompile(want).MatchString(err.Error()) {
			t.Fatalf("expected %q error, got %v", want, err)
		}
	}
}

func TestUserSQLite_GetByUsername(t *testing.T) {
	repo, mock := newUserRepo(t)
	q := regexp.QuoteMeta(selectUserSQL)
	mock.ExpectQuery(q).WithArgs("Conductor").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(3, "conductor", "h"))
	mock.ExpectQuery(q).WithArgs("nobody").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(q).WithArgs("broken").WillReturnError(errors.New("database is locked"))

	u, err := repo.GetByUsername(context.Background(), "Conductor")
	if err != nil || u == nil || u.ID != 3 || u.Username != "conductor" || u.PasswordHash != "h" {
		t.Fatalf("unexpected user %+v err %v", u, err)
	}

	u, err = repo.GetByUsername(context.Background(), "nobody")
	if err != nil || u != nil {
		t.Fatalf("missing user: got %+v, %v", u, err)
	}

	if _, err := repo.GetByUsername(context.Background(), "broken"); err == nil {
		t.Fatalf("expected error")
	}
}
