package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"

	"github.com/shopspring/decimal"
)

type ScaleSQLite struct {
	db *sql.DB
}

func NewScaleSQLite(db *sql.DB) *ScaleSQLite {
	return &ScaleSQLite{db: db}
}

var _ ScaleRepo = (*ScaleSQLite)(nil)

const (
	selectScaleSQL = `SELECT name, factor, builtin FROM scales WHERE name = ? COLLATE NOCASE`

	selectScalesSQL = `SELECT name, factor, builtin FROM scales ORDER BY CAST(factor AS REAL) ASC, name ASC`

	upsertScaleSQL = `
		INSERT INTO scales (name, factor, builtin)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			factor=excluded.factor,
			builtin=excluded.builtin
	`

	seedScaleSQL = `INSERT INTO scales (name, factor, builtin) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScale(row rowScanner) (models.Scale, error) {
	var (
		s      models.Scale
		factor string
	)
	if err := row.Scan(&s.Name, &factor, &s.Builtin); err != nil {
		return models.Scale{}, err
	}
	f, err := decimal.NewFromString(factor)
	if err != nil {
		return models.Scale{}, fmt.Errorf("scale %q has invalid factor %q: %w", s.Name, factor, err)
	}
	s.Factor = f
	return s, nil
}

// Get returns the named scale, or (nil, nil) if there is none.
func (r *ScaleSQLite) Get(ctx context.Context, name string) (*models.Scale, error) {
	s, err := scanScale(r.db.QueryRowContext(ctx, selectScaleSQL, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select scale %q: %w", name, err)
	}
	return &s, nil
}

// List returns the catalogue ordered from largest to smallest model (ascending factor).
func (r *ScaleSQLite) List(ctx context.Context) ([]models.Scale, error) {
	rows, err := r.db.QueryContext(ctx, selectScalesSQL)
	if err != nil {
		return nil, fmt.Errorf("select scales: %w", err)
	}
	defer rows.Close()

	out := make([]models.Scale, 0, len(models.BuiltinScales))
	for rows.Next() {
		s, err := scanScale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save inserts the scale or replaces the factor of an existing one.
func (r *ScaleSQLite) Save(ctx context.Context, s models.Scale) error {
	if _, err := r.db.ExecContext(ctx, upsertScaleSQL, s.Name, s.Factor.String(), s.Builtin); err != nil {
		return fmt.Errorf("save scale %q: %w", s.Name, err)
	}
	return nil
}

// Seed inserts the given scales, leaving existing rows untouched.
func (r *ScaleSQLite) Seed(ctx context.Context, scales []models.Scale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range scales {
		if _, err := tx.ExecContext(ctx, seedScaleSQL, s.Name, s.Factor.String(), s.Builtin); err != nil {
			return fmt.Errorf("seed scale %q: %w", s.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
