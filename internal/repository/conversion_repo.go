package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"

	"github.com/google/uuid"
)

type ConversionSQLite struct {
	db *sql.DB
}

func NewConversionSQLite(db *sql.DB) *ConversionSQLite { return &ConversionSQLite{db: db} }

var _ ConversionRepo = (*ConversionSQLite)(nil)

// SQLite TIMESTAMP text format; comparisons in List rely on it sorting lexically.
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertConversionSQL = `
		INSERT INTO conversions (id, occurred_at, scale, direction, output_measurement, input, output)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectConversionsSQL = `SELECT id, occurred_at, scale, direction, output_measurement, input, output FROM conversions`

	// occurred_at has one-second resolution; rowid keeps insertion order within a second.
	listOrderSQL   = ` ORDER BY occurred_at ASC, rowid ASC`
	recentOrderSQL = ` ORDER BY occurred_at DESC, rowid DESC LIMIT ?`
)

// Append inserts a conversion. If ID or OccurredAt are empty, they’re set.
func (r *ConversionSQLite) Append(ctx context.Context, c models.Conversion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.OccurredAt.IsZero() {
		c.OccurredAt = time.Now().UTC()
	}

	input, err := json.Marshal(c.Input)
	if err != nil {
		return fmt.Errorf("marshal conversion input: %w", err)
	}
	output, err := json.Marshal(c.Output)
	if err != nil {
		return fmt.Errorf("marshal conversion output: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertConversionSQL,
		c.ID,
		c.OccurredAt.UTC().Format(sqliteTimeLayout),
		c.Scale,
		string(c.Direction),
		string(c.OutputMeasurement),
		string(input),
		string(output),
	)
	return err
}

// List returns conversions filtered by [from, to] (inclusive) and/or direction, ordered ASC.
func (r *ConversionSQLite) List(ctx context.Context, from, to time.Time, direction string) ([]models.Conversion, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimeLayout))
	}
	if direction = strings.ToUpper(strings.TrimSpace(direction)); direction != "" {
		conds = append(conds, "direction = ?")
		args = append(args, direction)
	}

	q := selectConversionsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += listOrderSQL

	return r.query(ctx, q, args...)
}

// Recent returns the newest conversions first, at most limit of them.
func (r *ConversionSQLite) Recent(ctx context.Context, limit int) ([]models.Conversion, error) {
	if limit <= 0 {
		return []models.Conversion{}, nil
	}
	return r.query(ctx, selectConversionsSQL+recentOrderSQL, limit)
}

func (r *ConversionSQLite) query(ctx context.Context, q string, args ...any) ([]models.Conversion, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Conversion, 0, 64)
	for rows.Next() {
		var (
			c             models.Conversion
			direction     string
			unit          string
			input, output string
		)
		if err := rows.Scan(&c.ID, &c.OccurredAt, &c.Scale, &direction, &unit, &input, &output); err != nil {
			return nil, err
		}
		c.OccurredAt = c.OccurredAt.UTC()
		c.Direction = models.Direction(direction)
		c.OutputMeasurement = models.Unit(unit)
		if err := json.Unmarshal([]byte(input), &c.Input); err != nil {
			return nil, fmt.Errorf("conversion %s: decode input: %w", c.ID, err)
		}
		if err := json.Unmarshal([]byte(output), &c.Output); err != nil {
			return nil, fmt.Errorf("conversion %s: decode output: %w", c.ID, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
