package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ScaleRepo stores the scale catalogue. Names are matched case-insensitively.
type ScaleRepo interface {
	Get(ctx context.Context, name string) (*models.Scale, error)
	List(ctx context.Context) ([]models.Scale, error)
	Save(ctx context.Context, s models.Scale) error
	Seed(ctx context.Context, scales []models.Scale) error
}

// ConversionRepo is the append-only conversion history.
type ConversionRepo interface {
	Append(ctx context.Context, c models.Conversion) error
	List(ctx context.Context, from, to time.Time, direction string) ([]models.Conversion, error)
	Recent(ctx context.Context, limit int) ([]models.Conversion, error)
}

type Repository struct {
	ScaleRepo      ScaleRepo
	ConversionRepo ConversionRepo
	Auth           Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ScaleRepo:      NewScaleSQLite(db),
		ConversionRepo: NewConversionSQLite(db),
		Auth:           NewUserSQLite(db),
	}
}
