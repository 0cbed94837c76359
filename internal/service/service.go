package service

import (
	"context"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
	"github.com/DrOldGuy/model-railroad-scaler/internal/repository"

	"github.com/shopspring/decimal"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Scaler computes the dimension set a caller left out.
type Scaler interface {
	SupplyMissingFields(ctx context.Context, data models.ScaleData) (models.ScaleData, error)
}

// Catalog resolves scale names and manages custom scales.
type Catalog interface {
	Resolve(ctx context.Context, name string) (models.Scale, error)
	ListScales(ctx context.Context) ([]models.Scale, error)
	AddScale(ctx context.Context, name string, factor decimal.Decimal) (models.Scale, error)
	SeedScales(ctx context.Context) error
}

// History records completed conversions and gives read access to them.
type History interface {
	Record(ctx context.Context, request, response models.ScaleData) (models.Conversion, error)
	ListConversions(ctx context.Context, f ConversionFilter) ([]models.Conversion, error)
	RecentConversions(ctx context.Context, limit int) ([]models.Conversion, error)
}

// ConversionFilter narrows the history by time range and direction.
type ConversionFilter struct {
	From      time.Time // inclusive; zero means no lower bound
	To        time.Time // inclusive; zero means no upper bound
	Direction string    // "", "FULLSIZE_TO_MODEL" or "MODEL_TO_FULLSIZE"
}

// AuthConfig carries the token settings read from configuration.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Scaler
	Catalog
	History
	Authorization
}

func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	catalog := NewCatalogService(repos.ScaleRepo)
	return &Service{
		Scaler:        NewScalerService(catalog),
		Catalog:       catalog,
		History:       NewHistoryService(repos.ConversionRepo),
		Authorization: NewAuthService(repos.Auth, auth),
	}
}
