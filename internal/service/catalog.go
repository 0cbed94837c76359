package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
	"github.com/DrOldGuy/model-railroad-scaler/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrBuiltinScale is returned when a caller tries to redefine a built-in scale.
var ErrBuiltinScale = errors.New("built-in scale cannot be changed")

var customScaleName = regexp.MustCompile(`^[A-Za-z0-9]{1,16}$`)

const ratioPrefix = "1:"

type CatalogService struct {
	scaleRepo repository.ScaleRepo
}

func NewCatalogService(scaleRepo repository.ScaleRepo) *CatalogService {
	return &CatalogService{scaleRepo: scaleRepo}
}

var _ Catalog = (*CatalogService)(nil)

// Resolve accepts a catalogue name in any case, or a ratio such as "1:87".
func (s *CatalogService) Resolve(ctx context.Context, name string) (models.Scale, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Scale{}, invalid(msgScaleRequired)
	}

	if rest, ok := strings.CutPrefix(name, ratioPrefix); ok {
		factor, err := decimal.NewFromString(strings.TrimSpace(rest))
		if err != nil || !factor.IsPositive() {
			return models.Scale{}, invalidf(msgInvalidScaleName, name)
		}
		return models.Scale{Name: ratioPrefix + factor.String(), Factor: factor}, nil
	}

	scale, err := s.scaleRepo.Get(ctx, name)
	if err != nil {
		return models.Scale{}, fmt.Errorf("resolve scale: %w", err)
	}
	if scale == nil {
		return models.Scale{}, invalidf(msgInvalidScaleName, name)
	}
	return *scale, nil
}

func (s *CatalogService) ListScales(ctx context.Context) ([]models.Scale, error) {
	return s.scaleRepo.List(ctx)
}

// AddScale creates a custom scale or changes the factor of an existing custom one.
func (s *CatalogService) AddScale(ctx context.Context, name string, factor decimal.Decimal) (models.Scale, error) {
	name = strings.TrimSpace(name)
	if !customScaleName.MatchString(name) {
		return models.Scale{}, invalid(msgInvalidCustomScale)
	}
	if !factor.IsPositive() {
		return models.Scale{}, invalid(msgInvalidScaleFactor)
	}

	existing, err := s.scaleRepo.Get(ctx, name)
	if err != nil {
		return models.Scale{}, fmt.Errorf("lookup scale: %w", err)
	}
	if existing != nil {
		if existing.Builtin {
			return models.Scale{}, fmt.Errorf("%w: "+msgBuiltinScaleChanged, ErrBuiltinScale, existing.Name)
		}
		// keep the spelling the scale was created with
		name = existing.Name
	}

	scale := models.Scale{Name: name, Factor: factor}
	if err := s.scaleRepo.Save(ctx, scale); err != nil {
		return models.Scale{}, err
	}
	return scale, nil
}

// SeedScales makes sure every built-in scale is present. Existing rows are left alone.
func (s *CatalogService) SeedScales(ctx context.Context) error {
	return s.scaleRepo.Seed(ctx, models.BuiltinScales)
}
