package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
	"github.com/DrOldGuy/model-railroad-scaler/internal/repository"

	"github.com/google/uuid"
)

type HistoryService struct {
	conversionRepo repository.ConversionRepo
	now            func() time.Time
}

func NewHistoryService(conversionRepo repository.ConversionRepo) *HistoryService {
	return &HistoryService{conversionRepo: conversionRepo, now: time.Now}
}

var _ History = (*HistoryService)(nil)

var (
	errInvalidTimeRange = &ValidationError{Message: "invalid time range: from must be <= to"}
	errInvalidDirection = &ValidationError{Message: "invalid direction: want FULLSIZE_TO_MODEL or MODEL_TO_FULLSIZE"}
)

// Record stores a completed conversion. request is what the caller sent and
// response what was returned to them.
func (s *HistoryService) Record(ctx context.Context, request, response models.ScaleData) (models.Conversion, error) {
	direction, err := DirectionOf(request)
	if err != nil {
		return models.Conversion{}, err
	}

	c := models.Conversion{
		ID:                uuid.NewString(),
		OccurredAt:        s.now().UTC().Truncate(time.Second),
		Scale:             response.Scale,
		Direction:         direction,
		OutputMeasurement: response.OutputMeasurement,
	}
	if direction == models.DirectionFullsizeToModel {
		c.Input, c.Output = deref(response.FullsizeDimensions), deref(response.ModelDimensions)
	} else {
		c.Input, c.Output = deref(response.ModelDimensions), deref(response.FullsizeDimensions)
	}

	if err := s.conversionRepo.Append(ctx, c); err != nil {
		return models.Conversion{}, fmt.Errorf("append conversion: %w", err)
	}
	return c, nil
}

func (s *HistoryService) ListConversions(ctx context.Context, f ConversionFilter) ([]models.Conversion, error) {
	from, to, direction, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.conversionRepo.List(ctx, from, to, direction)
}

func (s *HistoryService) RecentConversions(ctx context.Context, limit int) ([]models.Conversion, error) {
	return s.conversionRepo.Recent(ctx, limit)
}

func deref(d *models.Dimensions) models.Dimensions {
	if d == nil {
		return models.Dimensions{}
	}
	return *d
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeDirection(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range and direction.
func normalizeAndValidateFilter(f ConversionFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	direction := normalizeDirection(f.Direction)
	switch models.Direction(direction) {
	case "", models.DirectionFullsizeToModel, models.DirectionModelToFullsize:
	default:
		return time.Time{}, time.Time{}, "", errInvalidDirection
	}
	return from, to, direction, nil
}
