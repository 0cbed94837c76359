package service

import (
	"context"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"

	"github.com/shopspring/decimal"
)

const (
	msgScaleRequired       = "Scale must not be null."
	msgOutputRequired      = "Output measurement must not be null."
	msgBothDimensionSets   = "Value to calculate has both full size and model dimensions."
	msgNoDimensionSet      = "Must supply either full size or model dimensions."
	msgInvalidMeasurement  = "%s is not a valid measurement."
	msgInvalidScaleName    = "%s is not a valid Scale name."
	msgInvalidScaleFactor  = "Scale factor must be greater than zero."
	msgInvalidCustomScale  = "Scale name must be 1-16 letters or digits."
	msgBuiltinScaleChanged = "%s is a built-in scale and cannot be changed."
)

// ScalerService converts every supplied dimension to millimeters, scales it,
// then converts it to the output unit.
type ScalerService struct {
	catalog Catalog
}

func NewScalerService(catalog Catalog) *ScalerService {
	return &ScalerService{catalog: catalog}
}

var _ Scaler = (*ScalerService)(nil)

// SupplyMissingFields validates data and fills in the dimension set that is absent.
// Full size values are divided by the scale factor, model values multiplied by it.
func (s *ScalerService) SupplyMissingFields(ctx context.Context, data models.ScaleData) (models.ScaleData, error) {
	if data.Scale == "" {
		return models.ScaleData{}, invalid(msgScaleRequired)
	}
	if data.OutputMeasurement == "" {
		return models.ScaleData{}, invalid(msgOutputRequired)
	}
	if !data.OutputMeasurement.Valid() {
		return models.ScaleData{}, invalidf(msgInvalidMeasurement, data.OutputMeasurement)
	}

	direction, err := DirectionOf(data)
	if err != nil {
		return models.ScaleData{}, err
	}

	scale, err := s.catalog.Resolve(ctx, data.Scale)
	if err != nil {
		return models.ScaleData{}, err
	}

	out := models.ScaleData{
		Scale:             scale.Name,
		OutputMeasurement: data.OutputMeasurement,
	}

	switch direction {
	case models.DirectionFullsizeToModel:
		in, err := normalize(data.FullsizeDimensions)
		if err != nil {
			return models.ScaleData{}, err
		}
		out.FullsizeDimensions = in
		out.ModelDimensions = scaleDimensions(in, scale.Factor, data.OutputMeasurement, divideByScale)
	default:
		in, err := normalize(data.ModelDimensions)
		if err != nil {
			return models.ScaleData{}, err
		}
		out.ModelDimensions = in
		out.FullsizeDimensions = scaleDimensions(in, scale.Factor, data.OutputMeasurement, multiplyByScale)
	}

	return out, nil
}

// DirectionOf tells which way data is to be scaled. Exactly one of its
// dimension sets must carry a value.
func DirectionOf(data models.ScaleData) (models.Direction, error) {
	hasFullsize := models.HasValue(data.FullsizeDimensions)
	hasModel := models.HasValue(data.ModelDimensions)

	switch {
	case hasFullsize && hasModel:
		return "", invalid(msgBothDimensionSets)
	case hasFullsize:
		return models.DirectionFullsizeToModel, nil
	case hasModel:
		return models.DirectionModelToFullsize, nil
	default:
		return "", invalid(msgNoDimensionSet)
	}
}

type scaleOp func(millimeters, factor decimal.Decimal) decimal.Decimal

func divideByScale(mm, factor decimal.Decimal) decimal.Decimal {
	return mm.DivRound(factor, models.IntermediatePlaces)
}

func multiplyByScale(mm, factor decimal.Decimal) decimal.Decimal {
	return mm.Mul(factor)
}

// normalize checks every present dimension and returns a copy rounded to output precision.
func normalize(in *models.Dimensions) (*models.Dimensions, error) {
	out := &models.Dimensions{}
	for _, slot := range []struct {
		src *models.Dimension
		dst **models.Dimension
	}{
		{in.Length, &out.Length},
		{in.Width, &out.Width},
		{in.Height, &out.Height},
	} {
		if slot.src == nil {
			continue
		}
		if slot.src.Measurement == "" {
			return nil, invalid(models.ErrMeasurementRequired.Error())
		}
		if !slot.src.Measurement.Valid() {
			return nil, invalidf(msgInvalidMeasurement, slot.src.Measurement)
		}
		d := models.NewDimension(slot.src.Value, slot.src.Measurement)
		*slot.dst = &d
	}
	return out, nil
}

func scaleDimensions(in *models.Dimensions, factor decimal.Decimal, unit models.Unit, op scaleOp) *models.Dimensions {
	return &models.Dimensions{
		Length: scaleDimension(in.Length, factor, unit, op),
		Width:  scaleDimension(in.Width, factor, unit, op),
		Height: scaleDimension(in.Height, factor, unit, op),
	}
}

func scaleDimension(d *models.Dimension, factor decimal.Decimal, unit models.Unit, op scaleOp) *models.Dimension {
	if d == nil {
		return nil
	}
	scaled := op(toMillimeters(*d), factor)
	out := models.NewDimension(fromMillimeters(scaled, unit), unit)
	return &out
}

func toMillimeters(d models.Dimension) decimal.Decimal {
	if d.Measurement == models.UnitMM {
		return d.Value
	}
	return d.Value.Mul(d.Measurement.MillimetersPer())
}

func fromMillimeters(mm decimal.Decimal, unit models.Unit) decimal.Decimal {
	if unit == models.UnitMM {
		return mm
	}
	return mm.DivRound(unit.MillimetersPer(), models.IntermediatePlaces)
}
