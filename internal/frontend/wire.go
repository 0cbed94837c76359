package frontend

import (
	"errors"
	"fmt"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
)

// Type values of select[name=type].
const (
	TypeModel    = "model"
	TypeFullsize = "fullsize"
)

// directionOf resolves the page's type select. Entering model dimensions asks
// for full size ones and vice versa.
func directionOf(typ string) models.Direction {
	if typ == TypeModel {
		return models.DirectionModelToFullsize
	}
	return models.DirectionFullsizeToModel
}

// Measurement is one dimension as typed by the user. The value is sent as the
// raw input text; the server parses it.
type Measurement struct {
	Value       string      `json:"value"`
	Measurement models.Unit `json:"measurement"`
}

// DimensionSet holds only the dimensions the user filled in.
type DimensionSet struct {
	Length *Measurement `json:"length,omitempty"`
	Width  *Measurement `json:"width,omitempty"`
	Height *Measurement `json:"height,omitempty"`
}

func (s *DimensionSet) set(name string, m *Measurement) {
	switch name {
	case "length":
		s.Length = m
	case "width":
		s.Width = m
	case "height":
		s.Height = m
	}
}

// ScaleRequest is the body of POST /scale. Exactly one dimension set is filled,
// picked by Direction.
type ScaleRequest struct {
	Direction          models.Direction `json:"-"`
	Scale              string           `json:"scale"`
	OutputMeasurement  models.Unit      `json:"outputMeasurement"`
	FullsizeDimensions *DimensionSet    `json:"fullsizeDimensions,omitempty"`
	ModelDimensions    *DimensionSet    `json:"modelDimensions,omitempty"`
}

// NewScaleRequest builds the request the page sends when select[name=type]
// holds typ.
func NewScaleRequest(typ, scale string, output models.Unit, dims *DimensionSet) ScaleRequest {
	return newScaleRequest(directionOf(typ), scale, output, dims)
}

func newScaleRequest(direction models.Direction, scale string, output models.Unit, dims *DimensionSet) ScaleRequest {
	req := ScaleRequest{Direction: direction, Scale: scale, OutputMeasurement: output}
	if direction == models.DirectionFullsizeToModel {
		req.FullsizeDimensions = dims
	} else {
		req.ModelDimensions = dims
	}
	return req
}

// ScaleResponse is the part of the /scale answer the page shows.
type ScaleResponse struct {
	FullsizeDimensions *models.Dimensions `json:"fullsizeDimensions,omitempty"`
	ModelDimensions    *models.Dimensions `json:"modelDimensions,omitempty"`
}

// Computed returns the dimension set the server filled in for direction.
func (r ScaleResponse) Computed(direction models.Direction) *models.Dimensions {
	if direction == models.DirectionFullsizeToModel {
		return r.ModelDimensions
	}
	return r.FullsizeDimensions
}

// ErrorResponse is the subset of the server's error body the page reads.
type ErrorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// ErrValidation is returned when no dimension has been entered. It is handled
// on the page and never sent.
var ErrValidation = errors.New("no dimensions entered")

// ServerError is a non-2xx answer from /scale.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Status code: %d (%s)", e.Code, e.Message)
}
