package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// OutputPlaces is the number of decimal places in every returned value.
	OutputPlaces = 2
	// IntermediatePlaces is the precision of intermediate divisions.
	IntermediatePlaces = 6
)

var (
	ErrSizeRequired        = errors.New("Size must not be null.")
	ErrMeasurementRequired = errors.New("Measurement must not be null.")
)

// Dimension associates a value with the unit it is expressed in.
// Values are always held rounded to OutputPlaces.
type Dimension struct {
	Value       decimal.Decimal
	Measurement Unit
}

// NewDimension rounds value half-up to OutputPlaces.
func NewDimension(value decimal.Decimal, measurement Unit) Dimension {
	return Dimension{Value: value.Round(OutputPlaces), Measurement: measurement}
}

func (d Dimension) String() string {
	return d.Value.StringFixed(OutputPlaces) + " " + d.Measurement.Abbrev()
}

type dimensionJSON struct {
	Value       *decimal.Decimal `json:"value"`
	Measurement Unit             `json:"measurement"`
}

// MarshalJSON writes the value as a JSON number with OutputPlaces decimals.
func (d Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value       json.Number `json:"value"`
		Measurement Unit        `json:"measurement"`
	}{
		Value:       json.Number(d.Value.StringFixed(OutputPlaces)),
		Measurement: d.Measurement,
	})
}

// UnmarshalJSON accepts the value as a JSON number or a numeric string.
func (d *Dimension) UnmarshalJSON(b []byte) error {
	var w dimensionJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Value == nil {
		return ErrSizeRequired
	}
	if w.Measurement == "" {
		return ErrMeasurementRequired
	}
	*d = NewDimension(*w.Value, w.Measurement)
	return nil
}

// Dimensions is a length/width/height triple; any member may be absent.
type Dimensions struct {
	Length *Dimension `json:"length,omitempty"`
	Width  *Dimension `json:"width,omitempty"`
	Height *Dimension `json:"height,omitempty"`
}

// HasValue reports whether at least one of the three dimensions is present.
func HasValue(d *Dimensions) bool {
	if d == nil {
		return false
	}
	return d.Length != nil || d.Width != nil || d.Height != nil
}

// Each calls fn for the three members in length, width, height order.
func (d *Dimensions) Each(fn func(name string, dim *Dimension)) {
	fn("length", d.Length)
	fn("width", d.Width)
	fn("height", d.Height)
}

func (d *Dimensions) String() string {
	if d == nil {
		return "<none>"
	}
	var parts []string
	d.Each(func(name string, dim *Dimension) {
		if dim != nil {
			parts = append(parts, fmt.Sprintf("%s=%s", name, dim))
		}
	})
	return "[" + strings.Join(parts, ", ") + "]"
}
