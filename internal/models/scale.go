package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells which dimension set is known and which one gets computed.
type Direction string

const (
	DirectionFullsizeToModel Direction = "FULLSIZE_TO_MODEL"
	DirectionModelToFullsize Direction = "MODEL_TO_FULLSIZE"
)

// Scale is a named ratio between full size and model, e.g. HO = 1:87.1.
type Scale struct {
	Name    string          `json:"name"`
	Factor  decimal.Decimal `json:"factor"`
	Builtin bool            `json:"builtin"`
}

// MarshalJSON writes the factor as a JSON number.
func (s Scale) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string      `json:"name"`
		Factor  json.Number `json:"factor"`
		Builtin bool        `json:"builtin"`
	}{s.Name, json.Number(s.Factor.String()), s.Builtin})
}

// Ratio renders the scale as "1:<factor>".
func (s Scale) Ratio() string {
	return "1:" + s.Factor.String()
}

// BuiltinScales is the catalogue every installation starts with.
var BuiltinScales = []Scale{
	{Name: "O", Factor: decimal.NewFromInt(48), Builtin: true},
	{Name: "S", Factor: decimal.NewFromInt(64), Builtin: true},
	{Name: "OO", Factor: decimal.NewFromInt(76), Builtin: true},
	{Name: "HO", Factor: decimal.RequireFromString("87.1"), Builtin: true},
	{Name: "TT", Factor: decimal.NewFromInt(120), Builtin: true},
	{Name: "N", Factor: decimal.NewFromInt(160), Builtin: true},
	{Name: "Z", Factor: decimal.NewFromInt(220), Builtin: true},
}

// ScaleData is the body of both the /scale request and its response. A client
// fills in one dimension set and the service computes the other.
type ScaleData struct {
	Scale              string      `json:"scale,omitempty"`
	OutputMeasurement  Unit        `json:"outputMeasurement,omitempty"`
	ModelDimensions    *Dimensions `json:"modelDimensions,omitempty"`
	FullsizeDimensions *Dimensions `json:"fullsizeDimensions,omitempty"`
}

func (d ScaleData) String() string {
	var b strings.Builder
	b.WriteString("ScaleData:\n")
	fmt.Fprintf(&b, "   Scale=%s\n", d.Scale)
	fmt.Fprintf(&b, "   Output=%s\n", d.OutputMeasurement)
	fmt.Fprintf(&b, "   Model %s\n", d.ModelDimensions)
	fmt.Fprintf(&b, "   Full Size %s\n", d.FullsizeDimensions)
	return b.String()
}

// Conversion is one recorded /scale computation.
type Conversion struct {
	ID                string     `json:"id"`
	OccurredAt        time.Time  `json:"occurred_at"`
	Scale             string     `json:"scale"`
	Direction         Direction  `json:"direction"`
	OutputMeasurement Unit       `json:"output_measurement"`
	Input             Dimensions `json:"input"`
	Output            Dimensions `json:"output"`
}
