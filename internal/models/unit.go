package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is the measurement system of a single dimension.
type Unit string

const (
	UnitInch Unit = "INCH"
	UnitCM   Unit = "CM"
	UnitFoot Unit = "FOOT"
	UnitMM   Unit = "MM"
)

// Units lists every supported unit in declaration order.
var Units = []Unit{UnitInch, UnitCM, UnitFoot, UnitMM}

var (
	millimetersPerCentimeter = decimal.NewFromInt(10)
	millimetersPerInch       = decimal.RequireFromString("25.40")
	millimetersPerFoot       = decimal.RequireFromString("304.80")
)

// ParseUnit resolves a unit name case-insensitively.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units {
		if strings.EqualFold(string(u), s) {
			return u, nil
		}
	}
	return "", fmt.Errorf("%s is not a valid measurement.", s)
}

// Valid reports whether u is one of Units.
func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// Abbrev returns the short form used in human-readable output ("in", "cm", ...).
func (u Unit) Abbrev() string {
	switch u {
	case UnitInch:
		return "in"
	case UnitCM:
		return "cm"
	case UnitFoot:
		return "ft"
	case UnitMM:
		return "mm"
	default:
		return strings.ToLower(string(u))
	}
}

// MillimetersPer returns how many millimeters one u is.
func (u Unit) MillimetersPer() decimal.Decimal {
	switch u {
	case UnitCM:
		return millimetersPerCentimeter
	case UnitInch:
		return millimetersPerInch
	case UnitFoot:
		return millimetersPerFoot
	default:
		return decimal.NewFromInt(1)
	}
}

// UnmarshalJSON accepts unit names in any case. null and "" leave the unit unset.
func (u *Unit) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*u = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*u = ""
		return nil
	}
	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
