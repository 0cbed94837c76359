package frontend

import (
	"errors"
	"fmt"
)

// Dimension names in the order they appear on the page.
var DimensionNames = []string{"length", "width", "height"}

// DimensionField groups the elements that belong to one of length, width or height.
type DimensionField struct {
	Name string
	// Input is input[name=<Name>].
	Input Element
	// Unit is the select in the same .prompt-field container.
	Unit Element
	// Message is the div.message in the same container.
	Message Element
	// Output is #output-<Name>.
	Output Element
}

// Form is the page bound once at load time.
type Form struct {
	Type              Element // select[name=type]
	Scale             Element // select[name=scale]
	OutputMeasurement Element // select[name=outputMeasurement]

	Dimensions []DimensionField

	OutputType             Element // #output-type
	OutputMeasurementLabel Element // #outputMeasurement
	ErrorMessage           Element // #error-message
}

var errIncompleteForm = errors.New("form is missing elements")

func (f *Form) check() error {
	if f == nil {
		return errIncompleteForm
	}
	for name, el := range map[string]Element{
		"type":               f.Type,
		"scale":              f.Scale,
		"outputMeasurement":  f.OutputMeasurement,
		"#output-type":       f.OutputType,
		"#outputMeasurement": f.OutputMeasurementLabel,
		"#error-message":     f.ErrorMessage,
	} {
		if el == nil {
			return fmt.Errorf("%w: %s", errIncompleteForm, name)
		}
	}
	if len(f.Dimensions) != len(DimensionNames) {
		return fmt.Errorf("%w: want %d dimension fields, got %d", errIncompleteForm, len(DimensionNames), len(f.Dimensions))
	}
	for _, d := range f.Dimensions {
		if d.Input == nil || d.Unit == nil || d.Message == nil || d.Output == nil {
			return fmt.Errorf("%w: dimension %q", errIncompleteForm, d.Name)
		}
	}
	return nil
}

// selects returns every select on the form, unit selects included.
func (f *Form) selects() []Element {
	out := []Element{f.Type, f.Scale, f.OutputMeasurement}
	for _, d := range f.Dimensions {
		out = append(out, d.Unit)
	}
	return out
}
