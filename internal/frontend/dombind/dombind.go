//go:build js

// Package dombind binds the scaler page to a frontend.Form using
// honnef.co/go/js/dom. It only builds under GopherJS.
package dombind

import (
	"fmt"

	"github.com/DrOldGuy/model-railroad-scaler/internal/frontend"

	"honnef.co/go/js/dom"
)

const (
	promptFieldSelector = ".prompt-field"
	messageSelector     = "div.message"
)

// Bind looks every element of the page up once.
func Bind(doc dom.Document) (*frontend.Form, error) {
	var err error
	query := func(sel string) frontend.Element {
		if err != nil {
			return nil
		}
		el := doc.QuerySelector(sel)
		if el == nil {
			err = fmt.Errorf("no element matches %q", sel)
			return nil
		}
		return element{el}
	}
	byID := func(id string) frontend.Element {
		return query("#" + id)
	}

	form := &frontend.Form{
		Type:                   query("select[name=type]"),
		Scale:                  query("select[name=scale]"),
		OutputMeasurement:      query("select[name=outputMeasurement]"),
		OutputType:             byID("output-type"),
		OutputMeasurementLabel: byID("outputMeasurement"),
		ErrorMessage:           byID("error-message"),
	}
	for _, name := range frontend.DimensionNames {
		input := doc.QuerySelector("input[name=" + name + "]")
		if input == nil {
			return nil, fmt.Errorf("no input named %q", name)
		}
		field := input.Closest(promptFieldSelector)
		if field == nil {
			return nil, fmt.Errorf("input %q is not inside %s", name, promptFieldSelector)
		}
		unit := field.QuerySelector("select")
		message := field.QuerySelector(messageSelector)
		if unit == nil || message == nil {
			return nil, fmt.Errorf("%s for %q needs a select and a %s", promptFieldSelector, name, messageSelector)
		}
		form.Dimensions = append(form.Dimensions, frontend.DimensionField{
			Name:    name,
			Input:   element{input},
			Unit:    element{unit},
			Message: element{message},
			Output:  byID("output-" + name),
		})
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}

type element struct {
	el dom.Element
}

func (e element) Value() string {
	return e.el.Underlying().Get("value").String()
}

func (e element) SetValue(v string) {
	e.el.Underlying().Set("value", v)
}

func (e element) SetText(s string) {
	e.el.SetTextContent(s)
}

func (e element) SetVisible(visible bool) {
	h, ok := e.el.(dom.HTMLElement)
	if !ok {
		return
	}
	display := "none"
	if visible {
		display = "block"
	}
	h.Style().SetProperty("display", display, "")
}

func (e element) SetClass(name string, on bool) {
	if on {
		e.el.Class().Add(name)
	} else {
		e.el.Class().Remove(name)
	}
}

func (e element) On(event string, fn func()) {
	e.el.AddEventListener(event, false, func(dom.Event) {
		fn()
	})
}
