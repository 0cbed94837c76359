package frontend

import (
	"context"
	"sync"
)

type fakeElement struct {
	value   string
	text    string
	visible bool
	classes map[string]bool
	events  map[string][]func()
}

func newFakeElement(value string) *fakeElement {
	return &fakeElement{value: value, classes: map[string]bool{}, events: map[string][]func(){}}
}

func (e *fakeElement) Value() string           { return e.value }
func (e *fakeElement) SetValue(v string)       { e.value = v }
func (e *fakeElement) SetText(s string)        { e.text = s }
func (e *fakeElement) SetVisible(visible bool) { e.visible = visible }
func (e *fakeElement) SetClass(name string, on bool) {
	e.classes[name] = on
}
func (e *fakeElement) On(event string, fn func()) {
	e.events[event] = append(e.events[event], fn)
}

// fire plays a DOM event the way the browser would.
func (e *fakeElement) fire(event string) {
	for _, fn := range e.events[event] {
		fn()
	}
}

// typeText sets the value and fires keyup.
func (e *fakeElement) typeText(v string) {
	e.value = v
	e.fire("keyup")
}

// choose sets the value and fires change.
func (e *fakeElement) choose(v string) {
	e.value = v
	e.fire("change")
}

type fakePage struct {
	typ, scale, outputMeasurement *fakeElement
	inputs, units, messages       map[string]*fakeElement
	outputs                       map[string]*fakeElement
	outputType, outputLabel       *fakeElement
	errorMessage                  *fakeElement
}

func newFakePage() *fakePage {
	p := &fakePage{
		typ:               newFakeElement(TypeFullsize),
		scale:             newFakeElement("HO"),
		outputMeasurement: newFakeElement("INCH"),
		inputs:            map[string]*fakeElement{},
		units:             map[string]*fakeElement{},
		messages:          map[string]*fakeElement{},
		outputs:           map[string]*fakeElement{},
		outputType:        newFakeElement(""),
		outputLabel:       newFakeElement(""),
		errorMessage:      newFakeElement(""),
	}
	for _, name := range DimensionNames {
		p.inputs[name] = newFakeElement("")
		p.units[name] = newFakeElement("FOOT")
		p.messages[name] = newFakeElement("")
		p.outputs[name] = newFakeElement("")
	}
	return p
}

func (p *fakePage) form() *Form {
	f := &Form{
		Type:                   p.typ,
		Scale:                  p.scale,
		OutputMeasurement:      p.outputMeasurement,
		OutputType:             p.outputType,
		OutputMeasurementLabel: p.outputLabel,
		ErrorMessage:           p.errorMessage,
	}
	for _, name := range DimensionNames {
		f.Dimensions = append(f.Dimensions, DimensionField{
			Name:    name,
			Input:   p.inputs[name],
			Unit:    p.units[name],
			Message: p.messages[name],
			Output:  p.outputs[name],
		})
	}
	return f
}

type fakeScaler struct {
	mu       sync.Mutex
	requests []ScaleRequest
	resp     ScaleResponse
	err      error
}

func (s *fakeScaler) Scale(_ context.Context, req ScaleRequest) (ScaleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return s.resp, s.err
}

func (s *fakeScaler) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func inline(f func()) { f() }
