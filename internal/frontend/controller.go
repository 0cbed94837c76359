package frontend

import (
	"context"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
)

const (
	errorClass     = "error"
	labelFullsize  = "Full size"
	labelModel     = "Model"
	outputDecimals = 2
)

var unitLabels = map[models.Unit]string{
	models.UnitCM:   "centimeters.",
	models.UnitFoot: "feet.",
	models.UnitInch: "inches.",
	models.UnitMM:   "millimeters.",
}

// FormController drives the page: it relabels the output on every change and,
// once the user has typed into a dimension, sends every valid edit to the server.
type FormController struct {
	form   *Form
	client Scaler
	run    func(func())

	// set by the first keystroke in a dimension input, never cleared
	active bool
}

type Option func(*FormController)

// WithRunner replaces how requests are started. The default runs each one in
// its own goroutine so event handlers never block.
func WithRunner(run func(func())) Option {
	return func(c *FormController) { c.run = run }
}

func NewFormController(form *Form, client Scaler, opts ...Option) (*FormController, error) {
	if err := form.check(); err != nil {
		return nil, err
	}
	c := &FormController{
		form:   form,
		client: client,
		run:    func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Init registers the page listeners. Call it once.
func (c *FormController) Init() {
	for _, sel := range c.form.selects() {
		sel.On("change", c.OnFieldChanged)
	}
	for _, d := range c.form.Dimensions {
		d.Input.On("keyup", func() {
			c.active = true
			c.OnFieldChanged()
		})
	}
}

// Active reports whether a dimension has ever been typed into.
func (c *FormController) Active() bool { return c.active }

func (c *FormController) OnFieldChanged() {
	c.form.ErrorMessage.SetVisible(false)
	c.updateLabels()

	if !c.active {
		return
	}
	if c.Validate() {
		return
	}
	c.Submit()
}

func (c *FormController) updateLabels() {
	if directionOf(c.form.Type.Value()) == models.DirectionModelToFullsize {
		c.form.OutputType.SetText(labelFullsize)
	} else {
		c.form.OutputType.SetText(labelModel)
	}
	if label, ok := unitLabels[models.Unit(c.form.OutputMeasurement.Value())]; ok {
		c.form.OutputMeasurementLabel.SetText(label)
	}
}

// Validate marks the dimension inputs when all of them are empty and reports
// whether it did.
func (c *FormController) Validate() bool {
	empty := true
	for _, d := range c.form.Dimensions {
		if d.Input.Value() != "" {
			empty = false
			break
		}
	}
	for _, d := range c.form.Dimensions {
		d.Input.SetClass(errorClass, empty)
		d.Message.SetVisible(empty)
	}
	return empty
}

// Submit reads the form now and sends it. The answer is applied whenever it
// arrives; nothing is cancelled or retried.
func (c *FormController) Submit() {
	req := c.request()
	c.run(func() {
		resp, err := c.client.Scale(context.Background(), req)
		if err != nil {
			c.showError(err)
			return
		}
		c.apply(req.Direction, resp)
	})
}

func (c *FormController) request() ScaleRequest {
	dims := &DimensionSet{}
	for _, d := range c.form.Dimensions {
		if v := d.Input.Value(); v != "" {
			dims.set(d.Name, &Measurement{Value: v, Measurement: models.Unit(d.Unit.Value())})
		}
	}
	return newScaleRequest(
		directionOf(c.form.Type.Value()),
		c.form.Scale.Value(),
		models.Unit(c.form.OutputMeasurement.Value()),
		dims,
	)
}

func (c *FormController) apply(direction models.Direction, resp ScaleResponse) {
	computed := resp.Computed(direction)
	if computed == nil {
		return
	}
	outputs := make(map[string]Element, len(c.form.Dimensions))
	for _, d := range c.form.Dimensions {
		outputs[d.Name] = d.Output
	}
	computed.Each(func(name string, dim *models.Dimension) {
		if out, ok := outputs[name]; ok && dim != nil {
			out.SetValue(dim.Value.StringFixed(outputDecimals))
		}
	})
}

func (c *FormController) showError(err error) {
	c.form.ErrorMessage.SetText(err.Error())
	c.form.ErrorMessage.SetVisible(true)
}
