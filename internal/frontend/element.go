// Package frontend is the browser side of the scaler: a controller that keeps
// the page's form and the /scale endpoint in step. It only talks to the page
// through Element, so it runs the same under GopherJS and in plain Go tests.
package frontend

// Element is the part of a DOM element the controller uses.
type Element interface {
	// Value is the current value of an input or select.
	Value() string
	SetValue(v string)
	SetText(s string)
	SetVisible(visible bool)
	SetClass(name string, on bool)
	// On registers fn for the named DOM event for the lifetime of the page.
	On(event string, fn func())
}
