//go:build js

// Command client is the page controller, compiled with GopherJS:
//
//	gopherjs build -o web/js/client.js ./cmd/client
package main

import (
	"net/url"

	"github.com/DrOldGuy/model-railroad-scaler/internal/frontend"
	"github.com/DrOldGuy/model-railroad-scaler/internal/frontend/dombind"

	"honnef.co/go/js/dom"
)

func run() {
	window := dom.GetWindow()

	endpoint := frontend.ScalePath
	if base, err := url.Parse(window.Location().Href); err == nil {
		endpoint = base.ResolveReference(&url.URL{Path: frontend.ScalePath}).String()
	}

	form, err := dombind.Bind(window.Document())
	if err != nil {
		println("scaler: cannot bind page:", err.Error())
		return
	}
	controller, err := frontend.NewFormController(form, dombind.NewXHRClient(endpoint))
	if err != nil {
		println("scaler:", err.Error())
		return
	}
	controller.Init()
}

func main() {
	doc := dom.GetWindow().Document().(dom.HTMLDocument)
	switch readyState := doc.ReadyState(); readyState {
	case "loading":
		doc.AddEventListener("DOMContentLoaded", false, func(dom.Event) {
			run()
		})
	case "interactive", "complete":
		run()
	default:
		println("scaler: unexpected document.readyState", readyState)
	}
}
