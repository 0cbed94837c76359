package scaler

import (
	"io/fs"
	"strings"
	"testing"
)

func TestPagesHoldsTheFormContract(t *testing.T) {
	b, err := fs.ReadFile(Pages(), "index.html")
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	page := string(b)
	for _, want := range []string{
		`name="type"`, `name="scale"`, `name="outputMeasurement"`,
		`class="prompt-field"`, `class="message"`,
		`id="output-type"`, `id="outputMeasurement"`,
		`id="output-{{.}}"`, `id="error-message"`,
		`src="/js/client.js"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("index.html is missing %s", want)
		}
	}
	if _, err := fs.Stat(Pages(), "css/scaler.css"); err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
}
