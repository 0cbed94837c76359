package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/shopspring/decimal"
)

func TestAddScaleHandler(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		addErr   error
		token    string
		wantCode int
	}{
		{name: "no token", body: `{"name":"Gn15","factor":22.5}`, wantCode: http.StatusUnauthorized},
		{name: "ok", body: `{"name":"Gn15","factor":22.5}`, token: "t", wantCode: http.StatusOK},
		{name: "missing name", body: `{"factor":22.5}`, token: "t", wantCode: http.StatusBadRequest},
		{name: "not json", body: `name=Gn15`, token: "t", wantCode: http.StatusBadRequest},
		{
			name:     "builtin",
			body:     `{"name":"HO","factor":90}`,
			addErr:   fmt.Errorf("%w: HO", service.ErrBuiltinScale),
			token:    "t",
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid factor",
			body:     `{"name":"Zero","factor":0}`,
			addErr:   &service.ValidationError{Message: "Scale factor must be greater than zero."},
			token:    "t",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "storage failure",
			body:     `{"name":"Gn15","factor":22.5}`,
			addErr:   errors.New("db down"),
			token:    "t",
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := &mockCatalog{
				added:  models.Scale{Name: "Gn15", Factor: decimal.RequireFromString("22.5")},
				addErr: tc.addErr,
			}
			r := newTestRouter(&service.Service{Catalog: catalog, Authorization: &mockAuth{parseID: 1}})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/scales", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			for k, vv := range authHeader(tc.token) {
				for _, v := range vv {
					req.Header.Add(k, v)
				}
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode == http.StatusOK {
				if catalog.lastName != "Gn15" || catalog.lastFactor.String() != "22.5" {
					t.Fatalf("catalog got %q %s", catalog.lastName, catalog.lastFactor)
				}
				if w.Body.String() != `{"name":"Gn15","factor":22.5,"builtin":false}` {
					t.Fatalf("unexpected body: %s", w.Body.String())
				}
			}
		})
	}
}
