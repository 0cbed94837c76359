package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DrOldGuy/model-railroad-scaler/internal/repository"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"
)

func postAuth(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignUp(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{"created", `{"username":"brakeman","password":"caboose-1"}`, nil, http.StatusCreated, `{"id":5}`},
		{"missing password", `{"username":"brakeman"}`, nil, http.StatusBadRequest, "username and password are required"},
		{"rejected input", `{"username":"b","password":"x"}`, &service.ValidationError{Message: "too short"}, http.StatusBadRequest, "too short"},
		{"taken", `{"username":"brakeman","password":"caboose-1"}`, fmt.Errorf("%w: brakeman", repository.ErrUsernameTaken), http.StatusConflict, "username already taken"},
		{"database down", `{"username":"brakeman","password":"caboose-1"}`, errors.New("disk full"), http.StatusInternalServerError, errSignUp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{signUpID: 5, signUpErr: tc.err}
			w := postAuth(newTestRouter(&service.Service{Authorization: auth}), "/auth/sign-up", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("body %s does not contain %q", w.Body.String(), tc.wantBody)
			}
			if strings.Contains(w.Body.String(), "disk full") {
				t.Fatalf("internal error leaked: %s", w.Body.String())
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	auth := &mockAuth{genTokenToken: "tok.en"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postAuth(r, "/auth/sign-in", `{"username":"brakeman","password":"caboose-1"}`)
	if w.Code != http.StatusOK || w.Body.String() != `{"token":"tok.en"}` {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if auth.lastGenUsername != "brakeman" || auth.lastGenPassword != "caboose-1" {
		t.Fatalf("credentials not passed through: %q/%q", auth.lastGenUsername, auth.lastGenPassword)
	}

	auth.genTokenErr = service.ErrInvalidCredentials
	if w := postAuth(r, "/auth/sign-in", `{"username":"brakeman","password":"wrong"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials: status=%d", w.Code)
	}

	auth.genTokenErr = errors.New("database is locked")
	w = postAuth(r, "/auth/sign-in", `{"username":"brakeman","password":"caboose-1"}`)
	if w.Code != http.StatusInternalServerError || strings.Contains(w.Body.String(), "locked") {
		t.Fatalf("store failure: status=%d body=%s", w.Code, w.Body.String())
	}

	if w := postAuth(r, "/auth/sign-in", `{"username":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad body: status=%d", w.Code)
	}
}
