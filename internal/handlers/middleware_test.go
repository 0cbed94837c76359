package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DrOldGuy/model-railroad-scaler/internal/logger"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/gin-gonic/gin"
)

func newSecureRouter(auth *mockAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service.Service{Authorization: auth}, nil, Options{})
	r.GET("/secure", h.requireUser, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
	})
	return r
}

func callSecure(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireUser_Rejects(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		parseErr error
		wantErr  string
	}{
		{"no header", "", nil, "authorization required"},
		{"basic scheme", "Basic dXNlcjpwdw==", nil, "bearer token required"},
		{"scheme only", "Bearer", nil, "bearer token required"},
		{"blank token", "Bearer    ", nil, "bearer token required"},
		{"bad token", "Bearer stale", errors.New("token is expired"), "token rejected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := callSecure(newSecureRouter(&mockAuth{parseErr: tc.parseErr}), tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Error != tc.wantErr {
				t.Fatalf("error=%q, want %q", out.Error, tc.wantErr)
			}
		})
	}
}

func TestRequireUser_AcceptsAnySchemeCase(t *testing.T) {
	for _, header := range []string{"Bearer abc.def", "bearer abc.def", "BEARER  abc.def"} {
		auth := &mockAuth{parseID: 7}
		w := callSecure(newSecureRouter(auth), header)
		if w.Code != http.StatusOK {
			t.Fatalf("%q: status=%d body=%s", header, w.Code, w.Body.String())
		}
		if auth.lastParseToken != "abc.def" {
			t.Fatalf("%q: parsed %q", header, auth.lastParseToken)
		}
		if w.Body.String() != `{"user":7}` {
			t.Fatalf("%q: body=%s", header, w.Body.String())
		}
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Service{}, logger.New(&buf, logger.DebugLevel), Options{})
	gin.SetMode(gin.TestMode)
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	_ = h.log.Sync()

	out := buf.String()
	for _, want := range []string{"http_request", `"path": "/health"`, `"status": 200`, `"method": "GET"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}
