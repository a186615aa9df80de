package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		allowedOrigins  []string
		origin          string
		method          string
		wantAllowOrigin string
		wantStatus      int
		wantNext        bool
	}{
		{
			name:            "wildcard allows any origin",
			allowedOrigins:  []string{"*"},
			origin:          "http://localhost:3000",
			method:          http.MethodGet,
			wantAllowOrigin: "http://localhost:3000",
			wantStatus:      http.StatusOK,
			wantNext:        true,
		},
		{
			name:            "listed origin allowed",
			allowedOrigins:  []string{"https://app.example.com"},
			origin:          "https://app.example.com",
			method:          http.MethodGet,
			wantAllowOrigin: "https://app.example.com",
			wantStatus:      http.StatusOK,
			wantNext:        true,
		},
		{
			name:           "unlisted origin gets no cors headers",
			allowedOrigins: []string{"https://app.example.com"},
			origin:         "https://evil.example.com",
			method:         http.MethodGet,
			wantStatus:     http.StatusOK,
			wantNext:       true,
		},
		{
			name:            "preflight short-circuits",
			allowedOrigins:  []string{"*"},
			origin:          "http://localhost:3000",
			method:          http.MethodOptions,
			wantAllowOrigin: "http://localhost:3000",
			wantStatus:      http.StatusOK,
			wantNext:        false,
		},
		{
			name:       "no origin header passes through",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewCORS(tt.allowedOrigins)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(tt.method, "/expenses", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
