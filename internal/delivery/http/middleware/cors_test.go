package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	origins := []string{"http://app.test/", " http://admin.test "}

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllow   string
		wantMethods string
		wantNext    bool
	}{
		{"allowed origin get", http.MethodGet, "http://app.test", http.StatusOK, "http://app.test", "", true},
		{"trimmed origin get", http.MethodGet, "http://admin.test", http.StatusOK, "http://admin.test", "", true},
		{"unknown origin get", http.MethodGet, "http://evil.test", http.StatusOK, "", "", true},
		{"no origin get", http.MethodGet, "", http.StatusOK, "", "", true},
		{"allowed preflight", http.MethodOptions, "http://app.test", http.StatusNoContent, "http://app.test", corsAllowMethods, false},
		{"unknown preflight", http.MethodOptions, "http://evil.test", http.StatusNoContent, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tt.method, "/candidates", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			CORS(origins, next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, called)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rr.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}
