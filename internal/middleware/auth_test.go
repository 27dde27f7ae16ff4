package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/commercekit/orders-api/internal/config"
)

func TestBasicAuth(t *testing.T) {
	cfg := config.AuthConfig{Username: "admin", Password: "secret"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := BasicAuth(cfg)(next)

	tests := []struct {
		name       string
		username   string
		password   string
		omitCreds  bool
		wantStatus int
	}{
		{
			name:       "valid credentials",
			username:   "admin",
			password:   "secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing credentials",
			omitCreds:  true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong password",
			username:   "admin",
			password:   "wrong",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong username",
			username:   "root",
			password:   "secret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty credentials",
			username:   "",
			password:   "",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if !tt.omitCreds {
				req.SetBasicAuth(tt.username, tt.password)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			if tt.wantStatus == http.StatusUnauthorized {
				if got := w.Header().Get("WWW-Authenticate"); got == "" {
					t.Error("expected WWW-Authenticate header on 401")
				}
			}
		})
	}
}
