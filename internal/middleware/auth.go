package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/commercekit/orders-api/internal/config"
)

// BasicAuth middleware validates HTTP Basic credentials against the
// configured user. Runs before any business logic; failures never reach
// the handlers.
func BasicAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			// Constant-time compare to avoid leaking credential length
			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1
			passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1

			if !userMatch || !passMatch {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="orders-api"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
