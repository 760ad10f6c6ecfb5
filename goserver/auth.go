package goserver

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
)

// BasicAuth enforces the pre-shared webhook secret. With no secrets
// configured it passes every request through. A request without an
// Authorization header gets a proper 401 challenge: Amazon SNS only
// retries with credentials after seeing one, not merely any 4xx.
// Credentials are compared in constant time.
func BasicAuth(secrets []string, realm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secrets) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			supplied := user + ":" + pass
			authorized := false
			for _, secret := range secrets {
				if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(secret)), []byte(supplied)) == 1 {
					authorized = true
				}
			}
			if !authorized {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
