package middleware

import "net/http"

// RequireConfig rejects every request with 503 while cfgErr is set.
func RequireConfig(cfgErr error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfgErr == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusServiceUnavailable, "CONFIG_ERROR", cfgErr.Error(), r)
		})
	}
}
