package middleware

import "net/http"

// RequireInternalSecret validates the X-Unihub-Auth header for operator
// calls (catalog reload). An empty configured secret disables the surface
// entirely rather than leaving it open.
func RequireInternalSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" || r.Header.Get("X-Unihub-Auth") != secret {
				http.Error(w, `{"error":{"code":"E_FORBIDDEN","message":"invalid internal secret"}}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
