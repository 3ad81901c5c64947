package auth

import (
	"net/http"
	"strings"

	"mybooklist/internal/httpx"
)

// CuratorMiddleware gates write routes: it requires a valid session token
// whose email is the allow-listed curator address. The email re-check keeps
// tokens issued for any other address (there should be none) out.
func CuratorMiddleware(secret, curatorEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Sign-in required", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := ParseToken(secret, token)
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Sign-in required", nil)
				return
			}

			if !strings.EqualFold(claims.Email, curatorEmail) {
				httpx.JSONError(w, http.StatusForbidden, "NOT_CURATOR", "This catalog is managed by a single curator", nil)
				return
			}

			ctx := httpx.ContextWithUser(r.Context(), claims.Sub, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
