package middleware

import (
	"net/http"

	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

// RequireAdmin rejects anonymous callers with 401 and non-admin identities
// with 403. It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxutil.IdentityFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !identity.IsAdmin() {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
