package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mazhilunthu/car-marketplace/application/user"
	"github.com/mazhilunthu/car-marketplace/constant"
	"github.com/mazhilunthu/car-marketplace/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Public endpoints (login, register, swagger, internal) skip validation.
// Browse endpoints accept anonymous callers but still resolve identity
// when a token is present, so wishlist flags reflect the caller; an
// invalid token is rejected rather than downgraded to anonymous.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				if isOptionalAuthPath(path, r.Method) {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via UserApp
			externalUserID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed the external user id into context
			ctx := context.WithValue(r.Context(), constant.ExternalUserIDKey, externalUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}

	return false
}

// isOptionalAuthPath defines the browse endpoints open to anonymous
// callers. The save endpoint is POST and stays protected.
func isOptionalAuthPath(path, method string) bool {
	if method != http.MethodGet {
		return false
	}
	return path == "/v1/cars" || path == "/v1/cars/filters" || strings.HasPrefix(path, "/v1/cars/")
}
