package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/constella/constella/pkg/utils"
)

type ContextKey string

const SubjectIDKey ContextKey = "subjectID"

// Middleware authenticates a bearer token and enforces the principal role:
// a missing or invalid token is 401, a valid token of the wrong role is 403.
func Middleware(jwtService JWTServiceInterface, role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if claims.Role != role {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}

			ctx := context.WithValue(r.Context(), SubjectIDKey, claims.SubjectID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
