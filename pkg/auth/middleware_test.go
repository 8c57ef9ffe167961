package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret", "test-issuer")

	token := func(role string) string {
		signed, err := jwtService.GenerateJWT("subject-1", role, time.Now().Add(time.Hour))
		assert.NoError(t, err)
		return signed
	}

	tests := []struct {
		name          string
		authHeader    string
		expectedCode  int
		expectSubject bool
	}{
		{
			name:          "Valid token of the expected role",
			authHeader:    "Bearer " + token(RoleMerchant),
			expectedCode:  http.StatusOK,
			expectSubject: true,
		},
		{
			name:         "Valid token of another role",
			authHeader:   "Bearer " + token(RoleUser),
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			authHeader:   "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Garbage token",
			authHeader:   "Bearer not.a.token",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSubject, _ = r.Context().Value(SubjectIDKey).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			Middleware(jwtService, RoleMerchant)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectSubject {
				assert.Equal(t, "subject-1", gotSubject)
			} else {
				assert.Empty(t, gotSubject)
			}
		})
	}
}
