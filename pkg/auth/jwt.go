package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Principal roles carried in token claims. Each service issues tokens for
// exactly one role; the payments service additionally rejects non-merchant
// tokens with 403.
const (
	RoleMerchant = "merchant"
	RoleUser     = "user"
	RoleWallet   = "wallet"
)

type JWTServiceInterface interface {
	GenerateJWT(subjectID, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	SubjectID string `json:"sub_id"`
	Role      string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

func (s *JWTService) GenerateJWT(subjectID, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		SubjectID: subjectID,
		Role:      role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SubjectID == "" || claims.Issuer != s.issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
