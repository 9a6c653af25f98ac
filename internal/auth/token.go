package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const tokenTTL = 24 * time.Hour

type JWTValidator struct {
	key []byte
}

func NewJWTValidator(key []byte) *JWTValidator {
	return &JWTValidator{key: key}
}

// Issue signs a token for an authenticated operator.
func (v *JWTValidator) Issue(operatorID, email, name, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		OperatorID: operatorID,
		Email:      email,
		Name:       name,
		Role:       role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.key)
}

// Validate accepts either a raw token or an Authorization header value.
func (v *JWTValidator) Validate(tokenOrHeader string) (*Claims, error) {
	raw := strings.TrimPrefix(tokenOrHeader, "Bearer ")

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.OperatorID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
