package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTValidator_IssueAndValidate(t *testing.T) {
	v := NewJWTValidator([]byte("test-key"))

	token, err := v.Issue("op_1", "op@example.com", "Op One", "admin")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := v.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.OperatorID != "op_1" || claims.Email != "op@example.com" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestJWTValidator_BearerPrefix(t *testing.T) {
	v := NewJWTValidator([]byte("test-key"))

	token, err := v.Issue("op_1", "", "", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := v.Validate("Bearer " + token); err != nil {
		t.Errorf("bearer-prefixed token should validate, got %v", err)
	}
}

func TestJWTValidator_WrongKey(t *testing.T) {
	token, err := NewJWTValidator([]byte("key-a")).Issue("op_1", "", "", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewJWTValidator([]byte("key-b")).Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTValidator_Expired(t *testing.T) {
	v := NewJWTValidator([]byte("test-key"))

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		OperatorID: "op_1",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := v.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTValidator_Garbage(t *testing.T) {
	v := NewJWTValidator([]byte("test-key"))
	if _, err := v.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
