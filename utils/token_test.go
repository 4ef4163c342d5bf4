package authUtils

import (
	"errors"
	"testing"
	"time"

	"fixitsl-be/errs"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("admin-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	userID, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if userID != "admin-1" {
		t.Fatalf("VerifyToken() userID = %q, want %q", userID, "admin-1")
	}
}

func TestVerifyTokenMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := VerifyToken("")
	if !errors.Is(err, errs.ErrNoCredential) {
		t.Fatalf("VerifyToken(\"\") error = %v, want ErrNoCredential", err)
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := VerifyToken("not-a-token")
	if !errors.Is(err, errs.ErrBadCredential) {
		t.Fatalf("VerifyToken() error = %v, want ErrBadCredential", err)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("admin-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := VerifyToken(token); !errors.Is(err, errs.ErrBadCredential) {
		t.Fatalf("VerifyToken() error = %v, want ErrBadCredential", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "admin-1",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := VerifyToken(tokenString); !errors.Is(err, errs.ErrBadCredential) {
		t.Fatalf("VerifyToken() error = %v, want ErrBadCredential", err)
	}
}
