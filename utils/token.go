package authUtils

import (
	"fmt"
	"os"
	"time"

	"fixitsl-be/errs"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken generates a JWT token for a given user ID
func GenerateToken(userID string) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Token expires in 72 hours
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken validates a bearer credential and returns the user ID it
// carries. A missing credential and a malformed/expired one fail with
// different error kinds; both map to unauthorized at the HTTP edge.
func VerifyToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errs.ErrNoCredential
	}

	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretStr), nil
	})
	if err != nil || !token.Valid {
		return "", errs.ErrBadCredential
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.ErrBadCredential
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errs.ErrBadCredential
	}

	return userID, nil
}
