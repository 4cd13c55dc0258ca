package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

// overridable in tests
var timeNow = time.Now

type TokenClaims struct {
	UserID uint
	Email  string
}

// GenerateJWT signs an HS256 token carrying the user's identity,
// valid for one hour from issuance.
func GenerateJWT(userID uint, email string, secret []byte) (string, error) {
	now := timeNow()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(secret)
}

// ParseJWT validates signature and expiry and returns the identity claims.
func ParseJWT(tokenString string, secret []byte) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	out := &TokenClaims{}
	if v, ok := claims["userId"].(float64); ok {
		out.UserID = uint(v)
	}
	out.Email, _ = claims["email"].(string)
	return out, nil
}
