package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT Secret Key, loaded from the environment at startup.
var JwtKey []byte

// TokenLifetime matches the fixed 365-day session the frontend expects.
// There is no refresh flow; expiry forces a full re-login.
const TokenLifetime = 365 * 24 * time.Hour

// Claims represents the JWT claims carried in the session cookie
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateJWT signs a session token for the given email
func GenerateJWT(email string) (string, error) {
	expirationTime := time.Now().Add(TokenLifetime)
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
