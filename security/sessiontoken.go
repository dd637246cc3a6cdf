package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	Name string `json:"name"`
}

type SessionClaims struct {
	Session
	jwt.RegisteredClaims
}

// CreateSessionToken mints the HS256 token the web form holds between
// requests. It carries nothing but the employee name; the credential check
// stays a plain scan of the employee table at login.
func CreateSessionToken(name string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Session: Session{Name: name},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "alms",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
