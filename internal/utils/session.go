package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewSessionToken builds and signs an HS256 JWT for the login demo's
// session cookie.  The claims carry the subject (the account email),
// expiration and issued-at; nothing else is stored server-side.
func NewSessionToken(secret, email string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub": email,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
