// Package utils provides helpers for token creation and credential hashing.
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleOrganizer and RoleAttendee are the values carried in the JWT "role"
// claim. They map directly onto the user's isOrganizer flag.
const (
	RoleOrganizer = "ORGANIZER"
	RoleAttendee  = "ATTENDEE"
)

// AccessToken is a signed HS256 JWT with its expiry. Access tokens are
// short-lived and sent in the Authorization header on protected routes.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// RefreshToken is the raw long-lived token returned to the client. The
// store keeps only its SHA-256 hash.
type RefreshToken struct {
	Raw string
	Exp time.Time
}

// RoleFor maps a user's organizer flag to its role claim value.
func RoleFor(isOrganizer bool) string {
	if isOrganizer {
		return RoleOrganizer
	}
	return RoleAttendee
}

// NewAccessToken signs an HS256 JWT for the user. Claims: sub (user id),
// role, exp and iat.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// NewRefreshToken returns a cryptographically random token and its expiry.
func NewRefreshToken(ttlDays int) (RefreshToken, error) {
	raw, err := randomHex(48) // 48 bytes -> 96 hex chars
	if err != nil {
		return RefreshToken{}, err
	}
	return RefreshToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}, nil
}

// HashRefreshRaw returns the hex SHA-256 of a raw refresh token. Only this
// hash is ever stored.
func HashRefreshRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
