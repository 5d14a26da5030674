package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey signs session tokens. Loaded from SESSION_SECRET at startup.
var JwtKey = []byte("")

// SessionTokenTTL is how long an issued session token stays valid
var SessionTokenTTL = 30 * 24 * time.Hour

var ErrInvalidSessionToken = errors.New("invalid session token")

// Claims identifies a shopper's session. It carries no identity: the
// storefront has no accounts.
type Claims struct {
	SessionID string `json:"sid"`
	Language  string `json:"lang,omitempty"`
	jwt.StandardClaims
}

// GenerateSessionToken signs a token for sessionID
func GenerateSessionToken(sessionID, lang string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		Language:  lang,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(SessionTokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseSessionToken verifies tokenStr and returns its claims
func ParseSessionToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return JwtKey, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
