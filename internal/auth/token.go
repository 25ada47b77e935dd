package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints an opaque bearer credential for an account ID. The
// credential format belongs to the issuer, not to callers; handlers pass it
// back to the client verbatim for session establishment.
type TokenIssuer interface {
	IssueToken(accountID string) (string, error)
}

// TokenVerifier checks a presented bearer credential and returns the account
// ID it was minted for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

var ErrInvalidToken = errors.New("invalid token")

// JWTAuthority implements TokenIssuer and TokenVerifier with HS256 JWTs.
type JWTAuthority struct {
	Secret []byte
	TTL    time.Duration
}

// DefaultTokenTTL matches the 7-day client session the frontend expects.
const DefaultTokenTTL = 7 * 24 * time.Hour

func NewJWTAuthority(secret []byte) *JWTAuthority {
	return &JWTAuthority{Secret: secret, TTL: DefaultTokenTTL}
}

func (a *JWTAuthority) IssueToken(accountID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (a *JWTAuthority) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
