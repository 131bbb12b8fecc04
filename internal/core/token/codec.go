// Package token implements the bearer credential codec: minting and verifying
// signed, time-bound proof of identity. Tokens are HS256 JWTs carrying the
// user id as subject plus a role claim. No server-side record of issued
// tokens exists; every verification is independent.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the credential lifetime applied when none is configured.
const DefaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload embedded in a minted credential.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec mints and verifies credentials. Both operations are pure functions of
// their inputs, the secret, and the supplied clock, so a single Codec is safe
// under arbitrary concurrency.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Mint produces a signed token for the given identity, valid from now until
// now plus the configured lifetime.
func (c *Codec) Mint(userID, role string, now time.Time) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token as of the given instant. Any signature
// mismatch, malformed payload, algorithm substitution, or expiry at or before
// now yields ErrInvalidToken.
func (c *Codec) Verify(tokenString string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return c.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
