package jwt

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSigningMethod = errors.New("jwt: unexpected signing method")
	// ErrSigningKeyTooShort is returned when the HS512 key is under 512 bits.
	ErrSigningKeyTooShort = errors.New("jwt: HS512 signing key must be at least 64 bytes")
	ErrTokenExpired       = errors.New("jwt: token expired")
	// ErrInvalidToken wraps every other verification failure.
	ErrInvalidToken = errors.New("jwt: invalid token")
)

// JWT issues and checks access tokens.
type JWT interface {
	Generate(uid int64, email string, roles []string) (string, error)
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type authKey struct{}

type Config struct {
	Secret    []byte
	Issuer    string
	Audiences []string
	TTL       time.Duration
	// Leeway tolerates clock skew between issuer and verifier.
	Leeway time.Duration
	Clock  clocker
	// UUID produces the jti claim.
	UUID generator
}

// Claims is the access token payload. Subject always mirrors UserID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64    `json:"user_id,string"`
	UserEmail string   `json:"user_email"`
	Roles     []string `json:"roles,omitempty"`
}

// HasAnyRole reports whether the claims carry at least one of roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	if c == nil {
		return false
	}
	return slices.ContainsFunc(c.Roles, func(have string) bool {
		return slices.Contains(roles, have)
	})
}

// GetAuth returns the claims of the authenticated caller or nil.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(authKey{}).(Claims)
	if !ok {
		return nil
	}
	return &clm
}

func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, authKey{}, clm)
}
