package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// defaultTTLMinutes is the access token lifetime used when none is configured.
const defaultTTLMinutes = 60

// Claims is the identity payload embedded in an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService issues and verifies signed access tokens.
//
// The signing secret and token lifetime are fixed at construction and
// never mutated, so a TokenService is safe for concurrent use without
// locking. Tests construct services with their own secrets and lifetimes
// rather than reaching for process-wide state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret
// and access token lifetime in minutes.
func NewTokenService(secret string, ttlMinutes int) *TokenService {
	if ttlMinutes <= 0 {
		ttlMinutes = defaultTTLMinutes
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// TTL returns the configured access token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed HS256 JWT binding the given email claim.
// The token carries iat, exp = now + TTL, and a random jti.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// Verify validates a presented token and returns its claims.
//
// Failure modes, checked in order: structural decode (ErrTokenMalformed),
// signature over the decoded payload (ErrTokenTampered), then expiry
// (ErrTokenExpired). Only HS256 is accepted; an unexpected alg counts as
// tampering. Every failure wraps ErrTokenInvalid, so callers outside this
// package branch on one signal and the sub-reason stays internal.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, classifyTokenError(err))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, ErrTokenMalformed)
	}

	// A token without an email claim cannot resolve to a principal.
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: %w: missing email claim", ErrTokenInvalid, ErrTokenMalformed)
	}

	return claims, nil
}

// classifyTokenError maps jwt parse errors onto the internal rejection kinds.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrTokenTampered, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
