// Package jwtmw issues and verifies HMAC-signed access tokens and extracts them from requests.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnsupportedAlgorithm is returned when the configured algorithm is not an HMAC method.
var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// signingMethod resolves an HMAC signing method by name (HS256, HS384, HS512).
func signingMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	m, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	return m, nil
}

// Generator creates signed access tokens whose subject is the user's email.
type Generator struct {
	secret     []byte
	method     *jwt.SigningMethodHMAC
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a new JWT generator with the provided secret, algorithm and lifetime.
func NewGenerator(secret, alg string, expiration time.Duration) (*Generator, error) {
	method, err := signingMethod(alg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		secret:     []byte(secret),
		method:     method,
		expiration: expiration,
		now:        time.Now,
	}, nil
}

// GenerateToken creates a signed token with sub, exp, iat and a unique jti.
// The jti lets a single token be revoked before it expires.
func (g *Generator) GenerateToken(subject string) (string, error) {
	now := g.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
	}

	signed, err := jwt.NewWithClaims(g.method, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
