package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every reason a token is rejected: bad signature, wrong algorithm,
// expiry, or missing claims.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified content of an access token.
type Claims struct {
	Subject   string
	ID        string
	ExpiresAt time.Time
}

// Verifier validates tokens produced by Generator.
type Verifier struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

// NewVerifier creates a verifier that only accepts tokens signed with alg.
func NewVerifier(secret, alg string) (*Verifier, error) {
	method, err := signingMethod(alg)
	if err != nil {
		return nil, err
	}
	return &Verifier{secret: []byte(secret), method: method}, nil
}

// Verify parses tokenStr, checks its signature and expiry, and returns its claims.
func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		// noneや他方式への差し替えを防ぐため、設定されたアルゴリズムのみ許可する
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	out := &Claims{Subject: claims.Subject, ID: claims.ID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
