package usecase

import (
	"context"
	"log/slog"

	userentity "movie_backend/internal/feature/user/domain/entity"
)

// Guard resolves the caller's identity from a bearer token.
type Guard struct {
	users    UserFinder
	verifier TokenVerifier
	revoker  TokenRevoker
}

// NewGuard creates a Guard.
func NewGuard(users UserFinder, verifier TokenVerifier, revoker TokenRevoker) *Guard {
	return &Guard{users: users, verifier: verifier, revoker: revoker}
}

// ResolveIdentity returns the user the token was issued to. Any failure, including an
// unavailable revocation list, yields (nil, false); it never returns an error.
func (g *Guard) ResolveIdentity(ctx context.Context, token string) (*userentity.User, bool) {
	if token == "" {
		return nil, false
	}
	claims, err := g.verifier.Verify(token)
	if err != nil {
		return nil, false
	}

	revoked, err := g.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		slog.Error("token revocation check failed", "error", err)
		return nil, false
	}
	if revoked {
		return nil, false
	}

	user, err := g.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RequireIdentity is ResolveIdentity for guarded operations: failure is ErrUnauthenticated.
func (g *Guard) RequireIdentity(ctx context.Context, token string) (*userentity.User, error) {
	user, ok := g.ResolveIdentity(ctx, token)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
