package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	userdomain "movie_backend/internal/feature/user/domain"
	userentity "movie_backend/internal/feature/user/domain/entity"
	jwtmw "movie_backend/internal/platform/jwt"
)

// mockUserFinder is a mock implementation of UserFinder backed by a map.
type mockUserFinder struct {
	users map[string]*userentity.User
	err   error
}

func (m *mockUserFinder) GetByEmail(_ context.Context, email string) (*userentity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, userdomain.ErrUserNotFound
}

// fakeRevoker is an in-memory TokenRevoker.
type fakeRevoker struct {
	revoked  map[string]time.Time
	checkErr error
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: map[string]time.Time{}}
}

func (f *fakeRevoker) Revoke(_ context.Context, id string, expiresAt time.Time) error {
	f.revoked[id] = expiresAt
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	_, ok := f.revoked[id]
	return ok, nil
}

// failingGenerator always fails to sign.
type failingGenerator struct{}

func (failingGenerator) GenerateToken(string) (string, error) {
	return "", errors.New("signing failed")
}

type authFixture struct {
	users     *mockUserFinder
	generator *jwtmw.Generator
	verifier  *jwtmw.Verifier
	revoker   *fakeRevoker
	auth      *authUsecase
	guard     *Guard
}

func setupAuth(t *testing.T) *authFixture {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &mockUserFinder{users: map[string]*userentity.User{
		"a@x.com": {ID: "1", Email: "a@x.com", Password: string(hashed)},
	}}

	gen, err := jwtmw.NewGenerator("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	ver, err := jwtmw.NewVerifier("test-secret", "HS256")
	require.NoError(t, err)
	rev := newFakeRevoker()

	return &authFixture{
		users:     users,
		generator: gen,
		verifier:  ver,
		revoker:   rev,
		auth:      NewAuthUsecase(users, gen, ver, rev),
		guard:     NewGuard(users, ver, rev),
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login", func(t *testing.T) {
		f := setupAuth(t)
		token, err := f.auth.Login(ctx, "a@x.com", "p1")
		require.NoError(t, err)

		claims, err := f.verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Subject)
	})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "a@x.com", "wrong"},
		{"unknown user", "nobody@x.com", "p1"},
		{"empty password", "a@x.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupAuth(t)
			token, err := f.auth.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}

	t.Run("user lookup failure is not reported as bad credentials", func(t *testing.T) {
		f := setupAuth(t)
		f.users.err = errors.New("database is down")
		token, err := f.auth.Login(ctx, "a@x.com", "p1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, f.users.err)
		assert.Empty(t, token)
	})

	t.Run("token generation failure", func(t *testing.T) {
		f := setupAuth(t)
		uc := NewAuthUsecase(f.users, failingGenerator{}, f.verifier, f.revoker)
		_, err := uc.Login(ctx, "a@x.com", "p1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()
	f := setupAuth(t)

	token, err := f.auth.Login(ctx, "a@x.com", "p1")
	require.NoError(t, err)

	_, ok := f.guard.ResolveIdentity(ctx, token)
	require.True(t, ok)

	require.NoError(t, f.auth.Logout(ctx, token))
	assert.Len(t, f.revoker.revoked, 1)

	_, ok = f.guard.ResolveIdentity(ctx, token)
	assert.False(t, ok, "a revoked token no longer resolves")

	assert.ErrorIs(t, f.auth.Logout(ctx, "garbage"), ErrUnauthenticated)
}

func TestGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the token subject", func(t *testing.T) {
		f := setupAuth(t)
		token, err := f.generator.GenerateToken("a@x.com")
		require.NoError(t, err)

		user, ok := f.guard.ResolveIdentity(ctx, token)
		require.True(t, ok)
		assert.Equal(t, "1", user.ID)

		user, err = f.guard.RequireIdentity(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
	})

	t.Run("failures", func(t *testing.T) {
		f := setupAuth(t)
		deleted, err := f.generator.GenerateToken("gone@x.com")
		require.NoError(t, err)
		other, err := jwtmw.NewGenerator("other-secret", "HS256", time.Minute)
		require.NoError(t, err)
		forged, err := other.GenerateToken("a@x.com")
		require.NoError(t, err)

		for name, token := range map[string]string{
			"empty":        "",
			"garbage":      "not-a-token",
			"forged":       forged,
			"unknown user": deleted,
		} {
			user, ok := f.guard.ResolveIdentity(ctx, token)
			assert.False(t, ok, name)
			assert.Nil(t, user, name)

			_, err := f.guard.RequireIdentity(ctx, token)
			assert.ErrorIs(t, err, ErrUnauthenticated, name)
		}
	})

	t.Run("revocation check failure denies access", func(t *testing.T) {
		f := setupAuth(t)
		token, err := f.generator.GenerateToken("a@x.com")
		require.NoError(t, err)
		f.revoker.checkErr = errors.New("redis down")

		_, ok := f.guard.ResolveIdentity(ctx, token)
		assert.False(t, ok)
	})

	t.Run("user lookup failure", func(t *testing.T) {
		f := setupAuth(t)
		token, err := f.generator.GenerateToken("a@x.com")
		require.NoError(t, err)
		f.users.err = errors.New("db down")

		_, err = f.guard.RequireIdentity(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
