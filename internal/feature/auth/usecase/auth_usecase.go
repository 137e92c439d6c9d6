// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	userdomain "movie_backend/internal/feature/user/domain"
	userentity "movie_backend/internal/feature/user/domain/entity"
	jwtmw "movie_backend/internal/platform/jwt"
)

var (
	// ErrInvalidCredentials はメールアドレスまたはパスワードが正しくない場合に返されます。
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated はトークンから利用者を特定できない場合に返されます。
	ErrUnauthenticated = errors.New("could not validate credentials")
)

// UserFinder はメールアドレスでユーザーを検索します。
// Goの慣例に従い、インターフェースはプロバイダー（user usecase）ではなくコンシューマー（auth usecase）が定義します。
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*userentity.User, error)
}

// TokenGenerator は署名済みアクセストークンを生成します。
type TokenGenerator interface {
	GenerateToken(subject string) (string, error)
}

// TokenVerifier はアクセストークンを検証し、クレームを返します。
type TokenVerifier interface {
	Verify(token string) (*jwtmw.Claims, error)
}

// TokenRevoker は失効済みトークンを管理します。
type TokenRevoker interface {
	Revoke(ctx context.Context, id string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// authUsecase はログイン・ログアウトを実装します。
type authUsecase struct {
	users     UserFinder
	generator TokenGenerator
	verifier  TokenVerifier
	revoker   TokenRevoker
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserFinder, generator TokenGenerator, verifier TokenVerifier, revoker TokenRevoker) *authUsecase {
	return &authUsecase{
		users:     users,
		generator: generator,
		verifier:  verifier,
		revoker:   revoker,
	}
}

// dummyHash はユーザーが存在しない場合の比較対象です（bcrypt.DefaultCost）。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login はユーザーを認証し、成功時にアクセストークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, userdomain.ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.generator.GenerateToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Logout はトークンを有効期限まで失効させます。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.verifier.Verify(token)
	if err != nil {
		return ErrUnauthenticated
	}
	return u.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt)
}
