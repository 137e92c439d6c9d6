// Package usecase はuserフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"movie_backend/internal/feature/user/domain"
	"movie_backend/internal/feature/user/domain/entity"
	"movie_backend/internal/platform/repository"
)

// UserRepository はユーザーの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/repository）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByFilters(ctx context.Context, filters repository.Fields, offset, limit int) ([]entity.User, error)
	Create(ctx context.Context, data repository.Fields) (*entity.User, error)
	Delete(ctx context.Context, id string) (*entity.User, error)
}

// OwnedContentRemover はユーザーが所有するコンテンツを削除します。
// ドキュメントバックエンドには外部キーのカスケードがないため、ユーザー削除前に明示的に呼び出します。
type OwnedContentRemover interface {
	DeleteByOwner(ctx context.Context, ownerID string) (int, error)
}

// CreateUserInput は新規ユーザー登録の入力値です。Passwordは平文で受け取り、保存前にハッシュ化します。
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// userUsecase はユーザー管理のビジネスロジックを実装します。
type userUsecase struct {
	users    UserRepository
	content  OwnedContentRemover
	hashCost int
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, content OwnedContentRemover) *userUsecase {
	return &userUsecase{
		users:    users,
		content:  content,
		hashCost: bcrypt.DefaultCost,
	}
}

// Get はIDでユーザーを取得します。
func (u *userUsecase) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail はメールアドレスでユーザーを取得します。
// 存在しない場合はdomain.ErrUserNotFoundを返します。
func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := u.users.GetByFilters(ctx, repository.Fields{"email": email}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &users[0], nil
}

// Create はハッシュ化されたパスワードで新規ユーザーを登録します。
// 同じメールアドレスのユーザーが存在する場合はdomain.ErrUserAlreadyExistsを返します。
func (u *userUsecase) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	_, err := u.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrUserAlreadyExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.users.Create(ctx, repository.Fields{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"password":   string(hashed),
	})
	if err != nil {
		// 事前チェックと挿入の間で競合した場合もユニーク制約違反として扱う
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Delete はユーザーと所有するコンテンツを削除し、削除前のユーザーを返します。
func (u *userUsecase) Delete(ctx context.Context, id string) (*entity.User, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return nil, err
	}
	if _, err := u.content.DeleteByOwner(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete owned content: %w", err)
	}
	user, err := u.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
