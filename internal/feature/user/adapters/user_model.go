// Package adapters はuserフィーチャーの永続化モデルを提供します。
package adapters

import (
	"time"

	"movie_backend/internal/feature/user/domain/entity"
	"movie_backend/internal/platform/repository"
)

// UserModel はusersテーブルのGORMモデルです。
// ドキュメントバックエンドでも同じテーブル名がコレクション名として使われます。
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName はテーブル名（コレクション名）を返します。
func (UserModel) TableName() string { return "users" }

// ToEntity はモデルをドメインエンティティに変換します。
func (m *UserModel) ToEntity() entity.User {
	return entity.User{
		ID:        repository.FromUint(m.ID),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewUserRepository は接続コンテキストのモードに応じたユーザーリポジトリを生成します。
func NewUserRepository(conn repository.Conn) (repository.Repository[entity.User], error) {
	return repository.New[entity.User, UserModel](conn)
}
