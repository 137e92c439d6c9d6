// Package adapters はmovieフィーチャーの永続化モデルを提供します。
package adapters

import (
	"time"

	"movie_backend/internal/feature/movie/domain/entity"
	useradapters "movie_backend/internal/feature/user/adapters"
	"movie_backend/internal/platform/repository"
)

// MovieModel はmoviesテーブルのGORMモデルです。
// user_idはusers.idを参照し、ユーザー削除時にカスケード削除されます。
type MovieModel struct {
	ID              uint         `gorm:"primaryKey"`
	Title           string       `gorm:"size:255;not null"`
	Description     string       `gorm:"size:1000;not null"`
	PublicationYear int          `gorm:"not null"`
	Genre           entity.Genre `gorm:"size:32;not null"`
	Rating          *float64
	IsPublic        bool                    `gorm:"not null;default:false;index"`
	UserID          *uint                   `gorm:"index"`
	User            *useradapters.UserModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName はテーブル名（コレクション名）を返します。
func (MovieModel) TableName() string { return "movies" }

// ToEntity はモデルをドメインエンティティに変換します。
func (m *MovieModel) ToEntity() entity.Movie {
	return entity.Movie{
		ID:              repository.FromUint(m.ID),
		Title:           m.Title,
		Description:     m.Description,
		PublicationYear: m.PublicationYear,
		Genre:           m.Genre,
		Rating:          m.Rating,
		IsPublic:        m.IsPublic,
		UserID:          repository.FromUintPtr(m.UserID),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// NewMovieRepository は接続コンテキストのモードに応じた映画リポジトリを生成します。
func NewMovieRepository(conn repository.Conn) (repository.Repository[entity.Movie], error) {
	return repository.New[entity.Movie, MovieModel](conn)
}
