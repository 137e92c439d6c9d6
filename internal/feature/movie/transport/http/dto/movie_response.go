package dto

import (
	"time"

	"movie_backend/internal/feature/movie/domain/entity"
)

// MovieRes is the public representation of a movie.
type MovieRes struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	PublicationYear int          `json:"publication_year"`
	Genre           entity.Genre `json:"genre"`
	Rating          *float64     `json:"rating"`
	IsPublic        bool         `json:"is_public"`
	UserID          *string      `json:"user_id"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// NewMovieRes converts a movie entity into its response shape.
func NewMovieRes(m *entity.Movie) MovieRes {
	return MovieRes{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		PublicationYear: m.PublicationYear,
		Genre:           m.Genre,
		Rating:          m.Rating,
		IsPublic:        m.IsPublic,
		UserID:          m.UserID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// NewMovieList converts a page of movies. An empty page is rendered as [] rather than null.
func NewMovieList(ms []entity.Movie) []MovieRes {
	out := make([]MovieRes, 0, len(ms))
	for i := range ms {
		out = append(out, NewMovieRes(&ms[i]))
	}
	return out
}
