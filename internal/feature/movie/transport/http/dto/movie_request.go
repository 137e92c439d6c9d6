// Package dto defines data transfer objects for the movie feature's HTTP transport layer.
package dto

import (
	"movie_backend/internal/feature/movie/domain/entity"
	"movie_backend/internal/feature/movie/usecase"
)

// CreateMovieReq represents the request body for the /movie/create endpoint.
type CreateMovieReq struct {
	Title           string       `json:"title" binding:"required,max=255"`
	Description     string       `json:"description" binding:"required,max=1000"`
	PublicationYear int          `json:"publication_year" binding:"required"`
	Genre           entity.Genre `json:"genre" binding:"required,genre"`
	Rating          *float64     `json:"rating" binding:"omitempty,min=0,max=10"`
	IsPublic        bool         `json:"is_public"`
}

// Input converts the request into the usecase input.
func (r CreateMovieReq) Input() usecase.CreateMovieInput {
	return usecase.CreateMovieInput{
		Title:           r.Title,
		Description:     r.Description,
		PublicationYear: r.PublicationYear,
		Genre:           r.Genre,
		Rating:          r.Rating,
		IsPublic:        r.IsPublic,
	}
}

// UpdateMovieReq is a partial update. Absent fields are left unchanged.
type UpdateMovieReq struct {
	Title           *string       `json:"title" binding:"omitempty,min=1,max=255"`
	Description     *string       `json:"description" binding:"omitempty,max=1000"`
	PublicationYear *int          `json:"publication_year"`
	Genre           *entity.Genre `json:"genre" binding:"omitempty,genre"`
	Rating          *float64      `json:"rating" binding:"omitempty,min=0,max=10"`
	IsPublic        *bool         `json:"is_public"`
}

// Input converts the request into the usecase input.
func (r UpdateMovieReq) Input() usecase.UpdateMovieInput {
	return usecase.UpdateMovieInput{
		Title:           r.Title,
		Description:     r.Description,
		PublicationYear: r.PublicationYear,
		Genre:           r.Genre,
		Rating:          r.Rating,
		IsPublic:        r.IsPublic,
	}
}

// ListQuery holds the pagination query of the listing endpoints.
type ListQuery struct {
	Page     int   `form:"page,default=1" binding:"min=1"`
	PageSize int   `form:"page_size,default=10" binding:"min=1,max=100"`
	IsPublic *bool `form:"is_public"`
}
