// Package usecase implements the business logic for the movie feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie_backend/internal/feature/movie/domain"
	"movie_backend/internal/feature/movie/domain/entity"
	"movie_backend/internal/feature/movie/domain/policy"
	"movie_backend/internal/platform/repository"
)

const (
	// DefaultPageSize is used when the caller does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize bounds every listing.
	MaxPageSize = 100
)

// MovieRepository abstracts movie persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type MovieRepository interface {
	Get(ctx context.Context, id string) (*entity.Movie, error)
	GetByFilters(ctx context.Context, filters repository.Fields, offset, limit int) ([]entity.Movie, error)
	Create(ctx context.Context, data repository.Fields) (*entity.Movie, error)
	Update(ctx context.Context, id string, data repository.Fields) (*entity.Movie, error)
	Delete(ctx context.Context, id string) (*entity.Movie, error)
}

// CreateMovieInput carries the fields of a new movie. The owner is always the caller.
type CreateMovieInput struct {
	Title           string
	Description     string
	PublicationYear int
	Genre           entity.Genre
	Rating          *float64
	IsPublic        bool
}

// UpdateMovieInput is a partial update; nil fields are left untouched.
type UpdateMovieInput struct {
	Title           *string
	Description     *string
	PublicationYear *int
	Genre           *entity.Genre
	Rating          *float64
	IsPublic        *bool
}

func (in UpdateMovieInput) fields() repository.Fields {
	f := repository.Fields{}
	if in.Title != nil {
		f["title"] = *in.Title
	}
	if in.Description != nil {
		f["description"] = *in.Description
	}
	if in.PublicationYear != nil {
		f["publication_year"] = *in.PublicationYear
	}
	if in.Genre != nil {
		f["genre"] = *in.Genre
	}
	if in.Rating != nil {
		f["rating"] = *in.Rating
	}
	if in.IsPublic != nil {
		f["is_public"] = *in.IsPublic
	}
	return f
}

// movieUsecase implements movie management on top of the ownership policy.
type movieUsecase struct {
	movies MovieRepository
}

// NewMovieUsecase creates a new movieUsecase.
func NewMovieUsecase(movies MovieRepository) *movieUsecase {
	return &movieUsecase{movies: movies}
}

// offset validates a 1-based page request and converts it to an offset.
func offset(page, pageSize int) (int, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return 0, fmt.Errorf("%w: page=%d page_size=%d", domain.ErrInvalidPage, page, pageSize)
	}
	return (page - 1) * pageSize, nil
}

// Create stores a movie owned by actorID.
func (u *movieUsecase) Create(ctx context.Context, actorID string, in CreateMovieInput) (*entity.Movie, error) {
	if !in.Genre.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGenre, in.Genre)
	}
	data := repository.Fields{
		"title":            in.Title,
		"description":      in.Description,
		"publication_year": in.PublicationYear,
		"genre":            in.Genre,
		"is_public":        in.IsPublic,
		"user_id":          actorID,
	}
	if in.Rating != nil {
		data["rating"] = *in.Rating
	}
	return u.movies.Create(ctx, data)
}

// ListPublic returns one page of public movies in stored order.
func (u *movieUsecase) ListPublic(ctx context.Context, page, pageSize int) ([]entity.Movie, error) {
	off, err := offset(page, pageSize)
	if err != nil {
		return nil, err
	}
	return u.movies.GetByFilters(ctx, repository.Fields{"is_public": true}, off, pageSize)
}

// ListByOwner returns one page of the caller's movies, optionally narrowed by visibility.
func (u *movieUsecase) ListByOwner(ctx context.Context, actorID string, isPublic *bool, page, pageSize int) ([]entity.Movie, error) {
	off, err := offset(page, pageSize)
	if err != nil {
		return nil, err
	}
	filters := repository.Fields{"user_id": actorID}
	if isPublic != nil {
		filters["is_public"] = *isPublic
	}
	return u.movies.GetByFilters(ctx, filters, off, pageSize)
}

// Get returns a movie the actor may read. actorID is empty for anonymous callers.
func (u *movieUsecase) Get(ctx context.Context, actorID, id string) (*entity.Movie, error) {
	m, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanRead(actorID, m) {
		return nil, domain.ErrForbidden
	}
	return m, nil
}

// Update merges the supplied fields into a movie the actor may update.
func (u *movieUsecase) Update(ctx context.Context, actorID, id string, in UpdateMovieInput) (*entity.Movie, error) {
	data := in.fields()
	if len(data) == 0 {
		return nil, domain.ErrMissingFields
	}
	if in.Genre != nil && !in.Genre.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGenre, *in.Genre)
	}

	m, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdate(actorID, m) {
		return nil, domain.ErrForbidden
	}

	updated, err := u.movies.Update(ctx, id, data)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a movie owned by the actor and returns its prior state.
func (u *movieUsecase) Delete(ctx context.Context, actorID, id string) (*entity.Movie, error) {
	m, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanDelete(actorID, m) {
		return nil, domain.ErrForbidden
	}

	deleted, err := u.movies.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return deleted, nil
}

// DeleteByOwner removes every movie owned by ownerID and reports how many were removed.
// Movies that disappear concurrently are not counted.
func (u *movieUsecase) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	owned, err := u.movies.GetByFilters(ctx, repository.Fields{"user_id": ownerID}, 0, 0)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range owned {
		if _, err := u.movies.Delete(ctx, m.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return n, fmt.Errorf("delete movie %s: %w", m.ID, err)
		}
		n++
	}
	return n, nil
}

func (u *movieUsecase) find(ctx context.Context, id string) (*entity.Movie, error) {
	m, err := u.movies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}
