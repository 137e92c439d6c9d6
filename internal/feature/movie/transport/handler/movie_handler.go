// Package handler provides HTTP handlers for the movie feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/feature/auth/transport/middleware"
	"movie_backend/internal/feature/movie/domain"
	"movie_backend/internal/feature/movie/domain/entity"
	"movie_backend/internal/feature/movie/transport/http/dto"
	"movie_backend/internal/feature/movie/usecase"
	"movie_backend/internal/platform/http/apierr"
)

// MovieUsecase defines the movie operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MovieUsecase interface {
	Create(ctx context.Context, actorID string, in usecase.CreateMovieInput) (*entity.Movie, error)
	ListPublic(ctx context.Context, page, pageSize int) ([]entity.Movie, error)
	ListByOwner(ctx context.Context, actorID string, isPublic *bool, page, pageSize int) ([]entity.Movie, error)
	Get(ctx context.Context, actorID, id string) (*entity.Movie, error)
	Update(ctx context.Context, actorID, id string, in usecase.UpdateMovieInput) (*entity.Movie, error)
	Delete(ctx context.Context, actorID, id string) (*entity.Movie, error)
}

// MovieHandler handles HTTP requests for movies.
type MovieHandler struct {
	movies MovieUsecase
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(movies MovieUsecase) *MovieHandler {
	return &MovieHandler{movies: movies}
}

// Create handles POST /movie/create. The caller becomes the owner.
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("movie create validation failed", "error", err)
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, "Invalid request body.")
		return
	}
	m, err := h.movies.Create(c.Request.Context(), middleware.CurrentUserID(c), req.Input())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMovieRes(m))
}

// ListPublic handles GET /movie/public.
func (h *MovieHandler) ListPublic(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, "Invalid pagination parameters.")
		return
	}
	ms, err := h.movies.ListPublic(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovieList(ms))
}

// ListMine handles GET /movie/user: the caller's movies, optionally filtered by is_public.
func (h *MovieHandler) ListMine(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, "Invalid pagination parameters.")
		return
	}
	ms, err := h.movies.ListByOwner(c.Request.Context(), middleware.CurrentUserID(c), q.IsPublic, q.Page, q.PageSize)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovieList(ms))
}

// Get handles GET /movie/:id. Anonymous callers can only read public movies.
func (h *MovieHandler) Get(c *gin.Context) {
	m, err := h.movies.Get(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovieRes(m))
}

// Update handles PUT /movie/:id with a partial body.
func (h *MovieHandler) Update(c *gin.Context) {
	var req dto.UpdateMovieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			// 空のボディは更新項目なしとして扱う
			h.fail(c, domain.ErrMissingFields)
			return
		}
		slog.Warn("movie update validation failed", "error", err)
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, "Invalid request body.")
		return
	}
	m, err := h.movies.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), req.Input())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovieRes(m))
}

// Delete handles DELETE /movie/:id/delete. Only the owner may delete.
func (h *MovieHandler) Delete(c *gin.Context) {
	if _, err := h.movies.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// fail maps usecase errors onto the structured error body.
func (h *MovieHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		apierr.Abort(c, http.StatusNotFound, apierr.CodeNotFound, "Movie not found.")
	case errors.Is(err, domain.ErrForbidden):
		slog.Warn("movie access denied", "user_id", middleware.CurrentUserID(c), "movie_id", c.Param("id"))
		apierr.Forbidden(c)
	case errors.Is(err, domain.ErrMissingFields):
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeMissing, "At least one field must be provided.")
	case errors.Is(err, domain.ErrInvalidGenre), errors.Is(err, domain.ErrInvalidPage):
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, err.Error())
	default:
		slog.Error("movie request failed", "error", err, "path", c.FullPath())
		apierr.Internal(c)
	}
}
