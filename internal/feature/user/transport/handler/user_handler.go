// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/feature/auth/transport/middleware"
	"movie_backend/internal/feature/user/domain"
	"movie_backend/internal/feature/user/domain/entity"
	"movie_backend/internal/feature/user/transport/http/dto"
	"movie_backend/internal/feature/user/usecase"
	"movie_backend/internal/platform/http/apierr"
)

// UserUsecase はユーザー操作のユースケースを定義します。
type UserUsecase interface {
	Create(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id string) (*entity.User, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400 INVALID_REQUESTを返却
// - メール重複時は400 USER_ALREADY_EXISTSを返却
// - 成功時は201を返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, "Invalid request body.")
		return
	}

	_, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			apierr.Abort(c, http.StatusBadRequest, apierr.CodeUserAlreadyExists, "User already exists.")
			return
		}
		slog.Error("signup failed", "error", err, "email", req.Email)
		apierr.Internal(c)
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageRes{Msg: "User created"})
}

// DeleteMe は認証済みユーザー自身と所有する映画を削除し、204を返却します。
func (h *UserHandler) DeleteMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierr.Unauthenticated(c)
		return
	}
	if _, err := h.users.Delete(c.Request.Context(), user.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			apierr.Abort(c, http.StatusNotFound, apierr.CodeNotFound, "User not found.")
			return
		}
		slog.Error("user deletion failed", "error", err, "user_id", user.ID)
		apierr.Internal(c)
		return
	}
	slog.Info("user deleted", "user_id", user.ID)
	c.Status(http.StatusNoContent)
}
