// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/feature/auth/transport/http/dto"
	"movie_backend/internal/feature/auth/transport/middleware"
	"movie_backend/internal/feature/auth/usecase"
	"movie_backend/internal/platform/http/apierr"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にアクセストークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// Logout はトークンを失効させます。
	Logout(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401 AUTH_ERRORを返却
// - 認証成功時はアクセストークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		apierr.Abort(c, http.StatusBadRequest, apierr.CodeInvalidRequest, "Invalid request body.")
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err, "email", req.Email)
			apierr.Internal(c)
			return
		}
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		apierr.Abort(c, http.StatusUnauthorized, apierr.CodeAuthError, "Invalid email or password")
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{AccessToken: token, TokenType: "bearer"})
}

// Logout は現在のアクセストークンを失効させ、204を返却します。
// RequireAuthミドルウェアの後段で使用します。
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
		if errors.Is(err, usecase.ErrUnauthenticated) {
			apierr.Unauthenticated(c)
			return
		}
		slog.Error("logout failed", "error", err, "user_id", middleware.CurrentUserID(c))
		apierr.Internal(c)
		return
	}
	slog.Info("user logout successful", "user_id", middleware.CurrentUserID(c))
	c.Status(http.StatusNoContent)
}
