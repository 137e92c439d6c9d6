// Package middleware はBearerトークンから利用者を特定するGinミドルウェアを提供します。
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	userentity "movie_backend/internal/feature/user/domain/entity"
	"movie_backend/internal/platform/http/apierr"
	jwtmw "movie_backend/internal/platform/jwt"
)

const (
	// ContextUser はGinコンテキストに保存される利用者のキーです。
	ContextUser = "currentUser"
	// ContextToken は検証済みトークン文字列のキーです（ログアウトで使用）。
	ContextToken = "accessToken"
)

// IdentityResolver はトークンから利用者を特定します。
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*userentity.User, bool)
}

// OptionalAuth はトークンがあれば利用者をコンテキストに設定します。
// トークンがない・無効な場合も匿名として処理を続行します。
func OptionalAuth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := jwtmw.BearerToken(c); ok {
			if user, ok := resolver.ResolveIdentity(c.Request.Context(), token); ok {
				c.Set(ContextUser, user)
				c.Set(ContextToken, token)
			}
		}
		c.Next()
	}
}

// RequireAuth は認証済みの利用者のみ通過させます。
// 特定できない場合は401とWWW-Authenticate: Bearerを返します。
func RequireAuth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := jwtmw.BearerToken(c)
		if !ok {
			apierr.Unauthenticated(c)
			return
		}
		user, ok := resolver.ResolveIdentity(c.Request.Context(), token)
		if !ok {
			apierr.Unauthenticated(c)
			return
		}
		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// CurrentUser はミドルウェアが設定した利用者を返します。匿名の場合はfalseです。
func CurrentUser(c *gin.Context) (*userentity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*userentity.User)
	return user, ok && user != nil
}

// CurrentUserID は利用者のIDを返します。匿名の場合は空文字です。
func CurrentUserID(c *gin.Context) string {
	if user, ok := CurrentUser(c); ok {
		return user.ID
	}
	return ""
}

// CurrentToken はミドルウェアが検証したトークンを返します。
func CurrentToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}
