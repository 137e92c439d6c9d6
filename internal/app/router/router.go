// Package router はHTTPルーティングを構成します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "movie_backend/internal/feature/auth/transport/handler"
	"movie_backend/internal/feature/auth/transport/middleware"
	moviehandler "movie_backend/internal/feature/movie/transport/handler"
	moviedto "movie_backend/internal/feature/movie/transport/http/dto"
	timehandler "movie_backend/internal/feature/timedata/transport/handler"
	userhandler "movie_backend/internal/feature/user/transport/handler"
)

// Handlers はルーターに登録するハンドラー一式です。
type Handlers struct {
	Health   gin.HandlerFunc
	Auth     *authhandler.AuthHandler
	User     *userhandler.UserHandler
	Movie    *moviehandler.MovieHandler
	Time     *timehandler.TimeHandler
	Identity middleware.IdentityResolver
}

// NewRouter はすべてのエンドポイントを登録したGinエンジンを返します。
func NewRouter(h *Handlers) (*gin.Engine, error) {
	// genreなどのカスタムバリデーションをバインド前に登録
	if err := moviedto.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors.Default())

	requireAuth := middleware.RequireAuth(h.Identity)
	optionalAuth := middleware.OptionalAuth(h.Identity)

	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	user := r.Group("/user")
	{
		// 新規ユーザー登録
		user.POST("/create", h.User.Create)
		// ログイン（JWT 発行）
		user.POST("/login", h.Auth.Login)
		// 認証必須
		user.POST("/logout", requireAuth, h.Auth.Logout)
		user.DELETE("/me", requireAuth, h.User.DeleteMe)
	}

	movie := r.Group("/movie")
	{
		movie.GET("/public", h.Movie.ListPublic)
		movie.POST("/create", requireAuth, h.Movie.Create)
		movie.GET("/user", requireAuth, h.Movie.ListMine)
		// 公開映画は匿名でも閲覧可能
		movie.GET("/:id", optionalAuth, h.Movie.Get)
		movie.PUT("/:id", requireAuth, h.Movie.Update)
		movie.DELETE("/:id/delete", requireAuth, h.Movie.Delete)
	}

	r.GET("/time/:area/:location", h.Time.Get)

	return r, nil
}
