package di

import (
	"movie_backend/internal/app/router"
	"movie_backend/internal/config"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	authusecase "movie_backend/internal/feature/auth/usecase"
	movieadapters "movie_backend/internal/feature/movie/adapters"
	moviehandler "movie_backend/internal/feature/movie/transport/handler"
	movieusecase "movie_backend/internal/feature/movie/usecase"
	timehandler "movie_backend/internal/feature/timedata/transport/handler"
	useradapters "movie_backend/internal/feature/user/adapters"
	userhandler "movie_backend/internal/feature/user/transport/handler"
	userusecase "movie_backend/internal/feature/user/usecase"
	platformhandler "movie_backend/internal/platform/http/handler"
	jwtmw "movie_backend/internal/platform/jwt"
	"movie_backend/internal/platform/repository"
)

// NewHandlers builds repositories, usecases and handlers on top of conn.
// Every entity service receives the repository selected by the connection's mode.
func NewHandlers(
	conn repository.Conn,
	auth config.Auth,
	revoker authusecase.TokenRevoker,
	times timehandler.TimeProvider,
) (*router.Handlers, error) {
	// Repository
	userRepo, err := useradapters.NewUserRepository(conn)
	if err != nil {
		return nil, err
	}
	movieRepo, err := movieadapters.NewMovieRepository(conn)
	if err != nil {
		return nil, err
	}

	// Token
	generator, err := jwtmw.NewGenerator(auth.SecretKey, auth.Algorithm, auth.TokenTTL())
	if err != nil {
		return nil, err
	}
	verifier, err := jwtmw.NewVerifier(auth.SecretKey, auth.Algorithm)
	if err != nil {
		return nil, err
	}

	// Usecase
	movieUC := movieusecase.NewMovieUsecase(movieRepo)
	userUC := userusecase.NewUserUsecase(userRepo, movieUC)
	authUC := authusecase.NewAuthUsecase(userUC, generator, verifier, revoker)
	guard := authusecase.NewGuard(userUC, verifier, revoker)

	// Handler
	return &router.Handlers{
		Health:   platformhandler.NewHealth(string(conn.Mode)),
		Auth:     authhandler.NewAuthHandler(authUC),
		User:     userhandler.NewUserHandler(userUC),
		Movie:    moviehandler.NewMovieHandler(movieUC),
		Time:     timehandler.NewTimeHandler(times),
		Identity: guard,
	}, nil
}
