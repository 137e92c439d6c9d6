package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"movie_backend/internal/feature/movie/domain/entity"
)

// RegisterValidators registers the "genre" binding tag on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return entity.Genre(fl.Field().String()).Valid()
	})
}
