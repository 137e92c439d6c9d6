// Package domain defines domain-level errors for the movie feature.
package domain

import "errors"

var (
	// ErrMovieNotFound indicates that no movie exists with the given id.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrForbidden is returned when the ownership policy denies the operation.
	ErrForbidden = errors.New("not authorized to perform this action")

	// ErrMissingFields is returned by update when no field was supplied.
	ErrMissingFields = errors.New("at least one field must be provided")

	// ErrInvalidGenre is returned when a genre outside the closed set is supplied.
	ErrInvalidGenre = errors.New("invalid genre")

	// ErrInvalidPage is returned for a page below 1 or a page size outside 1..100.
	ErrInvalidPage = errors.New("invalid pagination parameters")
)
