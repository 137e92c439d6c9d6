// Package domain defines domain-level errors for the user feature.
package domain

import "errors"

var (
	// ErrUserNotFound indicates that no user matched the given id or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned by signup when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
)
