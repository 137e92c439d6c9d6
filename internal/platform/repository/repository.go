// Package repository provides the storage-agnostic data-access contract shared by all
// entity services, together with its relational (GORM) and document (MongoDB) implementations.
package repository

import (
	"context"
	"errors"
)

// Errors returned by every Repository implementation.
var (
	// ErrNotFound indicates that the identifier does not resolve to a stored record.
	// Malformed identifiers are reported with this error as well.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownField indicates that a filter or payload names a field the entity does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrReadOnlyField indicates an attempt to write the primary key.
	ErrReadOnlyField = errors.New("read-only field")

	// ErrInvalidReference indicates a reference field value that is not a valid identifier
	// for the active backend.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrDuplicate indicates that the backend rejected a write because of a unique constraint.
	ErrDuplicate = errors.New("duplicate record")

	// ErrUnsupportedBackend indicates an unrecognized backend mode.
	ErrUnsupportedBackend = errors.New("unsupported repository type")
)

// Fields is a field-name to value mapping used for filters, create payloads and partial updates.
// Keys are storage column names (snake_case), e.g. "email" or "is_public".
type Fields map[string]any

// Repository is the uniform data-access contract. T is the external shape of the entity,
// whose identifier is always a string regardless of the backend.
type Repository[T any] interface {
	// Get returns the record with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (*T, error)

	// GetAll returns every record in insertion order.
	GetAll(ctx context.Context) ([]T, error)

	// GetByFilters returns the records matching all filters (equality only), skipping offset
	// matches. A limit <= 0 means unbounded.
	GetByFilters(ctx context.Context, filters Fields, offset, limit int) ([]T, error)

	// Create persists a new record and returns it with its assigned id and timestamps.
	Create(ctx context.Context, data Fields) (*T, error)

	// Update merges data onto the stored record and returns the full post-update record.
	// An empty data mapping leaves the record untouched.
	Update(ctx context.Context, id string, data Fields) (*T, error)

	// Delete removes the record and returns its prior state.
	Delete(ctx context.Context, id string) (*T, error)
}

// Enum is implemented by closed enumerations that must be stored as their plain string value.
type Enum interface {
	EnumValue() string
}

// coerceEnum replaces enum values with their underlying string.
func coerceEnum(v any) any {
	if e, ok := v.(Enum); ok {
		return e.EnumValue()
	}
	return v
}
