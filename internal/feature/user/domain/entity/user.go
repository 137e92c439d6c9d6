// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered account.
// IDs are strings at this boundary whatever the storage backend uses natively.
type User struct {
	// ID is the backend-assigned identifier rendered as a string.
	ID string `json:"id" bson:"id"`

	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`

	// Email is unique across all users and is the subject of issued access tokens.
	Email string `json:"email" bson:"email"`

	// Password is the bcrypt hash. It is never serialized to JSON.
	Password string `json:"-" bson:"password"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
