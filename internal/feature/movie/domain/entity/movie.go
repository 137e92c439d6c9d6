// Package entity defines the domain entities for the movie feature.
package entity

import "time"

// Genre is the closed set of movie genres.
type Genre string

const (
	GenreAction      Genre = "Action"
	GenreComedy      Genre = "Comedy"
	GenreDrama       Genre = "Drama"
	GenreHorror      Genre = "Horror"
	GenreSciFi       Genre = "Sci-Fi"
	GenreRomance     Genre = "Romance"
	GenreThriller    Genre = "Thriller"
	GenreFantasy     Genre = "Fantasy"
	GenreDocumentary Genre = "Documentary"
	GenreMusical     Genre = "Musical"
)

// Genres lists every valid genre in declaration order.
var Genres = []Genre{
	GenreAction, GenreComedy, GenreDrama, GenreHorror, GenreSciFi,
	GenreRomance, GenreThriller, GenreFantasy, GenreDocumentary, GenreMusical,
}

// Valid reports whether g is one of the declared genres.
func (g Genre) Valid() bool {
	for _, v := range Genres {
		if g == v {
			return true
		}
	}
	return false
}

// EnumValue returns the stored representation of the genre.
func (g Genre) EnumValue() string { return string(g) }

// Movie is a catalogue entry owned by at most one user.
type Movie struct {
	ID              string    `json:"id" bson:"id"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description" bson:"description"`
	PublicationYear int       `json:"publication_year" bson:"publication_year"`
	Genre           Genre     `json:"genre" bson:"genre"`
	Rating          *float64  `json:"rating" bson:"rating"`
	IsPublic        bool      `json:"is_public" bson:"is_public"`
	UserID          *string   `json:"user_id" bson:"user_id"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// IsOwnedBy reports whether userID is the movie's owner. An empty userID owns nothing.
func (m *Movie) IsOwnedBy(userID string) bool {
	return userID != "" && m.UserID != nil && *m.UserID == userID
}
