// Package policy decides which actor may read, update or delete a movie.
// An empty actor ID stands for an anonymous caller.
package policy

import "movie_backend/internal/feature/movie/domain/entity"

// CanRead allows public movies to everyone and private movies to their owner.
func CanRead(actorID string, m *entity.Movie) bool {
	return m.IsPublic || m.IsOwnedBy(actorID)
}

// CanUpdate follows the read rule: any authenticated caller may edit a public movie.
func CanUpdate(actorID string, m *entity.Movie) bool {
	return actorID != "" && CanRead(actorID, m)
}

// CanDelete is reserved to the owner regardless of visibility.
func CanDelete(actorID string, m *entity.Movie) bool {
	return m.IsOwnedBy(actorID)
}
