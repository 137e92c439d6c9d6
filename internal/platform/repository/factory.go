package repository

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

// Mode selects the storage engine behind every repository.
type Mode string

const (
	// ModeSQL stores entities in a relational database through GORM.
	ModeSQL Mode = "sqlite"
	// ModeMongo stores entities as MongoDB documents.
	ModeMongo Mode = "mongodb"
)

// ParseMode validates a backend-mode selector. An empty value selects the relational backend.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSQL:
		return ModeSQL, nil
	case ModeMongo:
		return ModeMongo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, s)
	}
}

// Conn is the connection context handed to New. It carries the live handles for the
// configured mode only; the handles are safe for concurrent use.
type Conn struct {
	Mode          Mode
	SQL           *gorm.DB
	Mongo         *mongo.Client
	MongoDatabase string
}

// New returns the repository for the entity whose GORM model is M and external shape is T.
// It is the only place that branches on the backend mode.
func New[T any, M any, PM Model[T, M]](conn Conn) (Repository[T], error) {
	switch conn.Mode {
	case ModeSQL:
		if conn.SQL == nil {
			return nil, errors.New("repository: relational mode requires a database handle")
		}
		repo, err := NewSQLRepository[T, M, PM](conn.SQL)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case ModeMongo:
		if conn.Mongo == nil || conn.MongoDatabase == "" {
			return nil, errors.New("repository: document mode requires a client and database name")
		}
		def, _, err := schemaOf[M]()
		if err != nil {
			return nil, err
		}
		return NewMongoRepository[T](conn.Mongo, conn.MongoDatabase, def), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, conn.Mode)
	}
}
