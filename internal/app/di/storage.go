// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"movie_backend/internal/config"
	movieadapters "movie_backend/internal/feature/movie/adapters"
	useradapters "movie_backend/internal/feature/user/adapters"
	"movie_backend/internal/platform/db"
	"movie_backend/internal/platform/mongodb"
	"movie_backend/internal/platform/repository"
)

// Storage holds the live backend handles for the configured repository mode.
type Storage struct {
	Conn  repository.Conn
	close func(context.Context) error
}

// StorageOptions tunes how OpenStorage prepares the backend.
type StorageOptions struct {
	// Migrate creates the relational schema, or ensures the document unique indexes.
	Migrate bool
	// Debug enables SQL statement logging on the relational backend.
	Debug bool
}

// migrateSQL creates the relational tables for every entity.
var migrateSQL = func(gdb *gorm.DB) error {
	return db.Migrate(gdb, &useradapters.UserModel{}, &movieadapters.MovieModel{})
}

// OpenStorage connects to the backend selected by cfg.Type.
func OpenStorage(ctx context.Context, cfg config.Repository, opts StorageOptions) (*Storage, error) {
	mode, err := repository.ParseMode(cfg.Type)
	if err != nil {
		return nil, err
	}

	switch mode {
	case repository.ModeMongo:
		client, err := mongodb.NewClient(ctx, cfg.MongoURL)
		if err != nil {
			return nil, err
		}
		if opts.Migrate {
			err := mongodb.EnsureUniqueIndexes(ctx, client.Database(cfg.MongoDBName),
				mongodb.UniqueIndex{Collection: useradapters.UserModel{}.TableName(), Field: "email"})
			if err != nil {
				_ = client.Disconnect(ctx)
				return nil, err
			}
		}
		slog.Info("repository backend ready", "mode", mode, "database", cfg.MongoDBName)
		return &Storage{
			Conn:  repository.Conn{Mode: mode, Mongo: client, MongoDatabase: cfg.MongoDBName},
			close: client.Disconnect,
		}, nil

	default:
		gdb, err := db.OpenDB(sqlConfig(cfg, opts.Debug))
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql handle: %w", err)
		}
		if opts.Migrate {
			if err := migrateSQL(gdb); err != nil {
				_ = sqlDB.Close()
				return nil, err
			}
		}
		slog.Info("repository backend ready", "mode", mode)
		return &Storage{
			Conn:  repository.Conn{Mode: mode, SQL: gdb},
			close: func(context.Context) error { return sqlDB.Close() },
		}, nil
	}
}

func sqlConfig(cfg config.Repository, debug bool) db.Config {
	return db.Config{URL: cfg.SQLURL, ConnectTimeout: cfg.ConnectTimeout, Debug: debug}
}

// Close releases the backend connection.
func (s *Storage) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}
