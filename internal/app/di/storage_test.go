package di

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"movie_backend/internal/config"
	"movie_backend/internal/platform/repository"
)

func memoryRepository() config.Repository {
	return config.Repository{Type: "sqlite", SQLURL: "sqlite://:memory:"}
}

func TestOpenStorage_SQL(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		debug      bool
		wantLogger logger.Interface
	}{
		{"quiet by default", false, logger.Default.LogMode(logger.Warn)},
		{"debug logs every statement", true, logger.Default.LogMode(logger.Info)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, err := OpenStorage(ctx, memoryRepository(), StorageOptions{Migrate: true, Debug: tt.debug})
			require.NoError(t, err)
			t.Cleanup(func() { _ = storage.Close(ctx) })

			assert.Equal(t, repository.ModeSQL, storage.Conn.Mode)
			assert.Equal(t, tt.wantLogger, storage.Conn.SQL.Config.Logger)
			assert.True(t, storage.Conn.SQL.Migrator().HasTable("users"))
			assert.True(t, storage.Conn.SQL.Migrator().HasTable("movies"))
		})
	}
}

func TestSQLConfig(t *testing.T) {
	cfg := memoryRepository()
	assert.True(t, sqlConfig(cfg, true).Debug)
	assert.False(t, sqlConfig(cfg, false).Debug)
	assert.Equal(t, cfg.SQLURL, sqlConfig(cfg, false).URL)
}

func TestOpenStorage_MigrationFailureClosesPool(t *testing.T) {
	var opened *gorm.DB
	orig := migrateSQL
	migrateSQL = func(gdb *gorm.DB) error {
		opened = gdb
		return errors.New("migration failed")
	}
	t.Cleanup(func() { migrateSQL = orig })

	storage, err := OpenStorage(context.Background(), memoryRepository(), StorageOptions{Migrate: true})
	require.Error(t, err)
	assert.Nil(t, storage)

	require.NotNil(t, opened)
	sqlDB, err := opened.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "the pool is closed after a failed migration")
}

func TestOpenStorage_UnsupportedBackend(t *testing.T) {
	storage, err := OpenStorage(context.Background(), config.Repository{Type: "cassandra"}, StorageOptions{})
	assert.ErrorIs(t, err, repository.ErrUnsupportedBackend)
	assert.Nil(t, storage)
}
