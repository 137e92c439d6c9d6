package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildDialector はURLスキームに応じたドライバーが選択されることを検証します。
func TestBuildDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		wantName string
		wantErr  bool
	}{
		{name: "sqlite file", url: "sqlite://./movies.db", wantName: "sqlite"},
		{name: "sqlite memory", url: "sqlite://:memory:", wantName: "sqlite"},
		{name: "postgres", url: "postgres://u:p@localhost:5432/movies?sslmode=disable", wantName: "postgres"},
		{name: "postgresql alias", url: "postgresql://u:p@localhost/movies", wantName: "postgres"},
		{name: "empty sqlite path", url: "sqlite://", wantErr: true},
		{name: "mysql", url: "mysql://u:p@localhost/movies", wantErr: true},
		{name: "no scheme", url: "movies.db", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := BuildDialector(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

// TestOpenDB_SQLiteForeignKeys はSQLite接続で外部キー制約が有効になっていることを検証します。
func TestOpenDB_SQLiteForeignKeys(t *testing.T) {
	db, err := OpenDB(Config{URL: "sqlite://:memory:"})
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestMigrate(t *testing.T) {
	type widget struct {
		ID   uint `gorm:"primaryKey"`
		Name string
	}

	db, err := OpenDB(Config{URL: "sqlite://:memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db, &widget{}))
	assert.True(t, db.Migrator().HasTable(&widget{}))
}
