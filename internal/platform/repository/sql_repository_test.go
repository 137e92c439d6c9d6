package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database with foreign keys enabled.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// every pooled connection would otherwise get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&testOwnerModel{}, &testItemModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func newItemRepo(t *testing.T, db *gorm.DB) *SQLRepository[testItem, testItemModel, *testItemModel] {
	t.Helper()
	repo, err := NewSQLRepository[testItem, testItemModel](db)
	require.NoError(t, err)
	return repo
}

func newOwnerRepo(t *testing.T, db *gorm.DB) *SQLRepository[testOwner, testOwnerModel, *testOwnerModel] {
	t.Helper()
	repo, err := NewSQLRepository[testOwner, testOwnerModel](db)
	require.NoError(t, err)
	return repo
}

func TestSQLRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	owners := newOwnerRepo(t, db)
	items := newItemRepo(t, db)

	owner, err := owners.Create(ctx, Fields{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "1", owner.ID)

	before := time.Now().Add(-time.Second)
	created, err := items.Create(ctx, Fields{
		"name":      "first",
		"kind":      testKind("Action"),
		"is_public": true,
		"owner_id":  owner.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.CreatedAt.After(before), "created_at must be stamped per call")
	assert.False(t, created.UpdatedAt.IsZero())

	found, err := items.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "first", found.Name)
	assert.Equal(t, testKind("Action"), found.Kind)
	assert.True(t, found.IsPublic)
	require.NotNil(t, found.OwnerID)
	assert.Equal(t, owner.ID, *found.OwnerID)
	assert.Equal(t, created.CreatedAt.Unix(), found.CreatedAt.Unix())

	var stored string
	require.NoError(t, db.Raw("SELECT kind FROM items WHERE id = ?", 1).Scan(&stored).Error)
	assert.Equal(t, "Action", stored)
}

func TestSQLRepository_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	items := newItemRepo(t, setupTestDB(t))

	tests := []struct {
		name string
		id   string
	}{
		{"absent id", "999"},
		{"non-numeric id", "abc"},
		{"hex object id", "507f1f77bcf86cd799439011"},
		{"negative id", "-1"},
		{"empty id", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := items.Get(ctx, tt.id)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, found)
		})
	}
}

func TestSQLRepository_Update(t *testing.T) {
	ctx := context.Background()
	items := newItemRepo(t, setupTestDB(t))

	created, err := items.Create(ctx, Fields{"name": "before", "kind": testKind("Drama")})
	require.NoError(t, err)

	t.Run("empty update is a no-op", func(t *testing.T) {
		got, err := items.Update(ctx, created.ID, Fields{})
		require.NoError(t, err)
		assert.Equal(t, created.Name, got.Name)
		assert.Equal(t, created.Kind, got.Kind)
		assert.Equal(t, created.UpdatedAt.Unix(), got.UpdatedAt.Unix())
	})

	t.Run("partial update merges fields", func(t *testing.T) {
		got, err := items.Update(ctx, created.ID, Fields{"is_public": true})
		require.NoError(t, err)
		assert.True(t, got.IsPublic)
		assert.Equal(t, "before", got.Name, "untouched fields keep their value")
		assert.Equal(t, testKind("Drama"), got.Kind)
		assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("missing id", func(t *testing.T) {
		got, err := items.Update(ctx, "404", Fields{"name": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := items.Update(ctx, "not-a-number", Fields{"name": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLRepository_Delete(t *testing.T) {
	ctx := context.Background()
	items := newItemRepo(t, setupTestDB(t))

	created, err := items.Create(ctx, Fields{"name": "doomed"})
	require.NoError(t, err)

	deleted, err := items.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "doomed", deleted.Name, "delete returns the prior state")

	_, err = items.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = items.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound, "deleting an absent id is not a fault")
}

func TestSQLRepository_GetByFilters(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	owners := newOwnerRepo(t, db)
	items := newItemRepo(t, db)

	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, err := owners.Create(ctx, Fields{"email": email})
		require.NoError(t, err)
	}

	t.Run("email filter matches at most one record", func(t *testing.T) {
		got, err := owners.GetByFilters(ctx, Fields{"email": "b@x.com"}, 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b@x.com", got[0].Email)

		got, err = owners.GetByFilters(ctx, Fields{"email": "nobody@x.com"}, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	for i := 1; i <= 5; i++ {
		_, err := items.Create(ctx, Fields{"name": fmt.Sprintf("item-%d", i), "is_public": i%2 == 1, "owner_id": "1"})
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		filters Fields
		offset  int
		limit   int
		want    []string
	}{
		{"no filters", nil, 0, 0, []string{"item-1", "item-2", "item-3", "item-4", "item-5"}},
		{"conjunction", Fields{"is_public": true, "owner_id": "1"}, 0, 0, []string{"item-1", "item-3", "item-5"}},
		{"offset and limit", nil, 1, 2, []string{"item-2", "item-3"}},
		{"offset without limit", nil, 3, 0, []string{"item-4", "item-5"}},
		{"offset beyond count", nil, 10, 5, []string{}},
		{"filter by id", Fields{"id": "2"}, 0, 0, []string{"item-2"}},
		{"unknown owner", Fields{"owner_id": "2"}, 0, 0, []string{}},
		{"malformed owner", Fields{"owner_id": "zzz"}, 0, 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := items.GetByFilters(ctx, tt.filters, tt.offset, tt.limit)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, it := range got {
				names = append(names, it.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	all, err := items.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSQLRepository_FieldValidation(t *testing.T) {
	ctx := context.Background()
	items := newItemRepo(t, setupTestDB(t))

	_, err := items.GetByFilters(ctx, Fields{"colour": "red"}, 0, 0)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = items.Create(ctx, Fields{"name": "x", "colour": "red"})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = items.Create(ctx, Fields{"id": "7", "name": "x"})
	assert.ErrorIs(t, err, ErrReadOnlyField)

	created, err := items.Create(ctx, Fields{"name": "x"})
	require.NoError(t, err)

	_, err = items.Update(ctx, created.ID, Fields{"colour": "red"})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = items.Create(ctx, Fields{"name": "y", "owner_id": "not-an-id"})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestSQLRepository_Duplicate(t *testing.T) {
	ctx := context.Background()
	owners := newOwnerRepo(t, setupTestDB(t))

	_, err := owners.Create(ctx, Fields{"email": "dup@x.com"})
	require.NoError(t, err)

	_, err = owners.Create(ctx, Fields{"email": "dup@x.com"})
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := owners.GetByFilters(ctx, Fields{"email": "dup@x.com"}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLRepository_DeleteCascadesToReferencingRows(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	owners := newOwnerRepo(t, db)
	items := newItemRepo(t, db)

	owner, err := owners.Create(ctx, Fields{"email": "owner@x.com"})
	require.NoError(t, err)
	_, err = items.Create(ctx, Fields{"name": "owned", "owner_id": owner.ID})
	require.NoError(t, err)
	_, err = items.Create(ctx, Fields{"name": "orphan"})
	require.NoError(t, err)

	_, err = owners.Delete(ctx, owner.ID)
	require.NoError(t, err)

	left, err := items.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "orphan", left[0].Name)
}
