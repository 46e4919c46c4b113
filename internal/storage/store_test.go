package storage_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func exerciseStore(t *testing.T, store storage.Store) {
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "progress", `{"currentIndex":1}`))
	value, ok, err := store.Get(ctx, "progress")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"currentIndex":1}`, value)

	require.NoError(t, store.Set(ctx, "progress", `{"currentIndex":2}`))
	value, _, err = store.Get(ctx, "progress")
	require.NoError(t, err)
	assert.Equal(t, `{"currentIndex":2}`, value, "set replaces")

	require.NoError(t, store.Remove(ctx, "progress"))
	_, ok, err = store.Get(ctx, "progress")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remove(ctx, "progress"), "removing twice is fine")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, storage.NewMemoryStore())
}

func TestGormStore(t *testing.T) {
	store, err := storage.NewGormStore(openDB(t))
	require.NoError(t, err)
	exerciseStore(t, store)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := storage.Open(ctx, storage.Options{Driver: storage.DriverMemory})
		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStore{}, store)
		assert.NoError(t, closeFn(ctx))
	})

	t.Run("DatabaseRequiresDB", func(t *testing.T) {
		_, _, err := storage.Open(ctx, storage.Options{Driver: storage.DriverDatabase})
		assert.Error(t, err)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, _, err := storage.Open(ctx, storage.Options{Driver: "etcd"})
		assert.ErrorContains(t, err, "unsupported STORAGE_DRIVER")
	})
}

func TestOpen_Database(t *testing.T) {
	store, closeFn, err := storage.Open(context.Background(), storage.Options{Driver: storage.DriverDatabase, DB: openDB(t)})
	require.NoError(t, err)
	defer closeFn(context.Background())
	assert.IsType(t, &storage.GormStore{}, store)
}
