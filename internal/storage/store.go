package storage

import (
	"context"
	"fmt"
)

// Store is a string-keyed durable key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

const (
	DriverMemory   = "memory"
	DriverDatabase = "database"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
)

func unsupported(driver string) error {
	return fmt.Errorf("unsupported STORAGE_DRIVER %q", driver)
}
