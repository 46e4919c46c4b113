package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

const (
	keyPrefix       = "lifeinuk:"
	mongoCollection = "storage"
)

type Options struct {
	Driver        string
	DB            *gorm.DB
	RedisAddr     string
	RedisPassword string
	MongoURI      string
	MongoDatabase string
}

// Open builds the store selected by opts.Driver. The returned close function
// releases the driver's connections.
func Open(ctx context.Context, opts Options) (Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch opts.Driver {
	case DriverMemory:
		return NewMemoryStore(), noop, nil

	case DriverDatabase, "":
		if opts.DB == nil {
			return nil, nil, fmt.Errorf("storage driver %q requires a database", DriverDatabase)
		}
		store, err := NewGormStore(opts.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("migrate storage table: %w", err)
		}
		return store, noop, nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return NewRedisStore(client, keyPrefix), func(context.Context) error { return client.Close() }, nil

	case DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("ping mongo: %w", err)
		}
		collection := client.Database(opts.MongoDatabase).Collection(mongoCollection)
		return NewMongoStore(collection), client.Disconnect, nil

	default:
		return nil, nil, unsupported(opts.Driver)
	}
}
