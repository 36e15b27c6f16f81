package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/terraincognita07/utero/internal/db"
	"go.uber.org/zap"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Backend   string
	DBPath    string
	RedisAddr string
	Scope     string
}

// Open builds the configured backend wrapped in its scope. The returned
// close function releases the backend connection.
func Open(ctx context.Context, config Config, logger *zap.Logger) (Store, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch strings.ToLower(strings.TrimSpace(config.Backend)) {
	case "", BackendSQLite:
		database, err := db.OpenSQLite(config.DBPath, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := database.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite handle: %w", err)
		}
		store := NewSQLiteStore(db.NewRepositories(database).StateEntries)
		return Scoped(store, config.Scope), sqlDB.Close, nil
	case BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", config.RedisAddr, err)
		}
		return Scoped(NewRedisStore(client), config.Scope), client.Close, nil
	case BackendMemory:
		logger.Warn("memory store selected; state is lost on exit")
		return Scoped(NewMemoryStore(), config.Scope), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", config.Backend)
	}
}
