package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ArturCreativeLab/studio-api/config"
	"github.com/ArturCreativeLab/studio-api/internal/bootstrap"
)

type connectInfraOptions struct {
	Logger    *slog.Logger
	Config    *config.AppConfig
	WantDB    bool
	WantRedis bool
}

// connectInfra wires up infrastructure dependencies based on CLI options.
func connectInfra(opts *connectInfraOptions) (*sql.DB, *redis.Client, error) {
	var (
		db          *sql.DB
		redisClient *redis.Client
		err         error
	)

	if opts.WantDB {
		if !opts.Config.Postgres.Configured() {
			return nil, nil, errors.New("database host not configured, set DB_HOST")
		}
		db, err = bootstrap.ConnectDB(bootstrap.DatabaseConfig{
			DBConfig:    opts.Config.Postgres,
			RedisConfig: opts.Config.Redis,
			Logger:      opts.Logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect db: %w", err)
		}
	}

	if opts.WantRedis {
		redisClient, err = bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
			DBConfig:    opts.Config.Postgres,
			RedisConfig: opts.Config.Redis,
			Logger:      opts.Logger,
		})
		if err != nil {
			if db != nil {
				if cerr := db.Close(); cerr != nil {
					err = errors.Join(err, fmt.Errorf("close db: %w", cerr))
				}
			}
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
	}

	return db, redisClient, nil
}

func closeInfra(logger *slog.Logger, db *sql.DB, redisClient *redis.Client) {
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("close db failed", "error", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis failed", "error", err)
		}
	}
}
