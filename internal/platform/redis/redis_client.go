package redis

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"market_movers/internal/platform/logger"
)

// pingTimeout bounds the connectivity check performed at startup.
const pingTimeout = 5 * time.Second

// Options describes how to reach the Redis server.
type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port, defaulting the port to 6379.
func (o Options) Addr() string {
	port := o.Port
	if port == "" {
		port = "6379"
	}
	return net.JoinHostPort(o.Host, port)
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.Host == "" {
		return nil, errors.New("redis host is empty")
	}
	addr := opts.Addr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	// 接続確認
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.L().Error().Err(err).Str("address", addr).Msg("redis connection failed")
		_ = rdb.Close()
		return nil, err
	}

	logger.L().Info().Str("address", addr).Msg("redis connection successful")
	return rdb, nil
}
