package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/petcarex/console/internal/config"
)

// RedisStore persists session tokens in Redis under a fixed key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis using the provided configuration.
func NewRedisStore(cfg config.RedisConfig, sess config.SessionConfig, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client, prefix: sess.KeyPrefix, ttl: sess.TTL()}
}

// SetToken overwrites any existing token for the session.
func (s *RedisStore) SetToken(ctx context.Context, sid, token string) error {
	return s.client.Set(ctx, s.key(sid), token, s.ttl).Err()
}

// GetToken returns the stored token or "" when none exists.
func (s *RedisStore) GetToken(ctx context.Context, sid string) (string, error) {
	val, err := s.client.Get(ctx, s.key(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// ClearToken removes the token for the session.
func (s *RedisStore) ClearToken(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid)).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}

// Ping verifies Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("redis client not configured")
	}
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) key(sid string) string {
	return s.prefix + ":" + sid
}
