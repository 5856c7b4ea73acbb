// Package cache хранит выданные токены доступа в Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gogetaccount/pkg/logger"
)

const (
	keyPrefix = "account:access_token:"

	logMethodStore = "AccessTokenRepository.Store"

	msgTokenStored     = "access token stored"
	errorFailedToStore = "failed to store access token in redis"
)

// AccessTokenRepository реализует repositories.AccessTokenRepository.
type AccessTokenRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewAccessTokenRepository создает хранилище токенов. ttl <= 0 означает хранение без срока.
func NewAccessTokenRepository(client redis.Cmdable, ttl time.Duration) *AccessTokenRepository {
	if ttl < 0 {
		ttl = 0
	}
	return &AccessTokenRepository{client: client, ttl: ttl}
}

// Key возвращает ключ Redis для токена учетной записи.
func Key(accountID string) string {
	return keyPrefix + accountID
}

// Store перезаписывает токен учетной записи.
func (r *AccessTokenRepository) Store(ctx context.Context, accountID, token string) error {
	log := logger.Log(ctx).With(zap.String("method", logMethodStore), zap.String("accountID", accountID))

	if err := r.client.Set(ctx, Key(accountID), token, r.ttl).Err(); err != nil {
		log.Error(ctx, errorFailedToStore, zap.Error(err))
		return fmt.Errorf("%s: %w", errorFailedToStore, err)
	}

	log.Debug(ctx, msgTokenStored, zap.Duration("ttl", r.ttl))
	return nil
}
