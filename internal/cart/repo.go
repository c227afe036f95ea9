package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cartKeyPrefix = "cart:"

// CartRedisRepository хранит корзину одним JSON-слотом на сессию.
// TTL записи равен длительности сессии: корзина исчезает вместе с ней
type CartRedisRepository struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
	ttl         time.Duration
}

func NewCartRedisRepository(
	redisClient *redis.Client,
	logger *zap.SugaredLogger,
	ttl time.Duration,
) *CartRedisRepository {
	return &CartRedisRepository{
		RedisClient: redisClient,
		Logger:      logger,
		ttl:         ttl,
	}
}

func (cr *CartRedisRepository) Load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := cr.RedisClient.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewCart(), nil
		}

		cr.Logger.Errorw(
			"Failed to get cart from Redis",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return nil, err
	}

	// Сессия при каждом запросе продлевается, корзина не должна отстать
	if err := cr.RedisClient.Expire(ctx, cartKeyPrefix+sessionID, cr.ttl).Err(); err != nil {
		cr.Logger.Warnw(
			"Failed to refresh cart TTL",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		// Испорченный снапшот не фатален: молча начинаем с пустой корзины
		cr.Logger.Warnw(
			"Corrupted cart snapshot, falling back to empty cart",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return NewCart(), nil
	}
	if c.Lines == nil {
		c.Lines = []CartLine{}
	}

	return &c, nil
}

func (cr *CartRedisRepository) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		cr.Logger.Errorw(
			"Failed to encode cart to JSON",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return err
	}

	err = cr.RedisClient.Set(ctx, cartKeyPrefix+sessionID, data, cr.ttl).Err()
	if err != nil {
		cr.Logger.Errorw(
			"Failed to save cart to Redis",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return err
	}

	return nil
}

func (cr *CartRedisRepository) Delete(ctx context.Context, sessionID string) error {
	err := cr.RedisClient.Del(ctx, cartKeyPrefix+sessionID).Err()
	if err != nil {
		cr.Logger.Errorw(
			"Failed to delete cart from Redis",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return err
	}

	return nil
}
