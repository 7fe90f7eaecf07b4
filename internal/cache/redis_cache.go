package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// RedisCache stores odds quotes and settled bet records in Redis. Quote
// freshness is enforced with the configured TTL, so a cached quote is by
// construction within its validity window.
type RedisCache struct {
	client     *redis.Client
	quoteTTL   time.Duration
	settledTTL time.Duration
	logger     zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr       string // e.g., "localhost:6379"
	Password   string
	DB         int
	QuoteTTL   time.Duration // quote freshness window, e.g., 5 * time.Minute
	SettledTTL time.Duration // retention for settled bet records
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client:     client,
		quoteTTL:   config.QuoteTTL,
		settledTTL: config.SettledTTL,
		logger:     logger.With().Str("component", "redis_cache").Logger(),
	}
}

func quoteKey(subject string, betType models.BetType) string {
	return fmt.Sprintf("quote:%s:%s", subject, betType)
}

func settledKey(betID string) string {
	return fmt.Sprintf("settled:%s", betID)
}

// SetQuote caches a quote under its exact (subject, bet type) key
func (c *RedisCache) SetQuote(ctx context.Context, quote *models.OddsQuote) error {
	key := quoteKey(quote.Subject, quote.BetType)

	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.quoteTTL).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.quoteTTL).
		Msg("cached quote")

	return nil
}

// GetQuote retrieves a cached quote. A miss returns (nil, nil).
func (c *RedisCache) GetQuote(ctx context.Context, subject string, betType models.BetType) (*models.OddsQuote, error) {
	data, err := c.client.Get(ctx, quoteKey(subject, betType)).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var quote models.OddsQuote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", err)
	}

	return &quote, nil
}

// SetSettled stores a settled bet record
func (c *RedisCache) SetSettled(ctx context.Context, settled *models.SettledBet) error {
	data, err := json.Marshal(settled)
	if err != nil {
		return fmt.Errorf("failed to marshal settled bet: %w", err)
	}

	if err := c.client.Set(ctx, settledKey(settled.BetID), data, c.settledTTL).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("bet_id", settled.BetID).
		Str("result", string(settled.Result)).
		Msg("cached settled bet")

	return nil
}

// GetSettled retrieves a settled bet record by bet ID. A miss returns (nil, nil).
func (c *RedisCache) GetSettled(ctx context.Context, betID string) (*models.SettledBet, error) {
	data, err := c.client.Get(ctx, settledKey(betID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var settled models.SettledBet
	if err := json.Unmarshal(data, &settled); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settled bet: %w", err)
	}

	return &settled, nil
}

// SetSettledBatch stores multiple settled bet records in one pipeline
func (c *RedisCache) SetSettledBatch(ctx context.Context, settledList []*models.SettledBet) error {
	if len(settledList) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for _, settled := range settledList {
		data, err := json.Marshal(settled)
		if err != nil {
			c.logger.Error().Err(err).Str("bet_id", settled.BetID).Msg("failed to marshal settled bet")
			continue
		}
		pipe.Set(ctx, settledKey(settled.BetID), data, c.settledTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", len(settledList)).
		Msg("cached batch of settled bets")

	return nil
}

// GetSettledByUser retrieves all cached settled bets for a user
func (c *RedisCache) GetSettledByUser(ctx context.Context, userID int64) ([]*models.SettledBet, error) {
	var cursor uint64
	var keys []string

	for {
		scanKeys, next, err := c.client.Scan(ctx, cursor, "settled:*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}
		keys = append(keys, scanKeys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	settledList := make([]*models.SettledBet, 0, len(keys))
	for _, key := range keys {
		data, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var settled models.SettledBet
		if err := json.Unmarshal(data, &settled); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal settled bet")
			continue
		}

		if settled.UserID == userID {
			settledList = append(settledList, &settled)
		}
	}

	return settledList, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
