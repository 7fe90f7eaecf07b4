package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// setupTestCache creates a cache backed by an in-process Redis
func setupTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	cache := NewRedisCache(
		RedisCacheConfig{
			Addr:       mr.Addr(),
			QuoteTTL:   5 * time.Minute,
			SettledTTL: 24 * time.Hour,
		},
		zerolog.Nop(),
	)
	t.Cleanup(func() { cache.Close() })

	return cache, mr
}

func sampleQuote() *models.OddsQuote {
	return &models.OddsQuote{
		Subject:          "Real Madrid",
		BetType:          models.BetTypeMoneyline,
		DecimalOdds:      2.1,
		Probability:      0.476,
		PayoutMultiplier: 1.1,
		Source:           models.SourceLive,
		ComputedAt:       time.Now().UTC().Truncate(time.Second),
	}
}

func sampleSettled(betID string, userID int64) *models.SettledBet {
	return &models.SettledBet{
		BetID:       betID,
		UserID:      userID,
		Subject:     "Real Madrid",
		BetType:     models.BetTypeMoneyline,
		Stake:       decimal.NewFromInt(100),
		DecimalOdds: 2.1,
		Result:      models.ResultWon,
		Payout:      decimal.NewFromInt(210),
		Profit:      decimal.NewFromInt(110),
		SettledAt:   time.Now().UTC().Truncate(time.Second),
	}
}

// TestQuoteRoundTrip tests caching and retrieving a quote
func TestQuoteRoundTrip(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	quote := sampleQuote()
	require.NoError(t, cache.SetQuote(ctx, quote))

	got, err := cache.GetQuote(ctx, "Real Madrid", models.BetTypeMoneyline)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, quote.Subject, got.Subject)
	assert.Equal(t, quote.BetType, got.BetType)
	assert.InDelta(t, quote.DecimalOdds, got.DecimalOdds, 1e-9)
	assert.Equal(t, models.SourceLive, got.Source)
}

// TestGetQuote_Miss tests that a cache miss returns (nil, nil)
func TestGetQuote_Miss(t *testing.T) {
	cache, _ := setupTestCache(t)

	got, err := cache.GetQuote(context.Background(), "Juventus", models.BetTypeMoneyline)

	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestGetQuote_KeyedByBetType tests that quote keys include the bet type
func TestGetQuote_KeyedByBetType(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetQuote(ctx, sampleQuote()))

	got, err := cache.GetQuote(ctx, "Real Madrid", models.BetTypeSpread)

	require.NoError(t, err)
	assert.Nil(t, got, "spread lookup must not hit the moneyline quote")
}

// TestGetQuote_ExpiresAfterTTL tests the quote freshness window
func TestGetQuote_ExpiresAfterTTL(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetQuote(ctx, sampleQuote()))

	mr.FastForward(5*time.Minute + time.Second)

	got, err := cache.GetQuote(ctx, "Real Madrid", models.BetTypeMoneyline)

	require.NoError(t, err)
	assert.Nil(t, got, "quote past the freshness window must read as a miss")
}

// TestSettledRoundTrip tests caching and retrieving a settled bet
func TestSettledRoundTrip(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	settled := sampleSettled("bet-1", 42)
	require.NoError(t, cache.SetSettled(ctx, settled))

	got, err := cache.GetSettled(ctx, "bet-1")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, settled.BetID, got.BetID)
	assert.Equal(t, models.ResultWon, got.Result)
	assert.True(t, got.Payout.Equal(decimal.NewFromInt(210)))
	assert.True(t, got.Profit.Equal(decimal.NewFromInt(110)))
}

// TestGetSettled_Miss tests that an unknown bet ID returns (nil, nil)
func TestGetSettled_Miss(t *testing.T) {
	cache, _ := setupTestCache(t)

	got, err := cache.GetSettled(context.Background(), "no-such-bet")

	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestSetSettledBatch tests pipelined batch writes
func TestSetSettledBatch(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	batch := []*models.SettledBet{
		sampleSettled("bet-1", 42),
		sampleSettled("bet-2", 42),
		sampleSettled("bet-3", 7),
	}
	require.NoError(t, cache.SetSettledBatch(ctx, batch))

	for _, settled := range batch {
		got, err := cache.GetSettled(ctx, settled.BetID)
		require.NoError(t, err)
		require.NotNil(t, got, "bet %s missing after batch write", settled.BetID)
	}
}

// TestSetSettledBatch_Empty tests that an empty batch is a no-op
func TestSetSettledBatch_Empty(t *testing.T) {
	cache, _ := setupTestCache(t)

	assert.NoError(t, cache.SetSettledBatch(context.Background(), nil))
}

// TestGetSettledByUser tests filtering settled bets by user
func TestGetSettledByUser(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetSettledBatch(ctx, []*models.SettledBet{
		sampleSettled("bet-1", 42),
		sampleSettled("bet-2", 42),
		sampleSettled("bet-3", 7),
	}))

	got, err := cache.GetSettledByUser(ctx, 42)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, settled := range got {
		assert.Equal(t, int64(42), settled.UserID)
	}
}

// TestPing tests connectivity check against a live and a dead server
func TestPing(t *testing.T) {
	cache, mr := setupTestCache(t)

	assert.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}
