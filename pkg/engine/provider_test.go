package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/bet-settlement-service/internal/mocks"
	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// stubRand replays a fixed sequence of draws
type stubRand struct {
	mu     sync.Mutex
	values []float64
	idx    int
}

func (r *stubRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[r.idx%len(r.values)]
	r.idx++
	return v
}

// memQuoteCache is an in-memory QuoteCache for deterministic tests
type memQuoteCache struct {
	mu     sync.Mutex
	quotes map[string]*models.OddsQuote
}

func newMemQuoteCache() *memQuoteCache {
	return &memQuoteCache{quotes: make(map[string]*models.OddsQuote)}
}

func (c *memQuoteCache) GetQuote(_ context.Context, subject string, betType models.BetType) (*models.OddsQuote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quotes[subject+"|"+string(betType)], nil
}

func (c *memQuoteCache) SetQuote(_ context.Context, quote *models.OddsQuote) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[quote.Subject+"|"+string(quote.BetType)] = quote
	return nil
}

// testProviderSetup is a helper struct to hold test dependencies
type testProviderSetup struct {
	provider *OddsProvider
	market   *mocks.MockMarketData
	cache    *memQuoteCache
	ctrl     *gomock.Controller
}

// setupTestProvider creates a provider with a mocked market feed and a pinned
// random source
func setupTestProvider(t *testing.T, draws ...float64) *testProviderSetup {
	ctrl := gomock.NewController(t)
	market := mocks.NewMockMarketData(ctrl)
	cache := newMemQuoteCache()

	if len(draws) == 0 {
		draws = []float64{0.5}
	}

	provider := NewOddsProvider(
		market,
		cache,
		ProviderParams{
			HouseEdge:        0.05,
			Sport:            "soccer",
			LiveFetchTimeout: 4 * time.Second,
		},
		&stubRand{values: draws},
		zerolog.Nop(),
	)

	return &testProviderSetup{
		provider: provider,
		market:   market,
		cache:    cache,
		ctrl:     ctrl,
	}
}

// TestGetQuote_InvalidInput tests fail-fast validation
func TestGetQuote_InvalidInput(t *testing.T) {
	setup := setupTestProvider(t)

	_, err := setup.provider.GetQuote(context.Background(), "", models.BetTypeMoneyline)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "subject is required")

	_, err = setup.provider.GetQuote(context.Background(), "Lakers", models.BetType("TREBLE"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bet type")
}

// TestGetQuote_LiveMoneyline tests pricing from a live market snapshot
func TestGetQuote_LiveMoneyline(t *testing.T) {
	setup := setupTestProvider(t)

	book := &models.MarketBook{
		GameID:   "game-1",
		HomeTeam: "Real Madrid CF",
		AwayTeam: "Sevilla FC",
		Moneyline: map[string]models.MarketEntry{
			"Real Madrid CF": {DecimalOdds: 2.5, AmericanPrice: 150},
			"Sevilla FC":     {DecimalOdds: 1.5, AmericanPrice: -200},
		},
	}
	setup.market.EXPECT().
		FetchSnapshot(gomock.Any(), "Real Madrid", "soccer").
		Return(book, nil)

	quote, err := setup.provider.GetQuote(context.Background(), "Real Madrid", models.BetTypeMoneyline)

	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, models.SourceLive, quote.Source)
	assert.InDelta(t, 2.375, quote.DecimalOdds, 1e-9) // 2.5 less the 5% edge
	assert.InDelta(t, 1.375, quote.PayoutMultiplier, 1e-9)
	assert.InDelta(t, 1/2.375, quote.Probability, 1e-9)
	assert.Equal(t, 150, quote.AmericanPrice)
	assert.InDelta(t, quote.DecimalOdds-1, quote.PayoutMultiplier, 1e-9)
}

// TestGetQuote_LiveSpreadCarriesLine tests that the spread point rides on the quote
func TestGetQuote_LiveSpreadCarriesLine(t *testing.T) {
	setup := setupTestProvider(t)

	book := &models.MarketBook{
		Spread: map[string]models.MarketEntry{
			"Boston Celtics": {DecimalOdds: 1.91, AmericanPrice: -110, Point: -3.5},
		},
	}
	setup.market.EXPECT().
		FetchSnapshot(gomock.Any(), "Celtics", "soccer").
		Return(book, nil)

	quote, err := setup.provider.GetQuote(context.Background(), "Celtics", models.BetTypeSpread)

	require.NoError(t, err)
	assert.Equal(t, models.SourceLive, quote.Source)
	assert.InDelta(t, -3.5, quote.Line, 1e-9)
}

// TestGetQuote_LiveTotalMatchesLabel tests over/under selection within the total market
func TestGetQuote_LiveTotalMatchesLabel(t *testing.T) {
	setup := setupTestProvider(t)

	book := &models.MarketBook{
		Total: map[string]models.MarketEntry{
			"Over":  {DecimalOdds: 2.0, AmericanPrice: 100, Point: 4.0},
			"Under": {DecimalOdds: 1.8, AmericanPrice: -125, Point: 4.0},
		},
	}
	setup.market.EXPECT().
		FetchSnapshot(gomock.Any(), "Real Madrid", "soccer").
		Return(book, nil).
		Times(2)

	over, err := setup.provider.GetQuote(context.Background(), "Real Madrid", models.BetTypeOver)
	require.NoError(t, err)
	assert.InDelta(t, 2.0*0.95, over.DecimalOdds, 1e-9)
	assert.InDelta(t, 4.0, over.Line, 1e-9)

	under, err := setup.provider.GetQuote(context.Background(), "Real Madrid", models.BetTypeUnder)
	require.NoError(t, err)
	assert.InDelta(t, 1.8*0.95, under.DecimalOdds, 1e-9)
}

// TestGetQuote_SimulatedStrongSubject tests the fallback computation for a
// subject on the strong list with pinned draws
func TestGetQuote_SimulatedStrongSubject(t *testing.T) {
	// First draw drives strength (0.7 + 0.5*0.2 = 0.8), second the market
	// factor (0.9 + 0.5*0.2 = 1.0)
	setup := setupTestProvider(t, 0.5, 0.5)

	setup.market.EXPECT().
		FetchSnapshot(gomock.Any(), "Real Madrid", "soccer").
		Return(nil, nil)

	quote, err := setup.provider.GetQuote(context.Background(), "Real Madrid", models.BetTypeMoneyline)

	require.NoError(t, err)
	assert.Equal(t, models.SourceSimulated, quote.Source)

	// base 0.65 * factor 1.0 * (1 - 0.05) = 0.6175; 1/0.6175 rounds to 1.6
	assert.InDelta(t, 0.6175, quote.Probability, 1e-9)
	assert.InDelta(t, 1.6, quote.DecimalOdds, 1e-9)
	assert.InDelta(t, 0.6, quote.PayoutMultiplier, 1e-9)
	assert.GreaterOrEqual(t, quote.DecimalOdds, 1.0)
}

// TestGetQuote_SimulatedSpreadIsCoinFlip tests the flat base probability for
// non-moneyline markets
func TestGetQuote_SimulatedSpreadIsCoinFlip(t *testing.T) {
	setup := setupTestProvider(t, 0.5)

	setup.market.EXPECT().
		FetchSnapshot(gomock.Any(), "Anytown FC", "soccer").
		Return(nil, nil)

	quote, err := setup.provider.GetQuote(context.Background(), "Anytown FC", models.BetTypeSpread)

	require.NoError(t, err)
	// base 0.50 * factor 1.0 * 0.95 = 0.475; 1/0.475 = 2.105... rounds to 2.11
	assert.InDelta(t, 0.475, quote.Probability, 1e-9)
	assert.InDelta(t, 2.11, quote.DecimalOdds, 1e-9)
}

// TestGetQuote_FallbackOnFetchError tests that a feed failure degrades to
// simulation instead of surfacing an error
func TestGetQuote_FallbackOnFetchError(t *testing.T) {
	setup := setupTestProvider(t, 0.0, 0.0)

	setup.market.EXPECT().
		FetchSnapshot(gomock.Any(), "Anytown FC", "soccer").
		Return(nil, fmt.Errorf("connection refused"))

	quote, err := setup.provider.GetQuote(context.Background(), "Anytown FC", models.BetTypeMoneyline)

	require.NoError(t, err)
	assert.Equal(t, models.SourceSimulated, quote.Source)
	assert.GreaterOrEqual(t, quote.DecimalOdds, 1.1)
	assert.InDelta(t, quote.DecimalOdds-1, quote.PayoutMultiplier, 1e-9)
}

// TestGetQuote_CachedWithinWindow tests that a second call inside the
// freshness window returns the identical quote with no recomputation
func TestGetQuote_CachedWithinWindow(t *testing.T) {
	setup := setupTestProvider(t, 0.5, 0.5)

	setup.market.EXPECT().
		FetchSnapshot(gomock.Any(), "Lakers", "soccer").
		Return(nil, nil).
		Times(1)

	first, err := setup.provider.GetQuote(context.Background(), "Lakers", models.BetTypeMoneyline)
	require.NoError(t, err)

	second, err := setup.provider.GetQuote(context.Background(), "Lakers", models.BetTypeMoneyline)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestGetLiveQuotes_TimeoutFallsBackPerSubject tests that one subject timing
// out does not starve the batch: the stalled subject degrades to simulation
// and every other subject is unaffected
func TestGetLiveQuotes_TimeoutFallsBackPerSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	market := mocks.NewMockMarketData(ctrl)

	provider := NewOddsProvider(
		market,
		newMemQuoteCache(),
		ProviderParams{
			HouseEdge:        0.05,
			Sport:            "soccer",
			LiveFetchTimeout: 50 * time.Millisecond,
		},
		&stubRand{values: []float64{0.5}},
		zerolog.Nop(),
	)

	book := &models.MarketBook{
		Moneyline: map[string]models.MarketEntry{
			"Team B": {DecimalOdds: 2.0, AmericanPrice: 100},
		},
	}

	market.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), "soccer").
		DoAndReturn(func(ctx context.Context, subject, sport string) (*models.MarketBook, error) {
			if subject == "Team A" {
				<-ctx.Done() // never answers within the per-subject timeout
				return nil, ctx.Err()
			}
			return book, nil
		}).
		AnyTimes()

	quotes := provider.GetLiveQuotes(context.Background(), []string{"Team A", "Team B"})

	require.Len(t, quotes, 2)
	assert.Equal(t, models.SourceSimulated, quotes["Team A"].Source)
	assert.Equal(t, models.SourceLive, quotes["Team B"].Source)
}

// TestParlayOdds tests leg odds multiplication
func TestParlayOdds(t *testing.T) {
	setup := setupTestProvider(t)

	// Pre-seeded quotes stand in for freshly computed legs
	require.NoError(t, setup.cache.SetQuote(context.Background(), &models.OddsQuote{
		Subject: "Team A", BetType: models.BetTypeMoneyline, DecimalOdds: 2.0, PayoutMultiplier: 1.0,
	}))
	require.NoError(t, setup.cache.SetQuote(context.Background(), &models.OddsQuote{
		Subject: "Team B", BetType: models.BetTypeMoneyline, DecimalOdds: 1.5, PayoutMultiplier: 0.5,
	}))

	odds, err := setup.provider.ParlayOdds(context.Background(), []models.ParlayLeg{
		{Subject: "Team A", BetType: models.BetTypeMoneyline},
		{Subject: "Team B", BetType: models.BetTypeMoneyline},
	})

	require.NoError(t, err)
	assert.InDelta(t, 3.0, odds, 1e-9)
}

// TestParlayOdds_NoLegs tests fail-fast on an empty parlay
func TestParlayOdds_NoLegs(t *testing.T) {
	setup := setupTestProvider(t)

	_, err := setup.provider.ParlayOdds(context.Background(), nil)
	assert.Error(t, err)
}

// TestMatchEntry_DeterministicFirstMatch tests that ambiguous substring
// matches resolve to the lexicographically first key on every lookup
func TestMatchEntry_DeterministicFirstMatch(t *testing.T) {
	entries := map[string]models.MarketEntry{
		"Manchester United": {DecimalOdds: 3.0},
		"Manchester City":   {DecimalOdds: 1.5},
	}

	for i := 0; i < 10; i++ {
		key, entry, found := matchEntry(entries, "manchester")
		require.True(t, found)
		assert.Equal(t, "Manchester City", key)
		assert.InDelta(t, 1.5, entry.DecimalOdds, 1e-9)
	}
}
