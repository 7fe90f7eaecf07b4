package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// ProviderParams holds odds computation parameters
type ProviderParams struct {
	HouseEdge        float64       // fractional haircut on fair odds (0.05 = 5%)
	Sport            string        // sport key for the market feed (e.g., "soccer")
	LiveFetchTimeout time.Duration // per-subject bound in GetLiveQuotes
}

// OddsProvider produces odds quotes for (subject, bet type) pairs with a
// live-market-first, simulate-on-failure strategy.
type OddsProvider struct {
	market MarketData
	cache  QuoteCache
	params ProviderParams
	rng    Rand
	logger zerolog.Logger
}

// NewOddsProvider creates a new odds provider
func NewOddsProvider(
	market MarketData,
	cache QuoteCache,
	params ProviderParams,
	rng Rand,
	logger zerolog.Logger,
) *OddsProvider {
	return &OddsProvider{
		market: market,
		cache:  cache,
		params: params,
		rng:    rng,
		logger: logger.With().Str("component", "odds_provider").Logger(),
	}
}

// GetQuote returns a fresh or cached quote. The live market is attempted
// once; any failure or absence degrades to the simulated computation, never
// to an error. Errors are reserved for invalid input.
func (p *OddsProvider) GetQuote(ctx context.Context, subject string, betType models.BetType) (*models.OddsQuote, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if !betType.Valid() {
		return nil, fmt.Errorf("unknown bet type: %q", betType)
	}

	cached, err := p.cache.GetQuote(ctx, subject, betType)
	if err != nil {
		p.logger.Warn().
			Err(err).
			Str("subject", subject).
			Str("bet_type", string(betType)).
			Msg("quote cache read failed")
	}
	if cached != nil {
		p.logger.Debug().
			Str("subject", subject).
			Str("bet_type", string(betType)).
			Msg("cache hit for quote")
		return cached, nil
	}

	quote := p.liveQuote(ctx, subject, betType)
	if quote == nil {
		quote = p.simulatedQuote(subject, betType)
	}

	if err := p.cache.SetQuote(ctx, quote); err != nil {
		p.logger.Warn().
			Err(err).
			Str("subject", subject).
			Str("bet_type", string(betType)).
			Msg("failed to cache quote")
		// Don't fail the request on cache errors
	}

	return quote, nil
}

// liveQuote attempts the live market path. Returns nil when the feed has no
// snapshot for the subject, the bet type has no matching market entry, or
// the fetch fails.
func (p *OddsProvider) liveQuote(ctx context.Context, subject string, betType models.BetType) *models.OddsQuote {
	book, err := p.market.FetchSnapshot(ctx, subject, p.params.Sport)
	if err != nil {
		p.logger.Warn().
			Err(err).
			Str("subject", subject).
			Msg("market snapshot fetch failed, falling back to simulation")
		return nil
	}
	if book == nil {
		return nil
	}

	var (
		entry models.MarketEntry
		found bool
	)

	switch betType {
	case models.BetTypeMoneyline:
		_, entry, found = matchEntry(book.Moneyline, subject)
	case models.BetTypeSpread:
		_, entry, found = matchEntry(book.Spread, subject)
	case models.BetTypeOver, models.BetTypeUnder:
		// Total outcomes are labeled "Over"/"Under", not by team
		_, entry, found = matchEntry(book.Total, string(betType))
	default:
		// TOTAL has no directly priced live outcome; simulate
		return nil
	}
	if !found {
		return nil
	}

	adjusted := entry.DecimalOdds * (1 - p.params.HouseEdge)
	probability := 0.1
	if adjusted > 0 {
		probability = 1 / adjusted
	}

	p.logger.Debug().
		Str("subject", subject).
		Str("bet_type", string(betType)).
		Float64("raw_odds", entry.DecimalOdds).
		Float64("adjusted_odds", adjusted).
		Str("bookmaker", book.Bookmaker).
		Msg("priced quote from live market")

	return &models.OddsQuote{
		ID:               uuid.New(),
		Subject:          subject,
		BetType:          betType,
		DecimalOdds:      adjusted,
		Probability:      probability,
		PayoutMultiplier: adjusted - 1,
		Line:             entry.Point,
		AmericanPrice:    entry.AmericanPrice,
		Source:           models.SourceLive,
		ComputedAt:       time.Now().UTC(),
	}
}

// simulatedQuote computes a quote from the strength heuristic when no live
// market is available. The stored probability is the pre-rounding value, so
// it is close to but not exactly 1/DecimalOdds.
func (p *OddsProvider) simulatedQuote(subject string, betType models.BetType) *models.OddsQuote {
	baseProbability := p.baseProbability(subject, betType)

	// Market movement factor in [0.9, 1.1)
	marketFactor := 0.9 + p.rng.Float64()*0.2
	trueProbability := baseProbability * marketFactor * (1 - p.params.HouseEdge)

	odds := 10.0
	if trueProbability > 0 {
		odds = 1 / trueProbability
	}
	odds = RoundOdds(odds)

	p.logger.Debug().
		Str("subject", subject).
		Str("bet_type", string(betType)).
		Float64("base_probability", baseProbability).
		Float64("odds", odds).
		Msg("computed simulated quote")

	return &models.OddsQuote{
		ID:               uuid.New(),
		Subject:          subject,
		BetType:          betType,
		DecimalOdds:      odds,
		Probability:      trueProbability,
		PayoutMultiplier: odds - 1,
		Source:           models.SourceSimulated,
		ComputedAt:       time.Now().UTC(),
	}
}

// baseProbability derives the pre-market win probability for a bet type.
// Spread and total markets are priced as coin flips; moneyline follows the
// subject's strength bucket.
func (p *OddsProvider) baseProbability(subject string, betType models.BetType) float64 {
	if betType != models.BetTypeMoneyline {
		return 0.50
	}

	strength := p.subjectStrength(subject)
	switch {
	case strength > 0.6:
		return 0.65
	case strength > 0.4:
		return 0.50
	default:
		return 0.35
	}
}

// GetLiveQuotes fans out one moneyline quote per subject concurrently, each
// bounded by the configured timeout. A timed-out or failed live fetch falls
// back to the simulated quote for that subject alone; there is no global
// deadline across the batch.
func (p *OddsProvider) GetLiveQuotes(ctx context.Context, subjects []string) map[string]*models.OddsQuote {
	type quoteResult struct {
		subject string
		quote   *models.OddsQuote
	}

	results := make(chan quoteResult, len(subjects))
	for _, subject := range subjects {
		go func(subject string) {
			fetchCtx, cancel := context.WithTimeout(ctx, p.params.LiveFetchTimeout)
			defer cancel()

			quote, err := p.GetQuote(fetchCtx, subject, models.BetTypeMoneyline)
			if err != nil {
				p.logger.Warn().
					Err(err).
					Str("subject", subject).
					Msg("skipping subject in live quote batch")
				results <- quoteResult{subject: subject}
				return
			}
			results <- quoteResult{subject: subject, quote: quote}
		}(subject)
	}

	quotes := make(map[string]*models.OddsQuote, len(subjects))
	for range subjects {
		r := <-results
		if r.quote != nil {
			quotes[r.subject] = r.quote
		}
	}

	p.logger.Info().
		Int("requested", len(subjects)).
		Int("quoted", len(quotes)).
		Msg("live quote batch complete")

	return quotes
}

// ParlayOdds multiplies the freshly computed decimal odds of each leg. No
// correlation adjustment is applied between legs.
func (p *OddsProvider) ParlayOdds(ctx context.Context, legs []models.ParlayLeg) (float64, error) {
	if len(legs) == 0 {
		return 0, fmt.Errorf("parlay requires at least one leg")
	}

	total := 1.0
	for _, leg := range legs {
		quote, err := p.GetQuote(ctx, leg.Subject, leg.BetType)
		if err != nil {
			return 0, fmt.Errorf("parlay leg %s %s: %w", leg.Subject, leg.BetType, err)
		}
		total *= quote.DecimalOdds
	}

	return total, nil
}

// matchEntry returns the first entry whose key contains needle as a
// case-insensitive substring. Keys are scanned in sorted order so repeated
// lookups against the same book resolve identically.
func matchEntry(entries map[string]models.MarketEntry, needle string) (string, models.MarketEntry, bool) {
	lower := strings.ToLower(needle)

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(strings.ToLower(key), lower) {
			return key, entries[key], true
		}
	}
	return "", models.MarketEntry{}, false
}
