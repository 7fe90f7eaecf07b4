package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// SettlementParams holds bet resolution parameters
type SettlementParams struct {
	Sport           string
	FallbackWinRate float64 // win probability when no live result exists (0.10 observed)
}

// SettlementEngine resolves placed bets into won/lost/push outcomes, cross-
// checking real game results when available and simulating otherwise. The
// fallback draw is decoupled from the quoted probability on purpose: the
// configured win rate is the house policy, not the fair price.
type SettlementEngine struct {
	market MarketData
	params SettlementParams
	rng    Rand
	logger zerolog.Logger
}

// NewSettlementEngine creates a new settlement engine
func NewSettlementEngine(
	market MarketData,
	params SettlementParams,
	rng Rand,
	logger zerolog.Logger,
) *SettlementEngine {
	return &SettlementEngine{
		market: market,
		params: params,
		rng:    rng,
		logger: logger.With().Str("component", "settlement_engine").Logger(),
	}
}

// Resolve settles a bet against its quote. Input validation fails fast;
// everything past that degrades to the simulated draw rather than erroring.
func (e *SettlementEngine) Resolve(ctx context.Context, bet *models.PlacedBet, quote *models.OddsQuote) (*models.SettledBet, error) {
	if bet == nil {
		return nil, fmt.Errorf("bet is required")
	}
	if quote == nil {
		return nil, fmt.Errorf("quote is required")
	}
	if !bet.BetType.Valid() {
		return nil, fmt.Errorf("unknown bet type: %q", bet.BetType)
	}
	if bet.Stake.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("invalid stake: %s", bet.Stake.String())
	}
	if quote.DecimalOdds < 1.0 {
		return nil, fmt.Errorf("invalid decimal odds: %f", quote.DecimalOdds)
	}

	if result, ok := e.liveOutcome(ctx, bet, quote); ok {
		e.logger.Info().
			Str("bet_id", bet.BetID).
			Str("subject", bet.Subject).
			Str("bet_type", string(bet.BetType)).
			Str("result", string(result)).
			Msg("settled bet against live game result")
		return e.settle(bet, quote, result), nil
	}

	// Simulated settlement: one uniform draw against the house win rate
	result := models.ResultLost
	if e.rng.Float64() < e.params.FallbackWinRate {
		result = models.ResultWon
	}

	e.logger.Info().
		Str("bet_id", bet.BetID).
		Str("subject", bet.Subject).
		Str("bet_type", string(bet.BetType)).
		Str("result", string(result)).
		Msg("settled bet via simulation")

	return e.settle(bet, quote, result), nil
}

// settle builds the settled record with the payout invariants:
// won -> payout = stake * odds, lost -> payout = 0, push -> payout = stake.
func (e *SettlementEngine) settle(bet *models.PlacedBet, quote *models.OddsQuote, result models.BetResult) *models.SettledBet {
	var payout decimal.Decimal
	switch result {
	case models.ResultWon:
		payout = bet.Stake.Mul(decimal.NewFromFloat(quote.DecimalOdds))
	case models.ResultLost:
		payout = decimal.Zero
	default: // push or pending refunds the stake
		payout = bet.Stake
	}

	return &models.SettledBet{
		BetID:       bet.BetID,
		UserID:      bet.UserID,
		Subject:     bet.Subject,
		BetType:     bet.BetType,
		Stake:       bet.Stake,
		DecimalOdds: quote.DecimalOdds,
		Result:      result,
		Payout:      payout,
		Profit:      payout.Sub(bet.Stake),
		CreatedAt:   bet.CreatedAt,
		SettledAt:   time.Now().UTC(),
	}
}

// liveOutcome grades the bet against the real game result. The second return
// is false whenever no completed game with both scores can be located, or the
// bet cannot be graded from the available data.
func (e *SettlementEngine) liveOutcome(ctx context.Context, bet *models.PlacedBet, quote *models.OddsQuote) (models.BetResult, bool) {
	game, err := e.market.FindGame(ctx, bet.Subject, "", e.params.Sport)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("subject", bet.Subject).
			Msg("game lookup failed, falling back to simulated settlement")
		return "", false
	}
	if game == nil {
		return "", false
	}

	result, err := e.market.FetchGameResult(ctx, e.params.Sport, game.GameID)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("game_id", game.GameID).
			Msg("game result fetch failed, falling back to simulated settlement")
		return "", false
	}
	if result == nil || !result.Completed || result.HomeScore == nil || result.AwayScore == nil {
		return "", false
	}

	return gradeBet(bet, quote, result)
}

// gradeBet applies the per-market grading rules to a completed game
func gradeBet(bet *models.PlacedBet, quote *models.OddsQuote, result *models.GameResult) (models.BetResult, bool) {
	subject := strings.ToLower(bet.Subject)
	homeScore := *result.HomeScore
	awayScore := *result.AwayScore

	var betScore, opponentScore int
	switch {
	case strings.Contains(strings.ToLower(result.HomeTeam), subject):
		betScore, opponentScore = homeScore, awayScore
	case strings.Contains(strings.ToLower(result.AwayTeam), subject):
		betScore, opponentScore = awayScore, homeScore
	default:
		return "", false
	}

	switch bet.BetType {
	case models.BetTypeMoneyline:
		return compareScores(betScore, opponentScore), true

	case models.BetTypeSpread:
		// The quote carries the spread point from the snapshot that priced it
		adjusted := float64(betScore) + quote.Line
		switch {
		case adjusted > float64(opponentScore):
			return models.ResultWon, true
		case adjusted < float64(opponentScore):
			return models.ResultLost, true
		default:
			return models.ResultPush, true
		}

	case models.BetTypeOver:
		return compareTotal(float64(homeScore+awayScore), quote.Line, false), true

	case models.BetTypeUnder:
		return compareTotal(float64(homeScore+awayScore), quote.Line, true), true
	}

	// TOTAL and anything else is not gradable from scores alone
	return "", false
}

func compareScores(betScore, opponentScore int) models.BetResult {
	switch {
	case betScore > opponentScore:
		return models.ResultWon
	case betScore < opponentScore:
		return models.ResultLost
	default:
		return models.ResultPush
	}
}

func compareTotal(total, line float64, under bool) models.BetResult {
	if total == line {
		return models.ResultPush
	}
	over := total > line
	if over != under {
		return models.ResultWon
	}
	return models.ResultLost
}
