package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-settlement-service/internal/betparser"
	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// BettingService orchestrates quoting and settlement with result caching
type BettingService struct {
	provider Provider
	settler  Settler
	cache    Cache
	parser   *betparser.Parser
	popular  []string
	logger   zerolog.Logger
}

// NewBettingService creates a new betting service
func NewBettingService(
	provider Provider,
	settler Settler,
	cache Cache,
	popular []string,
	logger zerolog.Logger,
) *BettingService {
	return &BettingService{
		provider: provider,
		settler:  settler,
		cache:    cache,
		parser:   betparser.New(),
		popular:  popular,
		logger:   logger.With().Str("component", "betting_service").Logger(),
	}
}

// GetQuote returns a quote for a (subject, bet type) pair
func (s *BettingService) GetQuote(ctx context.Context, subject, betType string) (*models.OddsQuote, error) {
	parsed, err := models.ParseBetType(betType)
	if err != nil {
		return nil, err
	}
	return s.provider.GetQuote(ctx, subject, parsed)
}

// GetLiveBoard returns moneyline quotes for the requested subjects, or the
// popular subject list when none are given
func (s *BettingService) GetLiveBoard(ctx context.Context, subjects []string) map[string]*models.OddsQuote {
	if len(subjects) == 0 {
		subjects = s.popular
	}
	return s.provider.GetLiveQuotes(ctx, subjects)
}

// SettleBet quotes and resolves a single placed bet, caching the settled record
func (s *BettingService) SettleBet(ctx context.Context, bet *models.PlacedBet) (*models.SettledBet, error) {
	settled, err := s.resolveBet(ctx, bet)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetSettled(ctx, settled); err != nil {
		s.logger.Warn().
			Err(err).
			Str("bet_id", settled.BetID).
			Msg("failed to cache settled bet")
		// Don't fail the request on cache errors
	}

	return settled, nil
}

// SettleBatch settles a batch of placed bets, caching the settled records in
// one pipelined write. Bets that fail validation are logged and skipped; the
// rest of the batch proceeds.
func (s *BettingService) SettleBatch(ctx context.Context, bets []*models.PlacedBet) []*models.SettledBet {
	settled := make([]*models.SettledBet, 0, len(bets))

	for _, bet := range bets {
		result, err := s.resolveBet(ctx, bet)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("bet_id", bet.BetID).
				Str("subject", bet.Subject).
				Msg("failed to settle bet")
			continue
		}
		settled = append(settled, result)
	}

	if err := s.cache.SetSettledBatch(ctx, settled); err != nil {
		s.logger.Warn().
			Err(err).
			Int("count", len(settled)).
			Msg("failed to cache settled batch")
	}

	s.logger.Info().
		Int("input_count", len(bets)).
		Int("settled_count", len(settled)).
		Msg("batch settlement complete")

	return settled
}

// resolveBet quotes and resolves one bet without touching the settled store
func (s *BettingService) resolveBet(ctx context.Context, bet *models.PlacedBet) (*models.SettledBet, error) {
	quote, err := s.provider.GetQuote(ctx, bet.Subject, bet.BetType)
	if err != nil {
		return nil, fmt.Errorf("quoting bet %s: %w", bet.BetID, err)
	}

	settled, err := s.settler.Resolve(ctx, bet, quote)
	if err != nil {
		return nil, fmt.Errorf("resolving bet %s: %w", bet.BetID, err)
	}

	s.logger.Info().
		Str("bet_id", settled.BetID).
		Str("subject", settled.Subject).
		Str("bet_type", string(settled.BetType)).
		Str("result", string(settled.Result)).
		Str("payout", settled.Payout.String()).
		Msg("settled bet")

	return settled, nil
}

// ParlayOdds returns the combined odds for a multi-leg bet
func (s *BettingService) ParlayOdds(ctx context.Context, legs []models.ParlayLeg) (float64, error) {
	return s.provider.ParlayOdds(ctx, legs)
}

// ParseBet converts a text bet command into a placed bet for the given user
func (s *BettingService) ParseBet(text string, userID int64) (*models.PlacedBet, error) {
	parsed, err := s.parser.Parse(text)
	if err != nil {
		return nil, err
	}

	return &models.PlacedBet{
		BetID:     uuid.NewString(),
		UserID:    userID,
		Subject:   parsed.Subject,
		BetType:   parsed.BetType,
		Stake:     parsed.Stake,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// GetSettled returns a previously settled bet record, if retained
func (s *BettingService) GetSettled(ctx context.Context, betID string) (*models.SettledBet, error) {
	settled, err := s.cache.GetSettled(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve settled bet: %w", err)
	}
	return settled, nil
}

// GetUserHistory returns all retained settled bets for a user
func (s *BettingService) GetUserHistory(ctx context.Context, userID int64) ([]*models.SettledBet, error) {
	settled, err := s.cache.GetSettledByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user bet history: %w", err)
	}
	return settled, nil
}
