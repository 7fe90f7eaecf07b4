package engine

import (
	"context"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// MarketData abstracts the external odds feed. Implementations signal
// "no matching game" with a nil value and a nil error; the engine treats
// both absence and transport errors as triggers for the simulated path.
type MarketData interface {
	FetchSnapshot(ctx context.Context, subject, sport string) (*models.MarketBook, error)
	FindGame(ctx context.Context, teamA, teamB, sport string) (*models.GameRef, error)
	FetchGameResult(ctx context.Context, sport, gameID string) (*models.GameResult, error)
}

// QuoteCache abstracts quote storage with a freshness window enforced by the
// implementation's TTL. Get returns (nil, nil) on a miss.
type QuoteCache interface {
	GetQuote(ctx context.Context, subject string, betType models.BetType) (*models.OddsQuote, error)
	SetQuote(ctx context.Context, quote *models.OddsQuote) error
}

// Rand abstracts the random source so tests can pin draws
type Rand interface {
	Float64() float64
}
