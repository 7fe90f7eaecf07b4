package service

import (
	"context"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// Settler is an interface that abstracts bet resolution
// This allows for easier testing and mocking
type Settler interface {
	Resolve(ctx context.Context, bet *models.PlacedBet, quote *models.OddsQuote) (*models.SettledBet, error)
}
