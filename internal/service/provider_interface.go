package service

import (
	"context"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// Provider is an interface that abstracts odds quoting operations
// This allows for easier testing and mocking
type Provider interface {
	GetQuote(ctx context.Context, subject string, betType models.BetType) (*models.OddsQuote, error)
	GetLiveQuotes(ctx context.Context, subjects []string) map[string]*models.OddsQuote
	ParlayOdds(ctx context.Context, legs []models.ParlayLeg) (float64, error)
}
