package service

import (
	"context"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// Cache is an interface that abstracts settled bet storage
// This allows for easier testing and mocking
type Cache interface {
	SetSettled(ctx context.Context, settled *models.SettledBet) error
	GetSettled(ctx context.Context, betID string) (*models.SettledBet, error)
	SetSettledBatch(ctx context.Context, settledList []*models.SettledBet) error
	GetSettledByUser(ctx context.Context, userID int64) ([]*models.SettledBet, error)
	Ping(ctx context.Context) error
	Close() error
}
