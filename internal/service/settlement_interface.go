package service

import (
	"context"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// Settlement is the batch settlement surface consumed by the Kafka consumer
type Settlement interface {
	SettleBatch(ctx context.Context, bets []*models.PlacedBet) []*models.SettledBet
}
