package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetType identifies the market a bet is placed on
type BetType string

const (
	BetTypeMoneyline BetType = "ML"
	BetTypeSpread    BetType = "SPREAD"
	BetTypeOver      BetType = "OVER"
	BetTypeUnder     BetType = "UNDER"
	BetTypeTotal     BetType = "TOTAL"
)

// ParseBetType normalizes a bet type string to a known BetType
func ParseBetType(s string) (BetType, error) {
	switch BetType(strings.ToUpper(strings.TrimSpace(s))) {
	case BetTypeMoneyline:
		return BetTypeMoneyline, nil
	case BetTypeSpread:
		return BetTypeSpread, nil
	case BetTypeOver:
		return BetTypeOver, nil
	case BetTypeUnder:
		return BetTypeUnder, nil
	case BetTypeTotal:
		return BetTypeTotal, nil
	}
	return "", fmt.Errorf("unknown bet type: %q", s)
}

// Valid reports whether the bet type is one of the supported markets
func (b BetType) Valid() bool {
	switch b {
	case BetTypeMoneyline, BetTypeSpread, BetTypeOver, BetTypeUnder, BetTypeTotal:
		return true
	}
	return false
}

// BetResult is the settlement outcome of a bet
type BetResult string

const (
	ResultWon     BetResult = "won"
	ResultLost    BetResult = "lost"
	ResultPush    BetResult = "push"
	ResultPending BetResult = "pending"
)

// QuoteSource records which path produced a quote
type QuoteSource string

const (
	SourceLive      QuoteSource = "live"
	SourceSimulated QuoteSource = "simulated"
)

// OddsQuote represents the priced odds for a (subject, bet type) pair.
// PayoutMultiplier is always DecimalOdds - 1. Probability equals
// 1/DecimalOdds on the live path; the simulated path stores the
// pre-rounding probability, so the two diverge slightly there.
type OddsQuote struct {
	ID               uuid.UUID   `json:"id"`
	Subject          string      `json:"subject"`
	BetType          BetType     `json:"bet_type"`
	DecimalOdds      float64     `json:"decimal_odds"`
	Probability      float64     `json:"probability"`
	PayoutMultiplier float64     `json:"payout_multiplier"`
	Line             float64     `json:"line"`           // spread point or total line, 0 when absent
	AmericanPrice    int         `json:"american_price"` // 0 on the simulated path
	Source           QuoteSource `json:"source"`
	ComputedAt       time.Time   `json:"computed_at"`
}

// PlacedBet is a bet awaiting settlement
type PlacedBet struct {
	BetID     string          `json:"bet_id"`
	UserID    int64           `json:"user_id"`
	Subject   string          `json:"subject"`
	BetType   BetType         `json:"bet_type"`
	Stake     decimal.Decimal `json:"stake"`
	CreatedAt time.Time       `json:"created_at"`
}

// SettledBet is the resolved outcome of a placed bet
type SettledBet struct {
	BetID       string          `json:"bet_id"`
	UserID      int64           `json:"user_id"`
	Subject     string          `json:"subject"`
	BetType     BetType         `json:"bet_type"`
	Stake       decimal.Decimal `json:"stake"`
	DecimalOdds float64         `json:"decimal_odds"`
	Result      BetResult       `json:"result"`
	Payout      decimal.Decimal `json:"payout"`
	Profit      decimal.Decimal `json:"profit"`
	CreatedAt   time.Time       `json:"created_at"`
	SettledAt   time.Time       `json:"settled_at"`
}

// ParlayLeg is one leg of a parlay bet
type ParlayLeg struct {
	Subject string  `json:"subject"`
	BetType BetType `json:"bet_type"`
}

// KafkaPlacedBetsMessage represents a batch of placed bets from the bot process
type KafkaPlacedBetsMessage struct {
	Bets      []PlacedBet `json:"bets"`
	Timestamp time.Time   `json:"timestamp"`
	BatchID   string      `json:"batch_id"`
}
