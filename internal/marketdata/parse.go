package marketdata

import (
	"math"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// bookmakerResponse mirrors one bookmaker's markets in the odds payload
type bookmakerResponse struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Markets []struct {
		Key      string `json:"key"` // h2h, spreads, totals
		Outcomes []struct {
			Name  string   `json:"name"`
			Price int      `json:"price"`
			Point *float64 `json:"point,omitempty"`
		} `json:"outcomes"`
	} `json:"markets"`
}

// AmericanToDecimal converts American odds to decimal odds.
// +150 -> 2.5, -200 -> 1.5.
func AmericanToDecimal(price int) float64 {
	if price > 0 {
		return float64(price)/100 + 1
	}
	return 100/math.Abs(float64(price)) + 1
}

// parseBook normalizes one bookmaker's raw markets into a MarketBook.
// Spread and total outcomes without a point are dropped, matching the
// upstream contract that those markets always carry a line.
func parseBook(bookmaker bookmakerResponse) *models.MarketBook {
	book := &models.MarketBook{
		Bookmaker: bookmaker.Title,
		Moneyline: make(map[string]models.MarketEntry),
		Spread:    make(map[string]models.MarketEntry),
		Total:     make(map[string]models.MarketEntry),
	}

	for _, market := range bookmaker.Markets {
		for _, outcome := range market.Outcomes {
			if outcome.Name == "" || outcome.Price == 0 {
				continue
			}

			entry := models.MarketEntry{
				DecimalOdds:   AmericanToDecimal(outcome.Price),
				AmericanPrice: outcome.Price,
			}

			switch market.Key {
			case "h2h":
				book.Moneyline[outcome.Name] = entry
			case "spreads":
				if outcome.Point == nil {
					continue
				}
				entry.Point = *outcome.Point
				book.Spread[outcome.Name] = entry
			case "totals":
				if outcome.Point == nil {
					continue
				}
				entry.Point = *outcome.Point
				book.Total[outcome.Name] = entry
			}
		}
	}

	return book
}
