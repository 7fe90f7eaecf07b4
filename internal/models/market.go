package models

import "time"

// MarketEntry is one priced outcome within a market
type MarketEntry struct {
	DecimalOdds   float64 `json:"decimal_odds"`
	AmericanPrice int     `json:"american_price"`
	Point         float64 `json:"point,omitempty"` // spread point or total line
}

// MarketBook holds a single game's markets normalized from one bookmaker.
// Moneyline and Spread are keyed by team name, Total by the over/under label.
type MarketBook struct {
	GameID       string                 `json:"game_id"`
	Sport        string                 `json:"sport"`
	HomeTeam     string                 `json:"home_team"`
	AwayTeam     string                 `json:"away_team"`
	Bookmaker    string                 `json:"bookmaker"`
	CommenceTime time.Time              `json:"commence_time"`
	Moneyline    map[string]MarketEntry `json:"moneyline"`
	Spread       map[string]MarketEntry `json:"spread"`
	Total        map[string]MarketEntry `json:"total"`
}

// GameRef identifies a scheduled or live game
type GameRef struct {
	GameID       string    `json:"game_id"`
	Sport        string    `json:"sport"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
}

// GameResult is the final (or in-progress) score of a game.
// Scores are only meaningful when Completed is true and both sides are set.
type GameResult struct {
	GameID       string    `json:"game_id"`
	Sport        string    `json:"sport"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
	Completed    bool      `json:"completed"`
	HomeScore    *int      `json:"home_score,omitempty"`
	AwayScore    *int      `json:"away_score,omitempty"`
	Winner       string    `json:"winner,omitempty"`
}
