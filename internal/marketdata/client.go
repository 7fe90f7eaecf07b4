package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// Client talks to The Odds API v4. All lookups return (nil, nil) when no
// matching game exists so callers can distinguish absence from transport
// failure.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// ClientConfig holds market data client configuration
type ClientConfig struct {
	BaseURL string        // e.g., "https://api.the-odds-api.com/v4"
	APIKey  string
	Regions string        // e.g., "us"
	Timeout time.Duration // per-request HTTP timeout
}

// NewClient creates a new market data client
func NewClient(config ClientConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		regions: config.Regions,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger.With().Str("component", "marketdata_client").Logger(),
	}
}

// gameResponse mirrors The Odds API odds endpoint payload
type gameResponse struct {
	ID           string              `json:"id"`
	SportKey     string              `json:"sport_key"`
	SportTitle   string              `json:"sport_title"`
	CommenceTime time.Time           `json:"commence_time"`
	HomeTeam     string              `json:"home_team"`
	AwayTeam     string              `json:"away_team"`
	Bookmakers   []bookmakerResponse `json:"bookmakers"`
}

// scoreResponse mirrors The Odds API scores endpoint payload
type scoreResponse struct {
	ID           string    `json:"id"`
	SportKey     string    `json:"sport_key"`
	CommenceTime time.Time `json:"commence_time"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	Completed    bool      `json:"completed"`
	Scores       []struct {
		Name  string `json:"name"`
		Score string `json:"score"`
	} `json:"scores"`
}

// FetchSnapshot returns the normalized market book for the subject's most
// recent game, or (nil, nil) when the subject has no listed game.
func (c *Client) FetchSnapshot(ctx context.Context, subject, sport string) (*models.MarketBook, error) {
	games, err := c.fetchGames(ctx, sport)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(subject)
	for _, game := range games {
		if !strings.Contains(strings.ToLower(game.HomeTeam), needle) &&
			!strings.Contains(strings.ToLower(game.AwayTeam), needle) {
			continue
		}
		if len(game.Bookmakers) == 0 {
			continue
		}

		book := parseBook(game.Bookmakers[0])
		book.GameID = game.ID
		book.Sport = game.SportKey
		book.HomeTeam = game.HomeTeam
		book.AwayTeam = game.AwayTeam
		book.CommenceTime = game.CommenceTime

		c.logger.Debug().
			Str("subject", subject).
			Str("game_id", game.ID).
			Str("bookmaker", book.Bookmaker).
			Msg("fetched market snapshot")

		return book, nil
	}

	return nil, nil
}

// FindGame locates a game by team names. An empty team name matches any side.
func (c *Client) FindGame(ctx context.Context, teamA, teamB, sport string) (*models.GameRef, error) {
	games, err := c.fetchGames(ctx, sport)
	if err != nil {
		return nil, err
	}

	a := strings.ToLower(teamA)
	b := strings.ToLower(teamB)
	for _, game := range games {
		home := strings.ToLower(game.HomeTeam)
		away := strings.ToLower(game.AwayTeam)

		if (strings.Contains(home, a) || strings.Contains(away, a)) &&
			(strings.Contains(home, b) || strings.Contains(away, b)) {
			return &models.GameRef{
				GameID:       game.ID,
				Sport:        game.SportKey,
				HomeTeam:     game.HomeTeam,
				AwayTeam:     game.AwayTeam,
				CommenceTime: game.CommenceTime,
			}, nil
		}
	}

	return nil, nil
}

// FetchGameResult returns the result of a game, or (nil, nil) when the game
// is not present in the recent scores feed.
func (c *Client) FetchGameResult(ctx context.Context, sport, gameID string) (*models.GameResult, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/scores", c.baseURL, url.PathEscape(sport))
	params := url.Values{
		"apiKey":     {c.apiKey},
		"daysFrom":   {"1"},
		"dateFormat": {"iso"},
		"eventIds":   {gameID},
	}

	var scores []scoreResponse
	if err := c.fetch(ctx, endpoint+"?"+params.Encode(), &scores); err != nil {
		return nil, err
	}

	for _, s := range scores {
		if s.ID != gameID {
			continue
		}

		result := &models.GameResult{
			GameID:       s.ID,
			Sport:        s.SportKey,
			HomeTeam:     s.HomeTeam,
			AwayTeam:     s.AwayTeam,
			CommenceTime: s.CommenceTime,
			Completed:    s.Completed,
		}

		for _, score := range s.Scores {
			value, err := strconv.Atoi(score.Score)
			if err != nil {
				continue
			}
			switch score.Name {
			case s.HomeTeam:
				v := value
				result.HomeScore = &v
			case s.AwayTeam:
				v := value
				result.AwayScore = &v
			}
		}

		if result.HomeScore != nil && result.AwayScore != nil {
			if *result.HomeScore > *result.AwayScore {
				result.Winner = s.HomeTeam
			} else if *result.AwayScore > *result.HomeScore {
				result.Winner = s.AwayTeam
			}
		}

		return result, nil
	}

	return nil, nil
}

// fetchGames fetches upcoming games with h2h, spread and total markets
func (c *Client) fetchGames(ctx context.Context, sport string) ([]gameResponse, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/odds", c.baseURL, url.PathEscape(sport))
	params := url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {c.regions},
		"markets":    {"h2h,spreads,totals"},
		"oddsFormat": {"american"},
		"dateFormat": {"iso"},
	}

	var games []gameResponse
	if err := c.fetch(ctx, endpoint+"?"+params.Encode(), &games); err != nil {
		return nil, err
	}
	return games, nil
}

// fetch makes an HTTP GET request and decodes the JSON response
func (c *Client) fetch(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("odds API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
