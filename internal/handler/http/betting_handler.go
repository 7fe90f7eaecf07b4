package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
	"github.com/cypherlabdev/bet-settlement-service/internal/service"
)

// BettingHandler handles HTTP requests for quotes and settlement
type BettingHandler struct {
	service *service.BettingService
	logger  zerolog.Logger
}

// NewBettingHandler creates a new betting HTTP handler
func NewBettingHandler(service *service.BettingService, logger zerolog.Logger) *BettingHandler {
	return &BettingHandler{
		service: service,
		logger:  logger.With().Str("component", "betting_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *BettingHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/quotes/live?subjects=a,b - Live odds board.
	// Registered as an exact path, so it wins over the quote subtree below.
	mux.HandleFunc("/api/v1/quotes/live", h.handleLiveBoard)

	// GET /api/v1/quotes/:subject/:bet_type - Get a quote
	mux.HandleFunc("/api/v1/quotes/", h.handleGetQuote)

	// POST /api/v1/bets/settle, POST /api/v1/bets/parse
	mux.HandleFunc("/api/v1/bets/settle", h.handleSettleBet)
	mux.HandleFunc("/api/v1/bets/parse", h.handleParseBet)

	// GET /api/v1/bets/user/:user_id - Settled bet history for a user
	mux.HandleFunc("/api/v1/bets/user/", h.handleUserHistory)

	// POST /api/v1/parlay/odds - Combined parlay odds
	mux.HandleFunc("/api/v1/parlay/odds", h.handleParlayOdds)
}

// handleGetQuote handles GET /api/v1/quotes/:subject/:bet_type
func (h *BettingHandler) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/quotes/:subject/:bet_type
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/quotes/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/quotes/:subject/:bet_type")
		return
	}

	quote, err := h.service.GetQuote(r.Context(), parts[0], parts[1])
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("subject", parts[0]).
			Str("bet_type", parts[1]).
			Msg("quote request rejected")
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, quote)
}

// handleUserHistory handles GET /api/v1/bets/user/:user_id
func (h *BettingHandler) handleUserHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/v1/bets/user/")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/bets/user/:user_id")
		return
	}

	settled, err := h.service.GetUserHistory(r.Context(), userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to load user bet history")
		h.errorResponse(w, http.StatusInternalServerError, "failed to load bet history")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"count":   len(settled),
		"bets":    settled,
	})
}

// handleLiveBoard handles GET /api/v1/quotes/live
func (h *BettingHandler) handleLiveBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var subjects []string
	if raw := r.URL.Query().Get("subjects"); raw != "" {
		for _, subject := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(subject); trimmed != "" {
				subjects = append(subjects, trimmed)
			}
		}
	}

	quotes := h.service.GetLiveBoard(r.Context(), subjects)

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":  len(quotes),
		"quotes": quotes,
	})
}

// settleBetRequest is the payload for POST /api/v1/bets/settle
type settleBetRequest struct {
	BetID   string          `json:"bet_id"`
	UserID  int64           `json:"user_id"`
	Subject string          `json:"subject"`
	BetType string          `json:"bet_type"`
	Stake   decimal.Decimal `json:"stake"`
}

// handleSettleBet handles POST /api/v1/bets/settle
func (h *BettingHandler) handleSettleBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req settleBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	betType, err := models.ParseBetType(req.BetType)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	bet := &models.PlacedBet{
		BetID:     req.BetID,
		UserID:    req.UserID,
		Subject:   req.Subject,
		BetType:   betType,
		Stake:     req.Stake,
		CreatedAt: time.Now().UTC(),
	}

	settled, err := h.service.SettleBet(r.Context(), bet)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("bet_id", req.BetID).
			Msg("settlement request rejected")
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, settled)
}

// parseBetRequest is the payload for POST /api/v1/bets/parse
type parseBetRequest struct {
	Text   string `json:"text"`
	UserID int64  `json:"user_id"`
}

// handleParseBet handles POST /api/v1/bets/parse
func (h *BettingHandler) handleParseBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req parseBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bet, err := h.service.ParseBet(req.Text, req.UserID)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, bet)
}

// parlayRequest is the payload for POST /api/v1/parlay/odds
type parlayRequest struct {
	Legs []models.ParlayLeg `json:"legs"`
}

// handleParlayOdds handles POST /api/v1/parlay/odds
func (h *BettingHandler) handleParlayOdds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req parlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	odds, err := h.service.ParlayOdds(r.Context(), req.Legs)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"legs":         len(req.Legs),
		"decimal_odds": odds,
	})
}

// jsonResponse writes a JSON response
func (h *BettingHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *BettingHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
