package betparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
)

// ParsedBet is the structured form of a text bet command
type ParsedBet struct {
	Subject string
	BetType models.BetType
	Stake   decimal.Decimal
}

// Parser extracts (subject, bet type, stake) from free-form bet commands
// such as "Lakers ML $500" or "Real Madrid Money Line 250.50".
type Parser struct {
	patterns []*regexp.Regexp
}

// New creates a bet command parser
func New() *Parser {
	return &Parser{
		patterns: []*regexp.Regexp{
			// Long-form bet type aliases. Tried first so "Point Spread"
			// does not leave "Point" attached to the subject.
			regexp.MustCompile(`(?i)^(.+?)\s+(Money\s+Line|Point\s+Spread|Over|Under|Total\s+Points)\s+\$?(\d+(?:\.\d+)?)$`),
			// "Team ML $500" / "Team SPREAD 500"
			regexp.MustCompile(`(?i)^(.+?)\s+(ML|SPREAD|OVER|UNDER|TOTAL)\s+\$?(\d+(?:\.\d+)?)$`),
		},
	}
}

// Parse parses a bet command. The stake must be strictly positive.
func (p *Parser) Parse(message string) (*ParsedBet, error) {
	message = strings.TrimSpace(message)

	for _, pattern := range p.patterns {
		match := pattern.FindStringSubmatch(message)
		if match == nil {
			continue
		}

		betType, err := normalizeBetType(match[2])
		if err != nil {
			continue
		}

		stake, err := decimal.NewFromString(match[3])
		if err != nil || stake.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("invalid stake: %q", match[3])
		}

		return &ParsedBet{
			Subject: strings.TrimSpace(match[1]),
			BetType: betType,
			Stake:   stake,
		}, nil
	}

	return nil, fmt.Errorf("unrecognized bet command: %q", message)
}

func normalizeBetType(raw string) (models.BetType, error) {
	collapsed := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	switch collapsed {
	case "ML", "MONEYLINE":
		return models.BetTypeMoneyline, nil
	case "SPREAD", "POINTSPREAD":
		return models.BetTypeSpread, nil
	case "OVER", "O":
		return models.BetTypeOver, nil
	case "UNDER", "U":
		return models.BetTypeUnder, nil
	case "TOTAL", "TOTALPOINTS":
		return models.BetTypeTotal, nil
	}
	return "", fmt.Errorf("unknown bet type: %q", raw)
}
