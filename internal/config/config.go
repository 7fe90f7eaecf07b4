package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for bet-settlement-service
type Config struct {
	Server  ServerConfig
	Kafka   KafkaConfig
	Redis   RedisConfig
	OddsAPI OddsAPIConfig
	Betting BettingConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (placed_bets)
	GroupID string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	QuoteTTL   time.Duration
	SettledTTL time.Duration
}

// OddsAPIConfig holds market data feed configuration
type OddsAPIConfig struct {
	BaseURL string
	APIKey  string
	Regions string
	Timeout time.Duration
}

// BettingConfig holds odds computation and settlement parameters
type BettingConfig struct {
	Sport            string        // sport key for the market feed
	HouseEdge        float64       // fractional haircut on fair odds (0.05 = 5%)
	FallbackWinRate  float64       // win probability for simulated settlement (0.10 observed)
	LiveFetchTimeout time.Duration // per-subject bound in the live quote batch
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "placed_bets")
	v.SetDefault("kafka.group_id", "bet-settlement")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.quote_ttl", 5*time.Minute)
	v.SetDefault("redis.settled_ttl", 24*time.Hour)

	v.SetDefault("oddsapi.base_url", "https://api.the-odds-api.com/v4")
	v.SetDefault("oddsapi.api_key", "")
	v.SetDefault("oddsapi.regions", "us")
	v.SetDefault("oddsapi.timeout", 30*time.Second)

	v.SetDefault("betting.sport", "soccer")
	v.SetDefault("betting.house_edge", 0.05)
	v.SetDefault("betting.fallback_win_rate", 0.10)
	v.SetDefault("betting.live_fetch_timeout", 4*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("BET_SETTLEMENT")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Betting.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *BettingConfig) validate() error {
	if c.HouseEdge < 0 || c.HouseEdge >= 1 {
		return fmt.Errorf("betting.house_edge must be in [0,1): %f", c.HouseEdge)
	}
	if c.FallbackWinRate < 0 || c.FallbackWinRate > 1 {
		return fmt.Errorf("betting.fallback_win_rate must be in [0,1]: %f", c.FallbackWinRate)
	}
	return nil
}
