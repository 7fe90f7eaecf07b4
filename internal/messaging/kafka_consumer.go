package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/bet-settlement-service/internal/models"
	"github.com/cypherlabdev/bet-settlement-service/internal/service"
)

// KafkaConsumer consumes placed bet batches from Kafka and settles them
type KafkaConsumer struct {
	reader     *kafka.Reader
	settlement service.Settlement
	logger     zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "placed_bets"
	GroupID string   // e.g., "bet-settlement"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	settlement service.Settlement,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &KafkaConsumer{
		reader:     reader,
		settlement: settlement,
		logger:     logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			// Read message
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			// Process message
			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			// Commit message
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage settles one batch of placed bets
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var kafkaMsg models.KafkaPlacedBetsMessage
	if err := json.Unmarshal(msg.Value, &kafkaMsg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	c.logger.Debug().
		Int("bet_count", len(kafkaMsg.Bets)).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("processing placed bet batch")

	// Convert to pointers
	bets := make([]*models.PlacedBet, len(kafkaMsg.Bets))
	for i := range kafkaMsg.Bets {
		bets[i] = &kafkaMsg.Bets[i]
	}

	settled := c.settlement.SettleBatch(ctx, bets)

	c.logger.Info().
		Int("input_count", len(bets)).
		Int("settled_count", len(settled)).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("settled placed bet batch")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
