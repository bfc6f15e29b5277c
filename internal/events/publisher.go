package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/Paulcode2/tfawe-backend/internal/domain"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// NewKafkaWriter builds a writer for the order events topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// Publisher emits order lifecycle events to Kafka. Publishing is best
// effort: a broker failure is logged and never surfaced to the client.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) OrderCreated(ctx context.Context, order *domain.Order) {
	p.publish(ctx, order, "created")
}

func (p *Publisher) OrderStatusUpdated(ctx context.Context, order *domain.Order) {
	p.publish(ctx, order, "status-updated")
}

func (p *Publisher) publish(ctx context.Context, order *domain.Order, event string) {
	payload, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Msg("Error marshalling order event")
		return
	}

	// order-created-<id> or order-status-updated-<id>
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%s", event, order.ID.Hex())),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing order %s event", event)
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
