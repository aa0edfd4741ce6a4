package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderPlaced is the event emitted after a successful checkout.
type OrderPlaced struct {
	OrderID    uuid.UUID `json:"order_id"`
	ItemCount  int       `json:"item_count"`
	TotalPrice float64   `json:"total_price"`
	PlacedAt   time.Time `json:"placed_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event OrderPlaced) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "order-placed",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event OrderPlaced) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order-placed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order-placed event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
