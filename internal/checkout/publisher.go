package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/brewline/cafe-backend/internal/domain"
)

// OrderPlacedEvent is the Kafka payload emitted once an order is persisted.
// The tracking consumer keys on order_number.
type OrderPlacedEvent struct {
	OrderNumber string    `json:"order_number"`
	UserID      string    `json:"user_id"`
	GrandTotal  float64   `json:"grand_total"`
	PlacedAt    time.Time `json:"placed_at"`
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	event := OrderPlacedEvent{
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		GrandTotal:  order.Totals.Grand,
		PlacedAt:    order.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order placed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.OrderNumber), // order_number for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_placed")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order placed event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
