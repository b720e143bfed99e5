// Package tracking advances the delivery status of placed orders. Orders are
// created as Preparing; after the kitchen prep window the consumer moves them
// to On The Way. Delivered is confirmed by the customer through the API.
package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/brewline/cafe-backend/internal/orders"
)

// orderPlacedEvent mirrors the Kafka payload shape from the checkout publisher.
type orderPlacedEvent struct {
	OrderNumber string    `json:"order_number"`
	UserID      string    `json:"user_id"`
	GrandTotal  float64   `json:"grand_total"`
	PlacedAt    time.Time `json:"placed_at"`
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error
}

type Consumer struct {
	updater   StatusUpdater
	reader    *kafka.Reader
	prepDelay time.Duration
	logger    *slog.Logger
}

func NewConsumer(updater StatusUpdater, logger *slog.Logger, prepDelay time.Duration, topic string, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  "delivery-tracking",
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{
		updater:   updater,
		reader:    reader,
		prepDelay: prepDelay,
		logger:    logger,
	}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Error("error closing kafka reader", "error", err)
	}
}

func (c *Consumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.logger.Error("error reading message", "error", err)
		return
	}

	var event orderPlacedEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		c.logger.Error("error parsing message", "error", err)
		return
	}
	if event.OrderNumber == "" {
		c.logger.Warn("order placed event without order number, skipping")
		return
	}

	go c.advanceAfterPrep(ctx, event.OrderNumber)
}

// advanceAfterPrep waits out the prep window, then marks the order out for
// delivery. Shutdown during the wait abandons the transition; the order stays
// Preparing until the customer confirms delivery.
func (c *Consumer) advanceAfterPrep(ctx context.Context, orderNumber string) {
	select {
	case <-time.After(c.prepDelay):
	case <-ctx.Done():
		return
	}

	err := c.updater.UpdateStatus(ctx, orderNumber, domain.OrderStatusOutForDelivery)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.logger.Warn("order not found for status advance, skipping", "order_number", orderNumber)
			return
		}
		c.logger.Error("failed to advance order status",
			"order_number", orderNumber,
			"error", err)
		return
	}

	c.logger.Info("order out for delivery", "order_number", orderNumber)
}
