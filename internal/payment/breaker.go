package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerGateway wraps a Gateway with a circuit breaker so a flapping
// processor fails fast instead of stacking up checkout requests.
type BreakerGateway struct {
	inner   Gateway
	breaker *gobreaker.CircuitBreaker[*ChargeResult]
	logger  *slog.Logger
}

func NewBreakerGateway(inner Gateway, logger *slog.Logger) *BreakerGateway {
	settings := gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("payment breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &BreakerGateway{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[*ChargeResult](settings),
		logger:  logger,
	}
}

func (b *BreakerGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	return b.breaker.Execute(func() (*ChargeResult, error) {
		return b.inner.Charge(ctx, req)
	})
}

func (b *BreakerGateway) Refund(ctx context.Context, transactionID string) error {
	return b.inner.Refund(ctx, transactionID)
}
