// Package checkout turns an authoritative cart into a persisted order.
// Totals are always recomputed server-side; client-supplied totals are
// advisory only.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/brewline/cafe-backend/internal/guestcart"
	"github.com/brewline/cafe-backend/internal/metrics"
	"github.com/brewline/cafe-backend/internal/payment"
	"github.com/brewline/cafe-backend/internal/pricing"
)

var (
	ErrEmptyCart      = errors.New("cart is empty, nothing to checkout")
	ErrPaymentRefused = errors.New("payment refused")
)

type CartReader interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type DiscountValidator interface {
	Validate(ctx context.Context, code string, rawSubtotal float64) (*domain.DiscountDescriptor, error)
}

type OrderWriter interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
}

type Request struct {
	DiscountCode  string
	DeliveryNotes string
	// PaymentToken is the gateway-issued card token collected client-side.
	PaymentToken string
}

type Service struct {
	cart      CartReader
	guest     *guestcart.Store
	discounts DiscountValidator
	gateway   payment.Gateway
	orders    OrderWriter
	publisher EventPublisher
	logger    *slog.Logger
}

func NewService(
	cart CartReader,
	guest *guestcart.Store,
	discounts DiscountValidator,
	gateway payment.Gateway,
	orders OrderWriter,
	publisher EventPublisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		cart:      cart,
		guest:     guest,
		discounts: discounts,
		gateway:   gateway,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
	}
}

// Quote recomputes totals for the user's current cart, applying the discount
// code when one is supplied. A rejected code fails the quote rather than being
// silently dropped.
func (s *Service) Quote(ctx context.Context, userID, discountCode string) (domain.OrderTotals, error) {
	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return domain.OrderTotals{}, fmt.Errorf("load cart for quote: %w", err)
	}

	descriptor, err := s.resolveDiscount(ctx, discountCode, cart.Items)
	if err != nil {
		return domain.OrderTotals{}, err
	}

	return pricing.ComputeTotals(cart.Items, descriptor), nil
}

// Checkout charges the gateway for the cart's grand total and, on approval,
// persists the order, publishes the order-placed event and clears the cart.
// A refusal mutates nothing.
func (s *Service) Checkout(ctx context.Context, userID string, req Request) (*domain.Order, error) {
	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart for checkout: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	descriptor, err := s.resolveDiscount(ctx, req.DiscountCode, cart.Items)
	if err != nil {
		return nil, err
	}

	totals := pricing.ComputeTotals(cart.Items, descriptor)
	orderNumber := newOrderNumber("BRW")

	// A discount can clamp the grand total to zero; there is nothing to
	// charge then and the gateway never sees the order.
	if totals.Grand > 0 {
		result, err := s.gateway.Charge(ctx, payment.ChargeRequest{
			OrderNumber: orderNumber,
			Amount:      totals.Grand,
			Token:       req.PaymentToken,
		})
		if err != nil {
			return nil, fmt.Errorf("charge failed: %w", err)
		}
		if result.Status != payment.ChargeStatusSuccess {
			metrics.PaymentRefusals.Inc()
			reason := result.RefusalDetail
			if reason == "" {
				reason = result.Refusal.String()
			}
			return nil, fmt.Errorf("%w: %s", ErrPaymentRefused, reason)
		}
	}

	order := &domain.Order{
		ID:            uuid.New(),
		OrderNumber:   orderNumber,
		UserID:        userID,
		Items:         toOrderItems(cart.Items),
		Totals:        totals,
		DeliveryNotes: req.DeliveryNotes,
		Status:        domain.OrderStatusPreparing,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	metrics.OrdersPlaced.Inc()

	s.finishOrder(ctx, order, func(clearCtx context.Context) error {
		return s.cart.ClearCart(clearCtx, userID)
	})

	return order, nil
}

// GuestCheckout places an order straight from the guest cart. There is no
// gateway charge and no discount support; payment is settled on delivery.
func (s *Service) GuestCheckout(ctx context.Context, guestID, deliveryNotes string) (*domain.Order, error) {
	items, err := s.guest.Get(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("load guest cart for checkout: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		ID:            uuid.New(),
		OrderNumber:   newOrderNumber("GUEST"),
		UserID:        "guest:" + guestID,
		Items:         toOrderItems(items),
		Totals:        pricing.ComputeTotals(items, nil),
		DeliveryNotes: deliveryNotes,
		Status:        domain.OrderStatusPreparing,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("persist guest order: %w", err)
	}
	metrics.OrdersPlaced.Inc()

	s.finishOrder(ctx, order, func(clearCtx context.Context) error {
		return s.guest.Clear(clearCtx, guestID)
	})

	return order, nil
}

// finishOrder runs the post-persist steps. The order already exists, so
// publish and clear failures are logged and swallowed.
func (s *Service) finishOrder(ctx context.Context, order *domain.Order, clear func(context.Context) error) {
	if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.Error("failed to publish order placed event",
			"order_number", order.OrderNumber,
			"error", err)
	}

	if err := clear(ctx); err != nil {
		s.logger.Error("failed to clear cart after checkout",
			"order_number", order.OrderNumber,
			"error", err)
	}
}

func (s *Service) resolveDiscount(ctx context.Context, code string, items []domain.LineItem) (*domain.DiscountDescriptor, error) {
	if code == "" {
		return nil, nil
	}

	var rawSubtotal float64
	for _, it := range items {
		rawSubtotal += it.TotalPrice
	}

	descriptor, err := s.discounts.Validate(ctx, code, rawSubtotal)
	if err != nil {
		return nil, fmt.Errorf("discount %q rejected: %w", code, err)
	}
	return descriptor, nil
}

func toOrderItems(items []domain.LineItem) []domain.OrderItem {
	result := make([]domain.OrderItem, len(items))
	for i, it := range items {
		result[i] = domain.OrderItem{
			ProductID:      it.ProductID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
			Customizations: it.Customizations,
		}
	}
	return result
}

func newOrderNumber(prefix string) string {
	short := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return prefix + "-" + strings.ToUpper(short)
}
