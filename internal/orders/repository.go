package orders

import (
	"context"
	"errors"

	"github.com/brewline/cafe-backend/internal/domain"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateOrderNum = errors.New("order with this number already exists")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type Repository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListOrdersByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error
	MarkDelivered(ctx context.Context, orderNumber string) error
	RunMigrations(*Credentials) error
	Close() error
}
