// Package auth owns accounts: signup, login, session tokens and the per-account
// delivery address. Signing in also adopts whatever the caller accumulated as
// a guest: the guest cart is merged into the account cart and a guest delivery
// address is promoted when the account has none yet.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/brewline/cafe-backend/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateAddress(ctx context.Context, userID string, address *domain.DeliveryAddress) error
}

type CartMerger interface {
	MergeGuestCart(ctx context.Context, userID, guestID string) error
}

type GuestAddressStore interface {
	Get(ctx context.Context, guestID string) (*domain.DeliveryAddress, error)
	Clear(ctx context.Context, guestID string) error
}

type Service struct {
	users     UserRepository
	tokens    *JWTManager
	carts     CartMerger
	guestAddr GuestAddressStore
	logger    *slog.Logger
}

func NewService(users UserRepository, tokens *JWTManager, carts CartMerger, guestAddr GuestAddressStore, logger *slog.Logger) *Service {
	return &Service{
		users:     users,
		tokens:    tokens,
		carts:     carts,
		guestAddr: guestAddr,
		logger:    logger,
	}
}

// Signup registers a new account and signs the caller in.
func (s *Service) Signup(ctx context.Context, email, name, password, guestID string) (*domain.User, string, error) {
	email = normalizeEmail(email)
	if len(password) < 8 {
		return nil, "", ErrWeakPassword
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return nil, "", ErrEmailExists
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	s.adoptGuestState(ctx, user, guestID)
	return user, token, nil
}

// Login verifies credentials, issues a token and adopts the guest's cart and
// address into the account.
func (s *Service) Login(ctx context.Context, email, password, guestID string) (*domain.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	s.adoptGuestState(ctx, user, guestID)
	return user, token, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Address(ctx context.Context, userID string) (*domain.DeliveryAddress, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Address, nil
}

func (s *Service) SetAddress(ctx context.Context, userID string, address *domain.DeliveryAddress) error {
	address.UpdatedAt = time.Now().UTC()
	return s.users.UpdateAddress(ctx, userID, address)
}

// adoptGuestState folds guest session state into the account after a
// successful signup or login. Failures here never fail the sign-in; the guest
// can redo a lost cart, a broken login cannot be redone.
func (s *Service) adoptGuestState(ctx context.Context, user *domain.User, guestID string) {
	if guestID == "" {
		return
	}

	if err := s.carts.MergeGuestCart(ctx, user.ID, guestID); err != nil {
		s.logger.Warn("failed to merge guest cart on sign-in",
			"user_id", user.ID,
			"error", err)
	}

	address, err := s.guestAddr.Get(ctx, guestID)
	if err != nil {
		s.logger.Warn("failed to read guest address on sign-in",
			"user_id", user.ID,
			"error", err)
		return
	}
	if address == nil {
		return
	}

	if user.Address == nil {
		if err := s.SetAddress(ctx, user.ID, address); err != nil {
			s.logger.Warn("failed to promote guest address",
				"user_id", user.ID,
				"error", err)
			return
		}
		user.Address = address
	}

	if err := s.guestAddr.Clear(ctx, guestID); err != nil {
		s.logger.Warn("failed to clear guest address",
			"user_id", user.ID,
			"error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
