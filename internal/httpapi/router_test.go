package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewline/cafe-backend/internal/auth"
	"github.com/brewline/cafe-backend/internal/catalog"
	"github.com/brewline/cafe-backend/internal/checkout"
	"github.com/brewline/cafe-backend/internal/discount"
	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/brewline/cafe-backend/internal/guestcart"
	"github.com/brewline/cafe-backend/internal/orders"
)

// stubCatalog serves a fixed product set.
type stubCatalog struct {
	products map[string]*domain.Product
}

func (s *stubCatalog) ListProducts(context.Context, catalog.Filter) ([]*domain.Product, error) {
	var result []*domain.Product
	for _, p := range s.products {
		result = append(result, p)
	}
	return result, nil
}

func (s *stubCatalog) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func (s *stubCatalog) ListRecommended(_ context.Context, limit int) ([]*domain.Product, error) {
	var result []*domain.Product
	for _, p := range s.products {
		if p.Featured && len(result) < limit {
			result = append(result, p)
		}
	}
	return result, nil
}

type stubCartService struct {
	cart     *domain.Cart
	addCalls int
	deltas   []int
}

func (s *stubCartService) GetCart(context.Context, string) (*domain.Cart, error) {
	return s.cart, nil
}

func (s *stubCartService) AddItem(_ context.Context, _ string, product domain.Product, c domain.Customizations) error {
	s.addCalls++
	s.cart.Items = append(s.cart.Items, domain.LineItem{
		Key:            guestcart.ComputeKey(product.ID, c),
		ProductID:      product.ID,
		Name:           product.Name,
		UnitPrice:      product.Price,
		Quantity:       1,
		TotalPrice:     product.Price,
		Customizations: c,
	})
	return nil
}

func (s *stubCartService) AdjustQuantity(_ context.Context, _, _ string, delta int) error {
	s.deltas = append(s.deltas, delta)
	return nil
}
func (s *stubCartService) RemoveItem(context.Context, string, string) error { return nil }
func (s *stubCartService) ClearCart(context.Context, string) error {
	s.cart.Items = nil
	return nil
}

type stubDiscounts struct {
	descriptor *domain.DiscountDescriptor
	err        error
}

func (s *stubDiscounts) Validate(context.Context, string, float64) (*domain.DiscountDescriptor, error) {
	return s.descriptor, s.err
}

type stubCheckout struct {
	order *domain.Order
	err   error
}

func (s *stubCheckout) Quote(context.Context, string, string) (domain.OrderTotals, error) {
	if s.err != nil {
		return domain.OrderTotals{}, s.err
	}
	return s.order.Totals, nil
}

func (s *stubCheckout) Checkout(context.Context, string, checkout.Request) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubCheckout) GuestCheckout(context.Context, string, string) (*domain.Order, error) {
	return s.order, s.err
}

type stubOrders struct {
	byNumber  map[string]*domain.Order
	delivered []string
}

func (s *stubOrders) GetOrderByNumber(_ context.Context, orderNumber string) (*domain.Order, error) {
	order, ok := s.byNumber[orderNumber]
	if !ok {
		return nil, orders.ErrOrderNotFound
	}
	return order, nil
}

func (s *stubOrders) ListOrdersByUserID(_ context.Context, userID string) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, o := range s.byNumber {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *stubOrders) MarkDelivered(_ context.Context, orderNumber string) error {
	order, ok := s.byNumber[orderNumber]
	if !ok {
		return orders.ErrOrderNotFound
	}
	order.Status = domain.OrderStatusDelivered
	now := time.Now().UTC()
	order.DeliveredAt = &now
	s.delivered = append(s.delivered, orderNumber)
	return nil
}

type stubAuth struct {
	user *domain.User
	err  error
}

func (s *stubAuth) Signup(context.Context, string, string, string, string) (*domain.User, string, error) {
	return s.user, "token", s.err
}

func (s *stubAuth) Login(context.Context, string, string, string) (*domain.User, string, error) {
	return s.user, "token", s.err
}

func (s *stubAuth) Me(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubAuth) Address(context.Context, string) (*domain.DeliveryAddress, error) {
	return s.user.Address, s.err
}

func (s *stubAuth) SetAddress(_ context.Context, _ string, address *domain.DeliveryAddress) error {
	s.user.Address = address
	return s.err
}

type stubReviews struct {
	reviews []domain.Review
}

func (s *stubReviews) Create(_ context.Context, userID, username string, rating int, message string) (*domain.Review, error) {
	review := domain.Review{UserID: userID, Username: username, Rating: rating, Message: message}
	s.reviews = append(s.reviews, review)
	return &review, nil
}

func (s *stubReviews) ListMine(context.Context, string) ([]domain.Review, error) {
	return s.reviews, nil
}

func (s *stubReviews) ListRecent(context.Context) ([]domain.Review, error) {
	return s.reviews, nil
}

type testEnv struct {
	router   http.Handler
	tokens   *auth.JWTManager
	cart     *stubCartService
	orders   *stubOrders
	checkout *stubCheckout
	auth     *stubAuth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := &stubCatalog{products: map[string]*domain.Product{
		"p-latte": {ID: "p-latte", Name: "Latte", Price: 4.50, Category: "coffee", Featured: true},
		"p-mocha": {ID: "p-mocha", Name: "Mocha", Price: 5.25, Category: "coffee"},
	}}
	kv := guestcart.NewMemoryKV()
	guestStore := guestcart.NewStore(kv)
	guestAddr := auth.NewKVGuestAddressStore(kv)
	tokens := auth.NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)

	cartSvc := &stubCartService{cart: &domain.Cart{UserID: "user-1"}}
	orderStore := &stubOrders{byNumber: map[string]*domain.Order{}}
	checkoutSvc := &stubCheckout{order: &domain.Order{
		OrderNumber: "BRW-TEST0001",
		UserID:      "user-1",
		Status:      domain.OrderStatusPreparing,
		Totals:      domain.OrderTotals{RawSubtotal: 9.00, Subtotal: 9.00, Tax: 1.17, Grand: 10.17},
	}}
	authSvc := &stubAuth{user: &domain.User{ID: "user-1", Email: "ada@example.com", Name: "Ada"}}

	router := NewRouter(Dependencies{
		Logger:   slog.Default(),
		Tokens:   tokens,
		Menu:     NewMenuHandler(products),
		Guest:    NewGuestHandler(guestStore, products, guestAddr),
		Cart:     NewCartHandler(cartSvc, products),
		Discount: NewDiscountHandler(&stubDiscounts{err: discount.ErrUnknownCode}),
		Checkout: NewCheckoutHandler(checkoutSvc),
		Orders:   NewOrdersHandler(orderStore, cartSvc, products),
		Auth:     NewAuthHandler(authSvc),
		Reviews:  NewReviewsHandler(&stubReviews{}, authSvc),
		Timeout:  5 * time.Second,
	})

	return &testEnv{
		router:   router,
		tokens:   tokens,
		cart:     cartSvc,
		orders:   orderStore,
		checkout: checkoutSvc,
		auth:     authSvc,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, request)
	return recorder
}

func (e *testEnv) authHeader(t *testing.T) map[string]string {
	t.Helper()
	token, err := e.tokens.Generate(&domain.User{ID: "user-1", Email: "ada@example.com"})
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMenu_ListAndGet(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/menu", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	assert.Len(t, products, 2)

	rec = env.do(t, http.MethodGet, "/api/menu/p-latte", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/menu/p-unknown", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuestCartFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/guest/session", nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var session map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	guestID := session["guest_id"]
	require.NotEmpty(t, guestID)
	headers := map[string]string{GuestIDHeader: guestID}

	// add the same drink twice: entries collapse and quantity accumulates
	addReq := AddItemRequestDTO{
		ProductID:      "p-latte",
		Customizations: CustomizationsDTO{Size: "Large", Milk: "Oat"},
	}
	rec = env.do(t, http.MethodPost, "/api/guest/cart/items", addReq, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/guest/cart/items", addReq, headers)
	require.Equal(t, http.StatusCreated, rec.Code)

	var cart CartResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 9.00, cart.Items[0].TotalPrice)
	assert.Equal(t, 9.00, cart.Total)
	key := cart.Items[0].Key

	// decrease back to 1
	rec = env.do(t, http.MethodPatch, "/api/guest/cart/items/"+key, UpdateQuantityRequestDTO{Action: "decrease"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = CartResponseDTO{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 4.50, cart.Total)

	// remove and verify empty
	rec = env.do(t, http.MethodDelete, "/api/guest/cart/items/"+key, nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = CartResponseDTO{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	assert.Empty(t, cart.Items)
}

func TestGuestCart_MissingGuestID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/guest/cart", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "missing_guest_id", resp.Code)
}

func TestGuestCart_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	headers := map[string]string{GuestIDHeader: "guest-x"}

	rec := env.do(t, http.MethodPost, "/api/guest/cart/items", AddItemRequestDTO{ProductID: "p-none"}, headers)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuestAddressRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	headers := map[string]string{GuestIDHeader: "guest-addr"}

	rec := env.do(t, http.MethodGet, "/api/guest/address", nil, headers)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/guest/address", domain.DeliveryAddress{DisplayAddress: "12 Bean St"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/guest/address", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var address domain.DeliveryAddress
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&address))
	assert.Equal(t, "12 Bean St", address.DisplayAddress)
}

func TestCartSummary_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/cart/summary", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/cart/summary", nil, map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/cart/summary", nil, env.authHeader(t))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartAdd_Authorized(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/cart/add",
		AddItemRequestDTO{ProductID: "p-mocha"}, env.authHeader(t))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, env.cart.addCalls)
	var cart CartResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Mocha", cart.Items[0].Name)
	assert.Equal(t, 5.25, cart.Total)
}

func TestCartUpdate_DeltaFallback(t *testing.T) {
	env := newTestEnv(t)
	delta := 3

	rec := env.do(t, http.MethodPatch, "/api/cart/items/some-key",
		UpdateQuantityRequestDTO{Delta: &delta}, env.authHeader(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{3}, env.cart.deltas)

	rec = env.do(t, http.MethodPatch, "/api/cart/items/some-key",
		UpdateQuantityRequestDTO{}, env.authHeader(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuestCartUpdate_DeltaFallback(t *testing.T) {
	env := newTestEnv(t)
	headers := map[string]string{GuestIDHeader: "guest-delta"}

	rec := env.do(t, http.MethodPost, "/api/guest/cart/items",
		AddItemRequestDTO{ProductID: "p-latte"}, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart CartResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	key := cart.Items[0].Key

	delta := 2
	rec = env.do(t, http.MethodPatch, "/api/guest/cart/items/"+key,
		UpdateQuantityRequestDTO{Delta: &delta}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = CartResponseDTO{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 13.50, cart.Total)

	delta = -3
	rec = env.do(t, http.MethodPatch, "/api/guest/cart/items/"+key,
		UpdateQuantityRequestDTO{Delta: &delta}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	cart = CartResponseDTO{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	assert.Empty(t, cart.Items)
}

func TestDiscount_UnknownCode(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/discount/NOPE?subtotal=20.00", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid_discount", resp.Code)
}

func TestDiscount_MissingSubtotal(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/discount/NOPE", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid_subtotal", resp.Code)
}

func TestPaymentProcess_Refused(t *testing.T) {
	env := newTestEnv(t)
	env.checkout.err = fmt.Errorf("%w: insufficient funds", checkout.ErrPaymentRefused)

	rec := env.do(t, http.MethodPost, "/api/payment/process", CheckoutRequestDTO{Token: "tok_visa"}, env.authHeader(t))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "payment_refused", resp.Code)
	assert.Contains(t, resp.Error, "insufficient funds")
}

func TestPaymentProcess_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/payment/process",
		CheckoutRequestDTO{DeliveryNotes: "ring twice", Token: "tok_visa"}, env.authHeader(t))

	require.Equal(t, http.StatusCreated, rec.Code)
	var order domain.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, "BRW-TEST0001", order.OrderNumber)
}

func TestPaymentProcess_MissingToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/payment/process",
		CheckoutRequestDTO{DeliveryNotes: "ring twice"}, env.authHeader(t))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "missing_token", resp.Code)
}

func TestGuestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	env.checkout.err = checkout.ErrEmptyCart

	rec := env.do(t, http.MethodPost, "/api/guest/checkout", nil, map[string]string{GuestIDHeader: "guest-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrders_MarkDelivered(t *testing.T) {
	env := newTestEnv(t)
	env.orders.byNumber["BRW-ABC"] = &domain.Order{
		OrderNumber: "BRW-ABC",
		UserID:      "user-1",
		Status:      domain.OrderStatusOutForDelivery,
	}

	rec := env.do(t, http.MethodPatch, "/api/orders/BRW-ABC/delivered", nil, env.authHeader(t))

	require.Equal(t, http.StatusOK, rec.Code)
	var order domain.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	assert.NotNil(t, order.DeliveredAt)
}

func TestOrders_MarkDelivered_WrongOwner(t *testing.T) {
	env := newTestEnv(t)
	env.orders.byNumber["BRW-XYZ"] = &domain.Order{
		OrderNumber: "BRW-XYZ",
		UserID:      "someone-else",
	}

	rec := env.do(t, http.MethodPatch, "/api/orders/BRW-XYZ/delivered", nil, env.authHeader(t))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, env.orders.delivered)
}

func TestOrders_Reorder(t *testing.T) {
	env := newTestEnv(t)
	env.orders.byNumber["BRW-OLD"] = &domain.Order{
		OrderNumber: "BRW-OLD",
		UserID:      "user-1",
		Status:      domain.OrderStatusDelivered,
		Items: []domain.OrderItem{
			{ProductID: "p-latte", Name: "Latte", Quantity: 2, Customizations: domain.Customizations{Milk: "Oat"}},
			{ProductID: "p-gone", Name: "Seasonal Special", Quantity: 1},
		},
	}

	rec := env.do(t, http.MethodPost, "/api/orders/BRW-OLD/reorder", nil, env.authHeader(t))

	require.Equal(t, http.StatusOK, rec.Code)
	// two units of the surviving product; the retired one is skipped
	assert.Equal(t, 2, env.cart.addCalls)
	var cart CartResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "Oat", cart.Items[0].Customizations.Milk)
	assert.Equal(t, 9.00, cart.Total)
}

func TestOrders_Reorder_WrongOwner(t *testing.T) {
	env := newTestEnv(t)
	env.orders.byNumber["BRW-FOREIGN"] = &domain.Order{
		OrderNumber: "BRW-FOREIGN",
		UserID:      "someone-else",
		Items:       []domain.OrderItem{{ProductID: "p-latte", Quantity: 1}},
	}

	rec := env.do(t, http.MethodPost, "/api/orders/BRW-FOREIGN/reorder", nil, env.authHeader(t))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, env.cart.addCalls)
}

func TestRecommendations_Public(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/recommendations", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Latte", products[0].Name)
}

func TestAuth_SignupAndMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup",
		SignupRequestDTO{Email: "ada@example.com", Name: "Ada", Password: "correct-horse"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var session SessionResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	assert.NotEmpty(t, session.Token)

	rec = env.do(t, http.MethodGet, "/api/auth/me", nil, env.authHeader(t))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_LoginRejected(t *testing.T) {
	env := newTestEnv(t)
	env.auth.err = auth.ErrInvalidCredentials

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		LoginRequestDTO{Email: "ada@example.com", Password: "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReviews_CreateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/reviews",
		CreateReviewRequestDTO{Rating: 5, Message: "lovely"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/reviews",
		CreateReviewRequestDTO{Rating: 5, Message: "lovely"}, env.authHeader(t))
	require.Equal(t, http.StatusCreated, rec.Code)
	var review domain.Review
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&review))
	assert.Equal(t, "Ada", review.Username)
}

func TestReviews_RecentIsPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/reviews/recent", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
