package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brewline/cafe-backend/internal/auth"
)

type Dependencies struct {
	Logger   *slog.Logger
	Tokens   *auth.JWTManager
	Menu     *MenuHandler
	Guest    *GuestHandler
	Cart     *CartHandler
	Discount *DiscountHandler
	Checkout *CheckoutHandler
	Orders   *OrdersHandler
	Auth     *AuthHandler
	Reviews  *ReviewsHandler
	Timeout  time.Duration
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(deps.Timeout))
	r.Use(middleware.Compress(5))
	r.Use(RequestLogger(deps.Logger))
	r.Use(Metrics)

	requireAuth := RequireAuth(deps.Tokens)
	optionalAuth := OptionalAuth(deps.Tokens)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", deps.Menu.ListProducts)
			r.Get("/{id}", deps.Menu.GetProduct)
		})
		r.Get("/recommendations", deps.Menu.Recommendations)

		r.Route("/guest", func(r chi.Router) {
			r.Post("/session", deps.Guest.StartSession)
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", deps.Guest.GetCart)
				r.Post("/items", deps.Guest.AddItem)
				r.Patch("/items/{key}", deps.Guest.UpdateQuantity)
				r.Delete("/items/{key}", deps.Guest.RemoveItem)
				r.Post("/clear", deps.Guest.ClearCart)
			})
			r.Route("/address", func(r chi.Router) {
				r.Get("/", deps.Guest.GetAddress)
				r.Put("/", deps.Guest.SetAddress)
			})
			r.Post("/checkout", deps.Checkout.GuestCheckout)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/summary", deps.Cart.GetCart)
			r.Post("/add", deps.Cart.AddItem)
			r.Patch("/items/{key}", deps.Cart.UpdateQuantity)
			r.Delete("/items/{key}", deps.Cart.RemoveItem)
			r.Post("/clear", deps.Cart.ClearCart)
		})

		r.With(optionalAuth).Get("/discount/{code}", deps.Discount.Validate)

		r.With(requireAuth).Post("/checkout/quote", deps.Checkout.Quote)
		r.With(requireAuth).Post("/payment/process", deps.Checkout.Process)

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", deps.Orders.ListOrders)
			r.Post("/{orderNumber}/reorder", deps.Orders.Reorder)
			r.Patch("/{orderNumber}/delivered", deps.Orders.MarkDelivered)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", deps.Auth.Signup)
			r.Post("/login", deps.Auth.Login)
			r.With(requireAuth).Get("/me", deps.Auth.Me)
		})

		r.Route("/account/address", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", deps.Auth.GetAddress)
			r.Post("/", deps.Auth.SetAddress)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/recent", deps.Reviews.ListRecent)
			r.With(requireAuth).Get("/my", deps.Reviews.ListMine)
			r.With(requireAuth).Post("/", deps.Reviews.Create)
		})
	})

	return r
}
