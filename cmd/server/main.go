package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/brewline/cafe-backend/internal/auth"
	"github.com/brewline/cafe-backend/internal/cart"
	"github.com/brewline/cafe-backend/internal/catalog"
	"github.com/brewline/cafe-backend/internal/checkout"
	"github.com/brewline/cafe-backend/internal/discount"
	"github.com/brewline/cafe-backend/internal/guestcart"
	"github.com/brewline/cafe-backend/internal/httpapi"
	"github.com/brewline/cafe-backend/internal/orders"
	"github.com/brewline/cafe-backend/internal/payment"
	"github.com/brewline/cafe-backend/internal/reviews"
	"github.com/brewline/cafe-backend/internal/storage"
	"github.com/brewline/cafe-backend/internal/tracking"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	Postgres        orders.Credentials
	KafkaBrokers    []string
	KafkaTopic      string
	JWTSecret       string
	JWTTTL          time.Duration
	PrepDelay       time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGO_DB_NAME", "cafedb"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Postgres: orders.Credentials{
			Host:              getEnv("POSTGRES_HOST", "localhost"),
			Port:              getEnvInt("POSTGRES_PORT", 5432),
			User:              getEnv("POSTGRES_USER", "cafe"),
			Password:          getEnv("POSTGRES_PASSWORD", "cafe"),
			DBName:            getEnv("POSTGRES_DB", "cafedb"),
			MigrationsDirPath: getEnv("MIGRATIONS_DIR", "./migrations"),
		},
		KafkaBrokers:    []string{getEnv("KAFKA_BROKER", "localhost:9092")},
		KafkaTopic:      getEnv("KAFKA_ORDER_TOPIC", "order-events"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me-in-prod!!!!"),
		JWTTTL:          getEnvDuration("JWT_TTL", 24*time.Hour),
		PrepDelay:       getEnvDuration("ORDER_PREP_DELAY", 2*time.Minute),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func newLogger() *slog.Logger {
	if getEnv("LOG_FORMAT", "json") == "text" {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

type indexCreator interface {
	CreateIndexes(ctx context.Context) error
}

func main() {
	cfg := loadConfig()
	logger := newLogger()
	slog.SetDefault(logger)

	ctx := context.Background()

	mongoDB, err := storage.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer mongoDB.Client().Disconnect(ctx)
	logger.Info("connected to MongoDB", "uri", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to Redis", "addr", cfg.RedisAddr)

	orderRepo, err := orders.NewPostgresRepository(&cfg.Postgres)
	if err != nil {
		logger.Error("failed to connect to Postgres", "error", err)
		os.Exit(1)
	}
	defer orderRepo.Close()
	if err := orderRepo.RunMigrations(&cfg.Postgres); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to Postgres", "host", cfg.Postgres.Host)

	// repositories
	cartRepo := cart.NewMongoRepository(mongoDB)
	productRepo := catalog.NewMongoRepository(mongoDB)
	discountRepo := discount.NewMongoRepository(mongoDB)
	userRepo := auth.NewMongoRepository(mongoDB)
	reviewRepo := reviews.NewMongoRepository(mongoDB)

	for _, repo := range []interface{}{cartRepo, userRepo} {
		if ic, ok := repo.(indexCreator); ok {
			if err := ic.CreateIndexes(ctx); err != nil {
				logger.Warn("failed to create indexes", "error", err)
			}
		}
	}

	// guest side lives entirely in Redis
	guestKV := guestcart.NewRedisKV(redisClient)
	guestStore := guestcart.NewStore(guestKV)
	guestAddr := auth.NewKVGuestAddressStore(guestKV)

	// services
	cartCache := cart.NewRedisCache(redisClient)
	cartService := cart.NewService(cartRepo, cartCache, guestStore)
	discountService := discount.NewService(discountRepo)

	gateway := payment.NewBreakerGateway(payment.NewSimulatedGateway(payment.RandomStatus{}), logger)
	publisher := checkout.NewKafkaPublisher(cfg.KafkaTopic, cfg.KafkaBrokers...)
	defer publisher.Close()
	checkoutService := checkout.NewService(cartService, guestStore, discountService, gateway, orderRepo, publisher, logger)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := auth.NewService(userRepo, tokens, cartService, guestAddr, logger)
	reviewService := reviews.NewService(reviewRepo)

	consumerCtx, stopConsumer := context.WithCancel(ctx)
	consumer := tracking.NewConsumer(orderRepo, logger, cfg.PrepDelay, cfg.KafkaTopic, cfg.KafkaBrokers...)
	go consumer.Run(consumerCtx)

	router := httpapi.NewRouter(httpapi.Dependencies{
		Logger:   logger,
		Tokens:   tokens,
		Menu:     httpapi.NewMenuHandler(productRepo),
		Guest:    httpapi.NewGuestHandler(guestStore, productRepo, guestAddr),
		Cart:     httpapi.NewCartHandler(cartService, productRepo),
		Discount: httpapi.NewDiscountHandler(discountService),
		Checkout: httpapi.NewCheckoutHandler(checkoutService),
		Orders:   httpapi.NewOrdersHandler(orderRepo, cartService, productRepo),
		Auth:     httpapi.NewAuthHandler(authService),
		Reviews:  httpapi.NewReviewsHandler(reviewService, authService),
		Timeout:  cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "cafe-backend"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("cafe backend starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	stopConsumer()
	consumer.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
