package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/Paulcode2/tfawe-backend/internal/auth"
	"github.com/Paulcode2/tfawe-backend/internal/cache"
	"github.com/Paulcode2/tfawe-backend/internal/config"
	"github.com/Paulcode2/tfawe-backend/internal/events"
	apphttp "github.com/Paulcode2/tfawe-backend/internal/http"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
	"github.com/Paulcode2/tfawe-backend/internal/service"
)

func main() {
	cfg := config.Load()

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	// Repositories
	userRepo := repository.NewMongoUserRepository(mongoDB)
	productRepo := repository.NewMongoProductRepository(mongoDB)
	cartRepo := repository.NewMongoCartRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)

	productCache := cache.NewRedisCache(redisClient)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Optional order-event publishing
	var orderEvents service.OrderEvents
	if len(cfg.KafkaBrokers) > 0 {
		publisher := events.NewPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		defer publisher.Close()
		orderEvents = publisher
		log.Printf("Order events enabled on topic %s", cfg.KafkaTopic)
	}

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	productService := service.NewProductService(productRepo, productCache)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo, productCache, service.DirectChargeProvider{}, orderEvents)

	rateLimiter := apphttp.NewRateLimiter(rate.Limit(20), 40)
	defer rateLimiter.Close()

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Auth:           apphttp.NewAuthHandler(authService),
		Products:       apphttp.NewProductHandler(productService),
		Cart:           apphttp.NewCartHandler(cartService),
		Orders:         apphttp.NewOrderHandler(orderService),
		Admin:          apphttp.NewAdminHandler(authService, orderService),
		Uploads:        apphttp.NewUploadHandler(cfg.UploadDir),
		UploadDir:      cfg.UploadDir,
		Tokens:         tokens,
		RateLimiter:    rateLimiter,
		CORSOrigins:    cfg.CORSAllowOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(router, "tfawe-backend"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	mongoDB.Client().Disconnect(shutdownCtx) //nolint:errcheck
	log.Println("server exited")
}
