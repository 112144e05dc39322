package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/config"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/dynamo"
	jwtinfra "github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/jwt"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/lex"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/polly"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/postgres"
	s3infra "github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/s3"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/ses"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/infrastructure/sns"
	transporthttp "github.com/Bhuvan-2005/exomart-ecommerce/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(ctx, dynamoClient, cfg.DynamoTables)

	deps := &transporthttp.Deps{
		UserRepo:    dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		ProductRepo: dynamo.NewProductRepo(dynamoClient, cfg.DynamoTables.Products),
		CartRepo:    dynamo.NewCartRepo(dynamoClient, cfg.DynamoTables.Carts),
		PaymentRepo: dynamo.NewPaymentRepo(dynamoClient, cfg.DynamoTables.Payments),
		OtpRepo:     dynamo.NewOtpRepo(dynamoClient, cfg.DynamoTables.Otps),
	}

	// Orders live in Postgres. The pool is optional; order endpoints
	// degrade gracefully when it is unreachable.
	if pool, err := postgres.NewPool(ctx, cfg.PostgresDSN); err != nil {
		log.Printf("WARN: Postgres not available, order endpoints disabled: %v", err)
	} else {
		defer pool.Close()
		orderRepo := postgres.NewOrderRepo(pool)
		if err := orderRepo.EnsureSchema(ctx); err != nil {
			log.Printf("WARN: could not ensure orders schema: %v", err)
		} else {
			deps.OrderRepo = orderRepo
		}
	}

	// JWT provider (optional — graceful fallback if keys are missing).
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		deps.JWTProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// SES mailer (optional).
	if mailer, err := ses.NewMailer(cfg); err == nil {
		deps.Mailer = mailer
	} else {
		log.Printf("WARN: SES mailer not available: %v", err)
	}

	// SNS order-event publisher (optional).
	if pub, err := sns.NewPublisher(cfg); err == nil {
		deps.Publisher = pub
	} else {
		log.Printf("WARN: SNS publisher not available: %v", err)
	}

	// S3 image store (optional).
	if cfg.S3BucketName != "" {
		deps.ImageStore = s3infra.NewImageStore(s3infra.NewClient(cfg), cfg.S3BucketName, cfg.AWSRegion)
	} else {
		log.Println("WARN: S3_BUCKET_NAME not set, image uploads disabled")
	}

	// Lex shopping assistant (optional).
	if bot, err := lex.NewClient(cfg); err == nil {
		deps.LexClient = bot
	} else {
		log.Printf("WARN: Lex client not available: %v", err)
	}

	// Polly text-to-speech (optional).
	if tts, err := polly.NewClient(cfg); err == nil {
		deps.PollyClient = tts
	} else {
		log.Printf("WARN: Polly client not available: %v", err)
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
