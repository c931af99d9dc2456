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
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/cinetick/booking-engine/internal/adapter/handler"
	"github.com/cinetick/booking-engine/internal/adapter/repository/postgres"
	"github.com/cinetick/booking-engine/internal/core/services"
	"github.com/cinetick/booking-engine/internal/platform/database"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment.")
	}

	dbConfig := database.Config{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD", ""),
		DBName:   getenv("DB_NAME", "booking_engine"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}
	defer db.Close()

	redisAddr := fmt.Sprintf("%s:%s", getenv("REDIS_HOST", "localhost"), getenv("REDIS_PORT", "6379"))
	log.Printf("Connecting to Redis at %s...", redisAddr)

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	seatRepo := postgres.NewSeatRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	staffOpRepo := postgres.NewStaffOperationRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)

	var opts []services.OrderServiceOption
	if window, err := time.ParseDuration(getenv("PAYMENT_WINDOW", "")); err == nil {
		opts = append(opts, services.WithPaymentWindow(window))
	}

	orderService := services.NewOrderService(seatRepo, orderRepo, staffOpRepo, catalogRepo, redisClient, opts...)

	sweeper := services.NewExpirySweeper(orderService, getenv("SWEEP_SCHEDULE", ""))
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start expiry sweeper: %v", err)
	}
	defer sweeper.Stop()

	addr := ":" + getenv("PORT", "8080")

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(orderService),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
