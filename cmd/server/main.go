package main // Entry point

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/spacerhq/spacer-backend/internal/config"
	"github.com/spacerhq/spacer-backend/internal/database"
	"github.com/spacerhq/spacer-backend/internal/handler"
	"github.com/spacerhq/spacer-backend/internal/queue"
	"github.com/spacerhq/spacer-backend/internal/repository"
	"github.com/spacerhq/spacer-backend/internal/router"
	"github.com/spacerhq/spacer-backend/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env always wins

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.Bootstrap(ctx, db); err != nil {
		cancel()
		log.Fatalf("database bootstrap: %v", err)
	}
	cancel()

	// Optional Redis: nil disables revocation, caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, running without revocation/cache/rate-limit")
	}

	users := repository.NewUserRepo(db)
	spaces := repository.NewSpaceRepo(db)
	bookings := repository.NewBookingRepo(db)
	tokens := repository.NewTokenRepo(rdb)

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users, tokens),
		User:    handler.NewUserHandler(cfg, users),
		Space:   handler.NewSpaceHandler(spaces),
		Booking: handler.NewBookingHandler(bookings, spaces, service.NewQueuePublisher()),
		Revoked: tokens,
	}

	e := echo.New()
	router.RegisterRoutes(e, cfg, h, rdb)

	go queue.StartBookingConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
