package main // Entry point package

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/plotvista/plotvista/internal/config"
	"github.com/plotvista/plotvista/internal/database"
	"github.com/plotvista/plotvista/internal/handler"
	"github.com/plotvista/plotvista/internal/middleware"
	"github.com/plotvista/plotvista/internal/queue"
	"github.com/plotvista/plotvista/internal/repository"
	"github.com/plotvista/plotvista/internal/router"
)

func main() {
	// .env is optional; real deployments pass variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Optional MySQL: the API serves fixture data either way, but with
	// a database the seed account and booking audit rows are durable.
	var (
		db          *sql.DB
		userRepo    *repository.UserRepo
		bookingRepo *repository.BookingRepo
	)
	if cfg.DBHost != "" {
		var err error
		db, err = database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Printf("mysql: connect failed: %v; continuing without persistence", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := database.EnsureSchema(ctx, db); err != nil {
				log.Printf("mysql: schema bootstrap failed: %v", err)
			}
			cancel()
			userRepo = repository.NewUserRepo(db)
			bookingRepo = repository.NewBookingRepo(db)
		}
	}

	// Optional Redis: nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: not reachable; cache and rate limiting disabled")
	}

	authH, err := handler.NewAuthHandler(cfg, userRepo)
	if err != nil {
		log.Fatalf("auth setup: %v", err)
	}
	layoutH := handler.NewLayoutHandler()
	plotH := handler.NewPlotHandler()
	bookingH := handler.NewBookingHandler(bookingRepo)
	userH := handler.NewUserHandler()

	e := echo.New()
	e.HideBanner = true
	// The frontend calls collection routes with a trailing slash.
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, userH, cfg.JWTSecret)
	router.RegisterPublic(e, layoutH, plotH, bookingH,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterManager(e, plotH, bookingH, userH, cfg.JWTSecret)

	// Consume booking.created only when a broker is configured;
	// otherwise the reconnect loop would log forever.
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking-consumer: stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
