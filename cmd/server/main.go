// Entry point: wires config, the in-memory store, optional Redis and the
// broker consumer into an Echo server.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/utsavhq/utsav/internal/config"
	"github.com/utsavhq/utsav/internal/handler"
	"github.com/utsavhq/utsav/internal/middleware"
	"github.com/utsavhq/utsav/internal/queue"
	"github.com/utsavhq/utsav/internal/router"
	"github.com/utsavhq/utsav/internal/store"
	"github.com/utsavhq/utsav/internal/validator"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// The store is the whole data layer: everything lives in process
	// memory, seeded with the default catalog, and is lost on restart.
	st := store.New(true)

	// Redis is optional; without it the rate limiter and response cache
	// become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}

	// Background consumer appends registration confirmations to
	// logs/registrations.log. It reconnects on its own; a missing broker
	// only costs the log.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, st), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(st), middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterOrganizer(e, handler.NewOrganizerHandler(st), cfg.JWTSecret)
	router.RegisterSession(e, handler.NewCartHandler(st), handler.NewRegistrationHandler(st), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
