package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"webapps/internal/config"
	"webapps/internal/database"
	"webapps/internal/handler"
	"webapps/internal/middleware"
	"webapps/internal/repository"
	"webapps/internal/router"
	"webapps/internal/view"
)

func main() {
	cfg := config.LoadCafes()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("cafes: open store: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(db, database.CafesSchema); err != nil {
		log.Fatalf("cafes: ensure schema: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Renderer = view.New("cafes")

	// The cafe API is the only outward-facing surface; the limiter stays a
	// pass-through unless RATE_LIMIT_ENABLED is set and Redis answers.
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled {
		e.Use(middleware.NewTokenBucket(rlCfg, config.NewRedisClient()))
	}

	h := handler.NewCafeHandler(repository.NewCafeRepo(db), cfg.APIKey)
	router.RegisterCafeRoutes(e, h)

	addr := ":" + cfg.Port
	log.Printf("cafes: listening on %s (store=%s)", addr, cfg.DBPath)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
