package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"webapps/internal/config"
	"webapps/internal/database"
	"webapps/internal/handler"
	"webapps/internal/repository"
	"webapps/internal/router"
	"webapps/internal/tmdb"
	"webapps/internal/view"
)

func main() {
	cfg := config.LoadMovies()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("movies: open store: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(db, database.MoviesSchema); err != nil {
		log.Fatalf("movies: ensure schema: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Renderer = view.New("movies")

	h := handler.NewMovieHandler(repository.NewMovieRepo(db), tmdb.NewClient(cfg.TMDBKey))
	router.RegisterMovieRoutes(e, h)

	addr := ":" + cfg.Port
	log.Printf("movies: listening on %s (store=%s)", addr, cfg.DBPath)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
