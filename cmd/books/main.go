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
	"webapps/internal/view"
)

func main() {
	cfg := config.LoadBooks()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("books: open store: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(db, database.BooksSchema); err != nil {
		log.Fatalf("books: ensure schema: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Renderer = view.New("books")

	h := handler.NewBookHandler(repository.NewBookRepo(db))
	router.RegisterBookRoutes(e, h)

	addr := ":" + cfg.Port
	log.Printf("books: listening on %s (store=%s)", addr, cfg.DBPath)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
