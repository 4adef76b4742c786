package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"webapps/internal/config"
	"webapps/internal/handler"
	"webapps/internal/router"
	"webapps/internal/view"
)

func main() {
	cfg := config.LoadLogin()

	// The login demo persists nothing; it only needs a renderer and the
	// secret used to sign the session cookie.
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Renderer = view.New("login")

	router.RegisterLoginRoutes(e, handler.NewLoginHandler(cfg.SecretKey))

	addr := ":" + cfg.Port
	log.Printf("login: listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
