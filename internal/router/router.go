// Package router binds each application's routes to its handlers.  Every
// Register function is a static dispatch table consulted by echo on each
// request; all registration happens once at startup.
package router

import (
	"github.com/labstack/echo/v4"

	"webapps/internal/handler"
)

// RegisterBookRoutes wires the book catalogue routes.
func RegisterBookRoutes(e *echo.Echo, h *handler.BookHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)
	e.GET("/add", h.AddForm)
	e.POST("/add", h.Add)
	e.GET("/edit/:id", h.EditForm)
	e.POST("/edit/:id", h.Edit)
	e.POST("/delete/:id", h.Delete)
}

// RegisterCafeRoutes wires the cafe directory JSON API.
func RegisterCafeRoutes(e *echo.Echo, h *handler.CafeHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)
	e.GET("/random", h.Random)
	e.GET("/all", h.All)
	e.GET("/search", h.Search)
	e.POST("/add", h.Add)
	e.PATCH("/update-price/:id", h.UpdatePrice)
	e.DELETE("/report-closed/:id", h.ReportClosed)
}

// RegisterMovieRoutes wires the movie tracker routes.  Delete is reachable
// by GET as well as POST because the listing page links to it directly.
func RegisterMovieRoutes(e *echo.Echo, h *handler.MovieHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)
	e.GET("/add", h.AddForm)
	e.POST("/add", h.Add)
	e.GET("/find/:external_id", h.Find)
	e.GET("/edit/:id", h.EditForm)
	e.POST("/edit/:id", h.Edit)
	e.GET("/delete/:id", h.Delete)
	e.POST("/delete/:id", h.Delete)
}

// RegisterLoginRoutes wires the login demo routes.
func RegisterLoginRoutes(e *echo.Echo, h *handler.LoginHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)
	e.GET("/login", h.Form)
	e.POST("/login", h.Submit)
}
