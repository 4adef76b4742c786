package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the health-check endpoint every app exposes so a supervisor
// or load balancer can verify the process is serving.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
