package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a plain health check used by load balancers.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root answers GET / with the service banner the frontend probes at
// startup.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to PlotVista API",
		"status":  "running",
	})
}
