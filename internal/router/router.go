package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/handler"
	"github.com/plotvista/plotvista/internal/middleware"
)

// RegisterRoutes registers routes that carry no authentication: the
// service banner at / and the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Login lives
// under /api/auth and needs no session; test-token and the current-user
// endpoint require a valid bearer token but no particular role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login)
	g.GET("/test-token", a.TestToken, middleware.JWTAuth(jwtSecret))

	auth := e.Group("/api", middleware.JWTAuth(jwtSecret))
	auth.GET("/users/me", u.Me)
}
