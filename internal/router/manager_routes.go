package router

import (
	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/handler"
	"github.com/plotvista/plotvista/internal/middleware"
	"github.com/plotvista/plotvista/internal/model"
)

// RegisterManager registers the endpoints that mutate booking state or
// expose account data.  All routes require a valid JWT whose role claim
// is manager; a validly signed viewer token is rejected with 403.
func RegisterManager(e *echo.Echo, p *handler.PlotHandler, b *handler.BookingHandler, u *handler.UserHandler, jwtSecret string) {
	g := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(string(model.RoleManager)),
	)

	g.PATCH("/plots/:id", p.Update)
	g.POST("/bookings", b.Create)
	g.GET("/users", u.List)
}
