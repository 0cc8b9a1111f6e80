package router

import (
	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints under
// /api.  These return fixture-backed data and apply no JWT or role
// middleware so the frontend can render the grid before login.  Extra
// middleware (e.g. the response cache) applies to this group only.
func RegisterPublic(e *echo.Echo, l *handler.LayoutHandler, p *handler.PlotHandler, b *handler.BookingHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api", mw...)

	g.GET("/layouts", l.List)
	g.GET("/layouts/:id", l.Get)

	g.GET("/plots", p.List)
	g.GET("/plots/:id", p.Get)

	g.GET("/bookings", b.List)
}
