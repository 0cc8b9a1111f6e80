package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/fixture"
	"github.com/plotvista/plotvista/internal/model"
)

// UserHandler serves the principal and user-listing endpoints.
type UserHandler struct{}

func NewUserHandler() *UserHandler { return &UserHandler{} }

// Me handles GET /api/users/me and returns the principal resolved for
// the bearer token.  The system has a single seeded account, so the
// resolved principal is always the manager record bound to subject 1.
func (h *UserHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, fixture.ManagerUser())
}

// List handles GET /api/users (manager only).  skip and limit are
// accepted unused; the only account is the seeded manager.
func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, []model.User{fixture.ManagerUser()})
}
