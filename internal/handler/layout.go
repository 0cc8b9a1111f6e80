package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/fixture"
	"github.com/plotvista/plotvista/internal/model"
)

// LayoutHandler serves the layout browse endpoints.  Both are public
// and both are answered from the fixture dataset until a persistence
// layer replaces it.
type LayoutHandler struct{}

func NewLayoutHandler() *LayoutHandler { return &LayoutHandler{} }

// List handles GET /api/layouts.  skip and limit are accepted for
// forward compatibility but not applied: there is exactly one layout.
func (h *LayoutHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, []model.Layout{fixture.Layout()})
}

// Get handles GET /api/layouts/:id.  Only layout 1 exists; any other
// id is a proper 404, not a 200 with a message body.
func (h *LayoutHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if id != fixture.LayoutID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "layout not found"})
	}
	return c.JSON(http.StatusOK, fixture.Layout())
}
