package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/fixture"
	"github.com/plotvista/plotvista/internal/model"
)

// PlotHandler serves plot reads and the manager-only status update.
type PlotHandler struct{}

func NewPlotHandler() *PlotHandler { return &PlotHandler{} }

// plotUpdateReq is the partial-update body for PATCH /api/plots/:id.
// Only status may change; a nil pointer means "leave as is".
type plotUpdateReq struct {
	Status *model.PlotStatus `json:"status"`
}

// List handles GET /api/plots.  The status filter is validated against
// the closed enum but the result is an empty collection until plots are
// backed by storage; skip and limit are likewise accepted unused.
func (h *PlotHandler) List(c echo.Context) error {
	if s := c.QueryParam("status"); s != "" {
		if !model.PlotStatus(s).Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be one of available, booked, agreement, registration"})
		}
	}
	return c.JSON(http.StatusOK, []model.Plot{})
}

// Get handles GET /api/plots/:id and returns the synthesized record for
// the requested id.
func (h *PlotHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	return c.JSON(http.StatusOK, fixture.Plot(id))
}

// Update handles PATCH /api/plots/:id (manager only).  The new status
// is applied to the synthesized record and the update timestamp is
// refreshed; nothing is persisted yet.
func (h *PlotHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req plotUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Status != nil && !req.Status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be one of available, booked, agreement, registration"})
	}

	plot := fixture.Plot(id)
	if req.Status != nil {
		plot.Status = *req.Status
	}
	now := time.Now().UTC()
	plot.UpdatedAt = &now
	return c.JSON(http.StatusOK, plot)
}
