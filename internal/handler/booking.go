package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plotvista/plotvista/internal/model"
	"github.com/plotvista/plotvista/internal/queue"
	"github.com/plotvista/plotvista/internal/repository"
	queue_publisher "github.com/plotvista/plotvista/internal/service"
)

// BookingHandler serves the booking list and the manager-only create.
// The create response is synthesized per the mock contract; when a
// database is configured the booking is additionally recorded as an
// audit row, and a booking.created event is published best-effort.
type BookingHandler struct {
	Bookings *repository.BookingRepo // nil when persistence is disabled
}

func NewBookingHandler(bookings *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// bookingCreateReq is the body for POST /api/bookings.
type bookingCreateReq struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail *string           `json:"customer_email"`
	BookingType   model.BookingType `json:"booking_type"`
	PlotID        int               `json:"plot_id"`
}

// List handles GET /api/bookings.  skip and limit are accepted but the
// collection is empty until bookings are read back from storage.
func (h *BookingHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, []model.Booking{})
}

// Create handles POST /api/bookings (manager only).
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_name is required"})
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_phone is required"})
	}
	if !req.BookingType.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_type must be one of booking, agreement, registration"})
	}
	if req.PlotID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "plot_id is required"})
	}

	userID, err := getUserID(c)
	if err != nil {
		userID = 1 // single-principal system; see auth seeding
	}

	booking := model.Booking{
		ID:            1,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		BookingType:   req.BookingType,
		PlotID:        req.PlotID,
		UserID:        userID,
		CreatedAt:     time.Now().UTC(),
	}

	// Audit trail first, event second; neither may fail the request.
	if h.Bookings != nil {
		if _, err := h.Bookings.Insert(c.Request().Context(), booking); err != nil {
			log.Printf("booking: audit insert failed: %v", err)
		}
	}
	go func(ev queue.BookingCreatedEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingCreated(ctx, ev)
	}(bookingEvent(booking))

	return c.JSON(http.StatusOK, booking)
}

func bookingEvent(b model.Booking) queue.BookingCreatedEvent {
	email := ""
	if b.CustomerEmail != nil {
		email = *b.CustomerEmail
	}
	return queue.BookingCreatedEvent{
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: email,
		BookingType:   string(b.BookingType),
		PlotID:        b.PlotID,
		UserID:        b.UserID,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
