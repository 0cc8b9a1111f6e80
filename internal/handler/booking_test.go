package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista/internal/model"
)

func TestListBookings(t *testing.T) {
	e := newTestServer(t)

	w := doJSON(e, http.MethodGet, "/api/bookings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateBooking(t *testing.T) {
	e := newTestServer(t)
	body := map[string]any{
		"customer_name":  "Asha Rao",
		"customer_phone": "+91 98450 12345",
		"customer_email": "asha@example.com",
		"booking_type":   "agreement",
		"plot_id":        42,
	}

	// Manager role is required.
	w := doJSON(e, http.MethodPost, "/api/bookings", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(e, http.MethodPost, "/api/bookings", body, bearerToken(t, "viewer"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A valid body is echoed back with server-assigned fields.
	w = doJSON(e, http.MethodPost, "/api/bookings", body, bearerToken(t, "manager"))
	require.Equal(t, http.StatusOK, w.Code)

	var b model.Booking
	decodeBody(t, w, &b)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, "Asha Rao", b.CustomerName)
	assert.Equal(t, "+91 98450 12345", b.CustomerPhone)
	require.NotNil(t, b.CustomerEmail)
	assert.Equal(t, "asha@example.com", *b.CustomerEmail)
	assert.Equal(t, model.BookingAgreement, b.BookingType)
	assert.Equal(t, 42, b.PlotID)
	assert.Equal(t, 1, b.UserID)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Nil(t, b.UpdatedAt)
}

func TestCreateBookingValidation(t *testing.T) {
	e := newTestServer(t)
	token := bearerToken(t, "manager")

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"customer_phone": "1", "booking_type": "booking", "plot_id": 1}},
		{"missing phone", map[string]any{"customer_name": "A", "booking_type": "booking", "plot_id": 1}},
		{"bad type", map[string]any{"customer_name": "A", "customer_phone": "1", "booking_type": "sold", "plot_id": 1}},
		{"missing plot", map[string]any{"customer_name": "A", "customer_phone": "1", "booking_type": "booking"}},
	}
	for _, tc := range cases {
		w := doJSON(e, http.MethodPost, "/api/bookings", tc.body, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
	}

	// customer_email is optional and may be absent.
	w := doJSON(e, http.MethodPost, "/api/bookings", map[string]any{
		"customer_name": "A", "customer_phone": "1", "booking_type": "booking", "plot_id": 3,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var b model.Booking
	decodeBody(t, w, &b)
	assert.Nil(t, b.CustomerEmail)
}
