package model

import "time"

// BookingType enumerates the three commitment levels a customer can
// hold on a plot.  The set is closed.
type BookingType string

const (
	BookingBooking      BookingType = "booking"
	BookingAgreement    BookingType = "agreement"
	BookingRegistration BookingType = "registration"
)

// Valid reports whether t is one of the three known booking types.
func (t BookingType) Valid() bool {
	switch t {
	case BookingBooking, BookingAgreement, BookingRegistration:
		return true
	}
	return false
}

// Booking links a customer's commitment to a specific plot.  UserID
// records the user who created the booking.
//
// Fields:
//  ID            – primary key identifier.
//  CustomerName  – customer's full name.
//  CustomerPhone – contact phone number.
//  CustomerEmail – optional contact email (nil when not given).
//  BookingType   – commitment level.
//  PlotID        – plot being booked.
//  UserID        – user who created the booking.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp (nil when never updated).
type Booking struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail *string     `json:"customer_email"`
	BookingType   BookingType `json:"booking_type"`
	PlotID        int         `json:"plot_id"`
	UserID        int         `json:"user_id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at"`
}
