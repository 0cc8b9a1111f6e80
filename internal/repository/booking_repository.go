package repository

import (
	"context"
	"database/sql"

	"github.com/plotvista/plotvista/internal/model"
)

// BookingRepo records bookings accepted by the API.  The response a
// client sees is still the synthesized echo (the read side has no
// persistence yet), so these rows are an audit trail rather than the
// source of truth.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Insert stores one booking row and returns its ID.
func (r *BookingRepo) Insert(ctx context.Context, b model.Booking) (int64, error) {
	var email sql.NullString
	if b.CustomerEmail != nil {
		email = sql.NullString{String: *b.CustomerEmail, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings (customer_name, customer_phone, customer_email, booking_type, plot_id, user_id)
		 VALUES (?,?,?,?,?,?)`,
		b.CustomerName, b.CustomerPhone, email, string(b.BookingType), b.PlotID, b.UserID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CountForPlot reports how many bookings have been recorded against a
// plot.  Used by operators to reconcile the audit trail.
func (r *BookingRepo) CountForPlot(ctx context.Context, plotID int) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE plot_id=?`, plotID).Scan(&n)
	return n, err
}
