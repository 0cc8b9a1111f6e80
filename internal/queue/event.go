package queue

// BookingCreatedEvent is published when the API accepts a booking.  It
// carries enough context for downstream consumers to log or notify
// without querying the primary store.
type BookingCreatedEvent struct {
	BookingID     int    `json:"booking_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	BookingType   string `json:"booking_type"`
	PlotID        int    `json:"plot_id"`
	UserID        int    `json:"user_id"`
	CreatedAt     string `json:"created_at"`
}
