package events

import "time"

const (
	// TopicBookingCreated carries one event per confirmed booking,
	// keyed by class id so events for a class stay ordered.
	TopicBookingCreated = "fitstudio.bookings.created"

	TypeBookingCreated = "booking.created"

	Source = "fitstudio-api"
)

// BookingCreated is published after the booking transaction commits.
// Consumers must tolerate duplicates: publishing is best-effort and the
// API never rolls back a booking because the event failed to send.
type BookingCreated struct {
	BookingID   string    `json:"booking_id"`
	ClassID     int       `json:"class_id"`
	ClassName   string    `json:"class_name"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	BookingTime time.Time `json:"booking_time"`
}
