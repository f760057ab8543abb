package model

import "time"

// Booking is one reserved slot in a class. Bookings are immutable once
// created; there is no cancellation flow. ClientEmail is stored in
// normalized (lowercase) form and is the identity key for duplicate
// detection.
type Booking struct {
	ID          string    `json:"booking_id" bson:"_id"`
	ClassID     int       `json:"class_id" bson:"class_id"`
	ClientName  string    `json:"client_name" bson:"client_name"`
	ClientEmail string    `json:"client_email" bson:"client_email"`
	BookingTime time.Time `json:"booking_time" bson:"booking_time"`
}

// BookingRequest is the POST /book payload.
type BookingRequest struct {
	ClassID     int    `json:"class_id" validate:"required,min=1"`
	ClientName  string `json:"client_name" validate:"required,min=1,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email,max=120"`
}

// BookingConfirmation carries what the booking response needs beyond
// the booking itself: the class display fields and the post-decrement
// slot count, captured inside the committed transaction.
type BookingConfirmation struct {
	BookingID        string
	ClassName        string
	ClassDatetimeIST string
	AvailableSlots   int
}

// BookingView is a booking joined with its class for GET /bookings.
type BookingView struct {
	BookingID        string `json:"booking_id"`
	ClassID          int    `json:"class_id"`
	ClassName        string `json:"class_name"`
	ClassDatetimeIST string `json:"class_datetime_ist"`
	ClientName       string `json:"client_name"`
	ClientEmail      string `json:"client_email"`
	BookingTime      string `json:"booking_time"`
}
