package errors

import "errors"

var (
	// ErrDuplicate means the unique (class_id, client_email) index
	// rejected the insert: this client already booked this class.
	ErrDuplicate = errors.New("booking already exists for this class and email")

	// ErrNotFound means no booking exists with the given id.
	ErrNotFound = errors.New("booking not found")
)
