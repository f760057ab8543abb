package errors

import "errors"

var (
	// ErrNotFound means no class exists with the given id.
	ErrNotFound = errors.New("class not found")

	// ErrNoSlots means a conditional decrement matched no document,
	// i.e. the class was full at the moment of the update.
	ErrNoSlots = errors.New("no available slots")

	// ErrAlreadyExists means an insert collided with an existing class id.
	ErrAlreadyExists = errors.New("class already exists")
)
