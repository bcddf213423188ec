package services

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller does not own the resource
	// being mutated.
	ErrForbidden = errors.New("forbidden")

	// ErrCartEmpty is returned when checkout starts on a cart with no items.
	ErrCartEmpty = errors.New("cart is empty")
)
