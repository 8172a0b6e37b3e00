// Package service implements the business rules of the reservation system on
// top of the record stores: authentication, seat booking under the
// one-confirmed-reservation-per-seat invariant, flight administration and
// read-only reporting.
package service

import "errors"

// Sentinel errors returned for rejected operations. They are recoverable
// business outcomes, not failures: callers match them with errors.Is and
// translate them into user messaging. Anything else bubbling out of a
// service is a persistence failure.
var (
	ErrFlightNotFound        = errors.New("flight not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrSeatInvalid           = errors.New("seat not valid for this flight")
	ErrSeatTaken             = errors.New("seat already taken")
	ErrForbidden             = errors.New("reservation belongs to another user")
	ErrAlreadyCancelled      = errors.New("reservation already cancelled")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidFlight         = errors.New("invalid flight attributes")
	ErrFlightHasReservations = errors.New("flight has confirmed reservations")
)
