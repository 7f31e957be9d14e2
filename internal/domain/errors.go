package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type UnauthorizedError struct {
	Msg string
	Err error
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

func (e UnauthorizedError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// LoadError reports that the dataset document could not be retrieved or
// parsed. Loading is all-or-nothing; callers degrade to empty collections.
type LoadError struct {
	Source string
	Err    error
}

func (e LoadError) Error() string {
	if e.Source == "" {
		return "dataset load failed"
	}
	return fmt.Sprintf("dataset load failed: %s", e.Source)
}

func (e LoadError) Unwrap() error { return e.Err }

// GeometryError reports a failed route-geometry fetch. Map drawing skips the
// affected segment; nothing else is blocked.
type GeometryError struct {
	Err error
}

func (e GeometryError) Error() string { return "route geometry fetch failed" }

func (e GeometryError) Unwrap() error { return e.Err }

// BookingKind identifies which ledger check rejected a booking attempt.
type BookingKind string

const (
	InvalidQuantity     BookingKind = "invalid_quantity"
	InsufficientSeats   BookingKind = "insufficient_seats"
	InsufficientBalance BookingKind = "insufficient_balance"
)

// BookingError is a rejected booking attempt. The first failing check wins;
// no side effects happen before all checks pass.
type BookingError struct {
	Kind BookingKind
	Msg  string
}

func (e BookingError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return string(e.Kind)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsLoad(err error) bool {
	var target LoadError
	return errors.As(err, &target)
}

func IsGeometry(err error) bool {
	var target GeometryError
	return errors.As(err, &target)
}

// AsBooking extracts a BookingError when err is one.
func AsBooking(err error) (BookingError, bool) {
	var target BookingError
	ok := errors.As(err, &target)
	return target, ok
}
