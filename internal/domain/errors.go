package domain

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrRequestNotFound = errors.New("service request not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOfferNotFound   = errors.New("worker offer not found")
	ErrAddressNotFound = errors.New("address not found")

	ErrNotificationNotFound = errors.New("notification not found")
)

var (
	ErrNotQualified = errors.New("worker is not qualified for this service")
	ErrOfferExists  = errors.New("worker already offers this service")
	ErrPhoneTaken   = errors.New("phone number is already registered")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// StatusConflictError is returned when a transition's status precondition
// does not hold. It carries the status the request actually had so the
// caller can echo it.
type StatusConflictError struct {
	Status RequestStatus
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("request is already %s", e.Status)
}

func NewStatusConflict(status RequestStatus) error {
	return &StatusConflictError{Status: status}
}
