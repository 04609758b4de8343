package application

import (
	"errors"
	"fmt"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/pkg/validation"
)

// ErrorKind classifies failures so the transport layer can pick a status
// without inspecting messages.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindForbidden  ErrorKind = "forbidden"
	KindConflict   ErrorKind = "conflict"
	KindStore      ErrorKind = "store_failure"
)

// AppError is the error type returned by every service in this package.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

var (
	ErrUserNotFound    = &AppError{Kind: KindNotFound, Message: "user not found"}
	ErrListingNotFound = &AppError{Kind: KindNotFound, Message: "service not found"}
	ErrBookingNotFound = &AppError{Kind: KindNotFound, Message: "booking not found"}
	ErrNotOwner        = &AppError{Kind: KindForbidden, Message: "only the provider who owns this service may change it"}
	ErrNotAdmin        = &AppError{Kind: KindForbidden, Message: "admin access required"}
	ErrUserExists      = &AppError{Kind: KindConflict, Message: "user already exists"}
)

func validationError(format string, args ...any) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func storeError(op string, err error) error {
	return &AppError{Kind: KindStore, Message: op, Err: err}
}

// KindOf returns the kind of err, treating unknown errors as store failures.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}

// requireEmail normalizes raw and checks the result is a well-formed address.
func requireEmail(raw, field string) (string, error) {
	email := entity.NormalizeEmail(raw)
	if email == "" {
		return "", validationError("%s is required", field)
	}
	if !validation.IsEmail(email) {
		return "", validationError("%s must be a valid email", field)
	}
	return email, nil
}
