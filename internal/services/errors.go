package services

import "errors"

// Error kinds. Callers match them with errors.Is; the boundary layer maps them to status codes.
var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrReferentialConflict  = errors.New("referential conflict")
	ErrInvalidState         = errors.New("invalid state")
	ErrCostEstimationFailed = errors.New("cost estimation failed")

	ErrAirportNotFound = errors.New("airport not found")
	ErrInvalidAircraft = errors.New("invalid aircraft")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account exists")
)

// ServiceError is a user-facing message tagged with an error kind and an optional cause
type ServiceError struct {
	Kind    error
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, message string) error {
	return &ServiceError{Kind: kind, Message: message}
}

func wrapError(kind error, message string, cause error) error {
	return &ServiceError{Kind: kind, Message: message, Err: cause}
}
