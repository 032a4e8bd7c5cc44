package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrBookUnavailable = errors.New("book is unavailable")
	ErrAlreadyReturned = errors.New("rent is already returned")
	ErrHasActiveRent   = errors.New("book has an active rent")
	ErrForbidden       = errors.New("caller does not own this rent")
	// ErrContention is transient: the caller may retry, the service never does.
	ErrContention = errors.New("storage contention")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
