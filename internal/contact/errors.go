package contact

import (
	"errors"
	"net/http"
)

// Domain errors for contact operations.
var (
	ErrInvalidMessage = errors.New("invalid message")
	ErrSendFailed     = errors.New("failed to send email")
)

// MapHTTPStatus maps contact domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidMessage) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
