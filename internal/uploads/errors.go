package uploads

import (
	"errors"
	"net/http"
)

// Domain errors for photo upload operations.
var (
	ErrNoFiles         = errors.New("no files provided")
	ErrNoURLs          = errors.New("no urls provided")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// MapHTTPStatus maps upload domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoFiles) || errors.Is(err, ErrNoURLs) || errors.Is(err, ErrUnsupportedType) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
