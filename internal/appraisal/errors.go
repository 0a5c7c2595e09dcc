package appraisal

import (
	"errors"
	"net/http"
)

// Domain errors for appraisal operations. Error text is user-facing
// Hungarian copy and is returned verbatim in the response body.
var (
	ErrMissingFields  = errors.New("Hiányzó kötelező mezők: súly, fémjelzés")
	ErrEstimateFailed = errors.New("Hiba történt az értékbecslés során. Kérjük, próbálja újra később.")
)

// MapHTTPStatus maps appraisal domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingFields) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
