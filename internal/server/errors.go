package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/talkto/internal/directory"
	"github.com/jonathan/talkto/internal/legislation"
	"github.com/jonathan/talkto/internal/reps"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidZip *reps.InvalidZipError
		validation *ErrValidation
	)
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &invalidZip), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, reps.ErrNoRepresentatives), errors.Is(err, directory.ErrUnknownCategory):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-facing message for an error.
// Upstream and internal failures never expose their cause.
func PublicMessage(err error) string {
	var (
		invalidZip *reps.InvalidZipError
		validation *ErrValidation
		lookup     *reps.LookupError
	)
	switch {
	case err == nil:
		return "internal error"
	case errors.As(err, &invalidZip):
		return reps.MsgInvalidZip
	case errors.As(err, &validation):
		return validation.Message
	case errors.Is(err, reps.ErrNoRepresentatives):
		return reps.MsgNoReps
	case errors.As(err, &lookup):
		return reps.MsgLookupFailed
	case errors.Is(err, directory.ErrUnknownCategory):
		return err.Error()
	case errors.Is(err, legislation.ErrMissingAPIKey):
		return legislation.MsgMissingAPIKey
	default:
		return "internal error"
	}
}
