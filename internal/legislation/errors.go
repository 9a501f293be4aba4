package legislation

import (
	"errors"
	"fmt"
)

// Messages returned to clients.
const (
	MsgMissingAPIKey = "Congress API key not configured"
	MsgFetchFailed   = "Failed to fetch trending issues"
)

// ErrMissingAPIKey indicates CONGRESS_API_KEY is not configured.
var ErrMissingAPIKey = errors.New(MsgMissingAPIKey)

// FetchError represents a failure retrieving or decoding the bill listing.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("congress error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("congress error: %s", e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
