package reps

import (
	"errors"
	"fmt"
)

// Messages shown to users.
const (
	MsgInvalidZip      = "Please enter a valid 5-digit zip code"
	MsgNoReps          = "No representatives found for this zip code"
	MsgLookupFailed    = "Unable to find representatives. Please try again."
	MsgMissingCivicKey = "Civic Information API key not configured"
)

// ErrNoRepresentatives indicates the provider returned an empty list.
var ErrNoRepresentatives = errors.New(MsgNoReps)

// InvalidZipError indicates a zip code failed validation. No upstream call is made.
type InvalidZipError struct {
	Zip   string
	Cause error
}

func (e *InvalidZipError) Error() string {
	return MsgInvalidZip
}

func (e *InvalidZipError) Unwrap() error {
	return e.Cause
}

// LookupError represents a failure calling the representatives provider.
type LookupError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *LookupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lookup error (%s): %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("lookup error (%s): %s", e.Provider, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}
