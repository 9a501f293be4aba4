package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talkto/internal/directory"
	"github.com/jonathan/talkto/internal/legislation"
	"github.com/jonathan/talkto/internal/reps"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "category", Message: "category is required"}
	assert.Equal(t, "validation error: category - category is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, "category is required", PublicMessage(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "InvalidZipError",
			err:      &reps.InvalidZipError{Zip: "9021"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrNoRepresentatives",
			err:      reps.ErrNoRepresentatives,
			expected: http.StatusNotFound,
		},
		{
			name:     "Wrapped ErrUnknownCategory",
			err:      fmt.Errorf("%w: astrology", directory.ErrUnknownCategory),
			expected: http.StatusNotFound,
		},
		{
			name:     "LookupError",
			err:      &reps.LookupError{Provider: "5calls", Message: "HTTP status 502"},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "ErrMissingAPIKey",
			err:      legislation.ErrMissingAPIKey,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Please enter a valid 5-digit zip code", PublicMessage(&reps.InvalidZipError{Zip: "abc"}))
	assert.Equal(t, "No representatives found for this zip code", PublicMessage(reps.ErrNoRepresentatives))
	assert.Equal(t, "Unable to find representatives. Please try again.",
		PublicMessage(&reps.LookupError{Provider: "5calls", Message: "timeout", Cause: assert.AnError}))
	assert.Equal(t, "Congress API key not configured", PublicMessage(legislation.ErrMissingAPIKey))
	assert.Equal(t, "internal error", PublicMessage(assert.AnError))
}
