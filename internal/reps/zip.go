package reps

import (
	"strings"

	"github.com/jonathan/talkto/internal/types"
)

// ValidateZip trims a user-supplied zip code and checks that it is exactly five digits.
func ValidateZip(zip string) (string, error) {
	q := types.ZipQuery{Zip: strings.TrimSpace(zip)}
	if err := q.Validate(); err != nil {
		return "", &InvalidZipError{Zip: zip, Cause: err}
	}
	return q.Zip, nil
}
