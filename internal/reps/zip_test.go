package reps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateZip(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "90210", "90210", false},
		{"trimmed", "  90210 ", "90210", false},
		{"four digits", "9021", "", true},
		{"six digits", "902101", "", true},
		{"letters", "9021a", "", true},
		{"signed", "-9021", "", true},
		{"zip plus four", "90210-1234", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateZip(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var zipErr *InvalidZipError
				require.ErrorAs(t, err, &zipErr)
				assert.Equal(t, "Please enter a valid 5-digit zip code", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
