package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"2004-04-04", "4 Avr. 04"},
		{"2001-01-01", "1 Jan. 01"},
		{"2023-04-14", "14 Avr. 23"},
		{"2002-12-31", "31 Déc. 02"},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			got, err := FormatDate(tt.iso)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateRejectsGarbage(t *testing.T) {
	for _, iso := range []string{"", "not-a-date", "2004-13-01", "04/04/2004"} {
		_, err := FormatDate(iso)
		assert.Error(t, err, "expected %q to be rejected", iso)
	}
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "En attente", FormatStatus(BillStatusPending))
	assert.Equal(t, "Accepté", FormatStatus(BillStatusAccepted))
	assert.Equal(t, "Refusé", FormatStatus(BillStatusRefused))
	// Unknown statuses pass through.
	assert.Equal(t, "archived", FormatStatus("archived"))
}
