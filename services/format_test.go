package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT7H15M", "7h 15m"},
		{"PT11H30M", "11h 30m"},
		{"PT0H5M", "0h 5m"},
		{"PT8H", "PT8H"},     // no minutes component, left alone
		{"7h 15m", "7h 15m"}, // already formatted
		{"", ""},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "input %q", tt.in)
	}
}

func TestFormatTimeInvalidInputUnchanged(t *testing.T) {
	assert.Equal(t, "not-a-time", FormatTime("not-a-time"))
	assert.Equal(t, "", FormatTime(""))
}

func TestFormatTimeParsesRFC3339(t *testing.T) {
	got := FormatTime("2026-09-05T08:30:00Z")
	assert.Regexp(t, `^\d{1,2}:\d{2} (AM|PM)$`, got)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
	got := FormatDate("2026-09-05T08:30:00Z")
	assert.Regexp(t, `^[A-Z][a-z]{2} \d{1,2}, \d{4}$`, got)
}
