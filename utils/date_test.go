package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, 6, 12, 18, 45, 30, 123, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfISOWeek(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"Monday", time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
		{"Wednesday", time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)},
		{"Sunday", time.Date(2024, 6, 16, 23, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, StartOfISOWeek(tt.in))
		})
	}
}

func TestStartOfYear(t *testing.T) {
	got := StartOfYear(time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestValidateVisitDate(t *testing.T) {
	assert.NoError(t, ValidateVisitDate("2024-06-10"))
	assert.Error(t, ValidateVisitDate("10/06/2024"))
	assert.Error(t, ValidateVisitDate("2024-13-01"))
	assert.Error(t, ValidateVisitDate(""))
}

func TestValidateClock(t *testing.T) {
	assert.NoError(t, ValidateClock("09:00"))
	assert.NoError(t, ValidateClock("23:59"))
	assert.Error(t, ValidateClock("9am"))
	assert.Error(t, ValidateClock("25:00"))
	assert.Error(t, ValidateClock(""))
}
