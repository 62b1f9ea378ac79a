package transit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatInstant(t *testing.T) {
	tests := []struct {
		name     string
		instant  *time.Time
		expected string
	}{
		{
			name:     "nil renders placeholder",
			instant:  nil,
			expected: "-",
		},
		{
			name:     "midnight UTC shifts into the next morning",
			instant:  timePtr(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
			expected: "05/03/2024 - 03:00",
		},
		{
			name:     "shift rolls over to the next day",
			instant:  timePtr(time.Date(2024, time.March, 5, 22, 30, 0, 0, time.UTC)),
			expected: "06/03/2024 - 01:30",
		},
		{
			name:     "single-digit fields are zero padded",
			instant:  timePtr(time.Date(2024, time.January, 2, 1, 4, 0, 0, time.UTC)),
			expected: "02/01/2024 - 04:04",
		},
		{
			name:     "non-UTC input is normalized before shifting",
			instant:  timePtr(time.Date(2024, time.June, 10, 14, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))),
			expected: "10/06/2024 - 15:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatInstant(tt.instant))
		})
	}
}

func TestFormatInstant_NoDSTAdjustment(t *testing.T) {
	// The offset is fixed: a winter and a summer instant shift by the same
	// three hours.
	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "15/01/2024 - 15:00", FormatInstant(&winter))
	assert.Equal(t, "15/07/2024 - 15:00", FormatInstant(&summer))
}

func TestShiftedNow(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(3*time.Hour), ShiftedNow(now))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
