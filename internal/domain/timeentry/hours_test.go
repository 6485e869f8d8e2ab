package timeentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestHoursWorked(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		breaks   []Break
		want     float64
	}{
		{
			name:     "full day no breaks",
			clockIn:  "09:00",
			clockOut: "17:00",
			want:     8,
		},
		{
			name:     "lunch break deducted",
			clockIn:  "09:00",
			clockOut: "17:00",
			breaks: []Break{
				{StartTime: "12:00", EndTime: strptr("12:30"), Duration: 30, Type: "lunch"},
			},
			want: 7.5,
		},
		{
			name:     "multiple breaks",
			clockIn:  "08:00",
			clockOut: "16:30",
			breaks: []Break{
				{StartTime: "10:00", EndTime: strptr("10:15"), Duration: 15, Type: "rest"},
				{StartTime: "12:00", EndTime: strptr("13:00"), Duration: 60, Type: "lunch"},
			},
			want: 7.25,
		},
		{
			name:     "overnight session wraps past midnight",
			clockIn:  "22:00",
			clockOut: "06:00",
			want:     8,
		},
		{
			name:     "breaks exceeding the session floor at zero",
			clockIn:  "09:00",
			clockOut: "09:30",
			breaks: []Break{
				{StartTime: "09:05", EndTime: strptr("09:50"), Duration: 45, Type: "personal"},
			},
			want: 0,
		},
		{
			name:     "same-minute clock-out is a zero-length session",
			clockIn:  "09:00",
			clockOut: "09:00",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursWorked(tt.clockIn, tt.clockOut, tt.breaks)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestHoursWorkedInvalidTime(t *testing.T) {
	_, err := HoursWorked("9:00", "17:00", nil)
	assert.Error(t, err)
}

func TestVariance(t *testing.T) {
	t.Run("nil when nothing was scheduled", func(t *testing.T) {
		assert.Nil(t, Variance(7.5, 0))
	})

	t.Run("under-worked is negative", func(t *testing.T) {
		v := Variance(7.5, 8)
		require.NotNil(t, v)
		assert.InDelta(t, -0.5, *v, 0.001)
	})

	t.Run("overtime is positive", func(t *testing.T) {
		v := Variance(9, 8)
		require.NotNil(t, v)
		assert.InDelta(t, 1.0, *v, 0.001)
	})

	t.Run("exact match is zero, not nil", func(t *testing.T) {
		v := Variance(8, 8)
		require.NotNil(t, v)
		assert.InDelta(t, 0.0, *v, 0.001)
	})
}
