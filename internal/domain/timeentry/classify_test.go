package timeentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
)

func shiftAt(start, end string) *shift.ShiftAssignment {
	return &shift.ShiftAssignment{
		ID:        "shift-1",
		StartTime: start,
		EndTime:   end,
	}
}

func TestClassifyClockIn(t *testing.T) {
	tests := []struct {
		name       string
		clockIn    string
		matched    *shift.ShiftAssignment
		grace      int
		early      int
		wantStatus AttendanceStatus
	}{
		{
			name:       "no shift is unscheduled",
			clockIn:    "09:00",
			matched:    nil,
			grace:      10,
			early:      30,
			wantStatus: AttendanceUnscheduled,
		},
		{
			name:       "exactly at shift start",
			clockIn:    "09:00",
			matched:    shiftAt("09:00", "17:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceOnTime,
		},
		{
			name:       "inside grace window",
			clockIn:    "09:10",
			matched:    shiftAt("09:00", "17:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceOnTime,
		},
		{
			name:       "one minute past grace is late",
			clockIn:    "09:11",
			matched:    shiftAt("09:00", "17:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceLate,
		},
		{
			name:       "well past grace is late",
			clockIn:    "09:20",
			matched:    shiftAt("09:00", "17:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceLate,
		},
		{
			name:       "a few minutes early is still on time",
			clockIn:    "08:45",
			matched:    shiftAt("09:00", "17:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceOnTime,
		},
		{
			name:       "at the early window boundary is on time",
			clockIn:    "08:30",
			matched:    shiftAt("09:00", "17:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceOnTime,
		},
		{
			name:       "beyond the early window is early",
			clockIn:    "08:29",
			matched:    shiftAt("09:00", "17:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceEarly,
		},
		{
			name:       "zero grace makes any delay late",
			clockIn:    "09:01",
			matched:    shiftAt("09:00", "17:00"),
			grace:      0,
			early:      30,
			wantStatus: AttendanceLate,
		},
		{
			name:       "clock-in before midnight for a shift starting after",
			clockIn:    "23:55",
			matched:    shiftAt("00:10", "08:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceOnTime,
		},
		{
			name:       "clock-in after midnight for a shift starting before",
			clockIn:    "00:05",
			matched:    shiftAt("23:50", "07:00"),
			grace:      20,
			early:      30,
			wantStatus: AttendanceOnTime,
		},
		{
			name:       "overnight shift joined very late",
			clockIn:    "00:30",
			matched:    shiftAt("23:50", "07:00"),
			grace:      10,
			early:      30,
			wantStatus: AttendanceLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, err := ClassifyClockIn(tt.clockIn, tt.matched, tt.grace, tt.early)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, message)
		})
	}
}

func TestClassifyClockInInvalidTime(t *testing.T) {
	_, _, err := ClassifyClockIn("25:00", shiftAt("09:00", "17:00"), 10, 30)
	assert.Error(t, err)

	_, _, err = ClassifyClockIn("09:00", shiftAt("9am", "17:00"), 10, 30)
	assert.Error(t, err)
}
