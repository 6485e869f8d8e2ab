package timeentry

import (
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/timeutil"
)

// HoursWorked is the session length from clock-in to clock-out (overnight
// wrap applied) minus every recorded break, in hours, floored at zero.
// A same-minute clock-out would wrap to a full day; it is read as a
// zero-length session instead, the same policy breaks follow.
func HoursWorked(clockIn, clockOut string, breaks []Break) (float64, error) {
	total, err := timeutil.Duration(clockIn, clockOut)
	if err != nil {
		return 0, err
	}
	if total == timeutil.MinutesPerDay {
		total = 0
	}
	for _, b := range breaks {
		total -= b.Duration
	}
	if total < 0 {
		total = 0
	}
	return float64(total) / 60.0, nil
}

// Variance is worked minus scheduled hours: negative means under-worked,
// positive means overtime. With no matched shift there is nothing to compare
// against, so the result is nil rather than a misleading negative number.
func Variance(worked, scheduled float64) *float64 {
	if scheduled == 0 {
		return nil
	}
	v := worked - scheduled
	return &v
}
