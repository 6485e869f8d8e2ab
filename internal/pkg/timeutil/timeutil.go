// Package timeutil implements the HH:MM interval arithmetic shared by shift
// matching, conflict detection and worked-hours calculation. All times are
// minutes since midnight; an end at or before its start is treated as
// belonging to the next day (overnight shifts).
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
)

// MinutesPerDay is the wrap offset applied to overnight intervals.
const MinutesPerDay = 24 * 60

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// FormatError reports a malformed HH:MM string.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected zero-padded 24-hour HH:MM", e.Value)
}

// IsValidClockTime reports whether s is a zero-padded 24-hour "HH:MM" string.
func IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

// ToMinutes parses a zero-padded 24-hour "HH:MM" string into minutes since
// midnight.
func ToMinutes(hhmm string) (int, error) {
	if !clockTimeRegex.MatchString(hhmm) {
		return 0, &FormatError{Value: hhmm}
	}
	hours, _ := strconv.Atoi(hhmm[:2])
	minutes, _ := strconv.Atoi(hhmm[3:])
	return hours*60 + minutes, nil
}

// FormatMinutes renders minutes since midnight back to "HH:MM", normalizing
// values past midnight onto the next day.
func FormatMinutes(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Duration returns the minutes between two clock times. An end at or before
// the start wraps to the next day, so 17:00-01:00 is 480 minutes.
func Duration(startHHMM, endHHMM string) (int, error) {
	start, err := ToMinutes(startHHMM)
	if err != nil {
		return 0, err
	}
	end, err := ToMinutes(endHHMM)
	if err != nil {
		return 0, err
	}
	if end <= start {
		end += MinutesPerDay
	}
	return end - start, nil
}

// normalize applies the overnight wrap rule to a minute pair.
func normalize(start, end int) (int, int) {
	if end <= start {
		end += MinutesPerDay
	}
	return start, end
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one minute, after normalizing overnight wrap
// on both. This is the single overlap predicate used by conflict detection
// and matching: two shifts that only touch endpoints do not overlap.
func Overlaps(aStartHHMM, aEndHHMM, bStartHHMM, bEndHHMM string) (bool, error) {
	aStart, err := ToMinutes(aStartHHMM)
	if err != nil {
		return false, err
	}
	aEnd, err := ToMinutes(aEndHHMM)
	if err != nil {
		return false, err
	}
	bStart, err := ToMinutes(bStartHHMM)
	if err != nil {
		return false, err
	}
	bEnd, err := ToMinutes(bEndHHMM)
	if err != nil {
		return false, err
	}

	aStart, aEnd = normalize(aStart, aEnd)
	bStart, bEnd = normalize(bStart, bEnd)

	if overlapsMinutes(aStart, aEnd, bStart, bEnd) {
		return true, nil
	}
	// An overnight interval also occupies the early minutes of the next day,
	// so compare each against the other shifted by one day.
	if overlapsMinutes(aStart+MinutesPerDay, aEnd+MinutesPerDay, bStart, bEnd) {
		return true, nil
	}
	if overlapsMinutes(aStart, aEnd, bStart+MinutesPerDay, bEnd+MinutesPerDay) {
		return true, nil
	}
	return false, nil
}

func overlapsMinutes(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
