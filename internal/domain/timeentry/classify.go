package timeentry

import (
	"fmt"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/timeutil"
)

// ClassifyClockIn labels an observed clock-in against the matched shift.
// With no shift the classification is always unscheduled. Otherwise the
// signed gap between clock-in and the shift's start decides:
//
//	gap < -earlyWindowMinutes            -> early
//	-earlyWindowMinutes <= gap <= grace  -> on_time
//	gap > graceMinutes                   -> late
//
// Arriving exactly at the start, or anywhere inside the grace window, is on
// time. The thresholds come from configuration, never from call sites.
func ClassifyClockIn(clockIn string, matched *shift.ShiftAssignment, graceMinutes, earlyWindowMinutes int) (AttendanceStatus, string, error) {
	if matched == nil {
		return AttendanceUnscheduled, "No shift scheduled for today", nil
	}

	in, err := timeutil.ToMinutes(clockIn)
	if err != nil {
		return "", "", err
	}
	start, err := timeutil.ToMinutes(matched.StartTime)
	if err != nil {
		return "", "", err
	}

	gap := in - start
	// Normalize wrap: a 23:50 clock-in for a 00:10 shift start is 20 minutes
	// early, not a day late (and vice versa).
	if gap > timeutil.MinutesPerDay/2 {
		gap -= timeutil.MinutesPerDay
	} else if gap < -timeutil.MinutesPerDay/2 {
		gap += timeutil.MinutesPerDay
	}

	switch {
	case gap < -earlyWindowMinutes:
		return AttendanceEarly, fmt.Sprintf("Clocked in %d minutes before shift start", -gap), nil
	case gap > graceMinutes:
		return AttendanceLate, fmt.Sprintf("Clocked in %d minutes after shift start", gap), nil
	default:
		return AttendanceOnTime, "Clocked in on time", nil
	}
}
