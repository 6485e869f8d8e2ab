package timeentry

import "time"

// TimeEntry is one observed work session (clock-in through clock-out) for
// one employee on one date. An employee may have several entries per day
// (split shifts) but at most one in an active state at a time; that
// invariant is enforced by a partial unique index at the storage layer.
type TimeEntry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    string  // HH:MM
	ClockOut   *string // nil while the session is active
	Breaks     []Break

	HoursWorked      *float64
	Status           Status
	ShiftID          *string // weak reference to the matched shift
	AttendanceStatus AttendanceStatus
	ScheduledHours   float64
	Variance         *float64 // nil when no shift was matched

	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// Break is one pause inside a session. EndTime and Duration stay unset while
// the break is still open.
type Break struct {
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Duration  int     `json:"duration"` // minutes
	Type      string  `json:"type"`
}

// OpenBreak returns the index of the break still missing an end time, or -1.
func (t *TimeEntry) OpenBreak() int {
	for i := range t.Breaks {
		if t.Breaks[i].EndTime == nil {
			return i
		}
	}
	return -1
}

type Status string

const (
	StatusClockedIn  Status = "clocked_in"
	StatusOnBreak    Status = "on_break"
	StatusClockedOut Status = "clocked_out"
)

var StatusValues = []string{
	string(StatusClockedIn),
	string(StatusOnBreak),
	string(StatusClockedOut),
}

// Active reports whether the session is still running.
func (s Status) Active() bool {
	return s == StatusClockedIn || s == StatusOnBreak
}

type AttendanceStatus string

const (
	AttendanceOnTime      AttendanceStatus = "on_time"
	AttendanceLate        AttendanceStatus = "late"
	AttendanceEarly       AttendanceStatus = "early"
	AttendanceUnscheduled AttendanceStatus = "unscheduled"
	AttendanceOnLeave     AttendanceStatus = "on_leave"
)

var AttendanceStatusValues = []string{
	string(AttendanceOnTime),
	string(AttendanceLate),
	string(AttendanceEarly),
	string(AttendanceUnscheduled),
	string(AttendanceOnLeave),
}

type BreakType string

const (
	BreakTypeLunch    BreakType = "lunch"
	BreakTypeRest     BreakType = "rest"
	BreakTypePersonal BreakType = "personal"
)

var BreakTypeValues = []string{
	string(BreakTypeLunch),
	string(BreakTypeRest),
	string(BreakTypePersonal),
}
