package shift

import "time"

// ShiftAssignment is one employee's planned work period on one date. Times
// are zero-padded 24-hour "HH:MM" strings; an end time at or before the
// start wraps past midnight.
type ShiftAssignment struct {
	ID            string
	EmployeeID    string
	Date          time.Time // calendar day, time-of-day ignored for matching
	StartTime     string
	EndTime       string
	Location      Location
	WorkType      WorkType
	BreakDuration int // minutes
	Status        Status
	AssignedBy    string
	Notes         *string
	SwapRequest   *SwapRequest

	// Maintained by the status synchronizer only.
	ActualStartTime *string
	ActualEndTime   *string
	TimeEntryID     *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusOnBreak    Status = "On Break"
	StatusCompleted  Status = "Completed"
	StatusMissed     Status = "Missed"
	StatusCancelled  Status = "Cancelled"
	StatusSwapped    Status = "Swapped"
)

var StatusValues = []string{
	string(StatusScheduled),
	string(StatusInProgress),
	string(StatusOnBreak),
	string(StatusCompleted),
	string(StatusMissed),
	string(StatusCancelled),
	string(StatusSwapped),
}

// Active reports whether the assignment still counts for matching and
// conflict detection. Cancelled and swapped shifts are out of rotation.
func (s Status) Active() bool {
	return s != StatusCancelled && s != StatusSwapped
}

type Location string

const (
	LocationOffice     Location = "Office"
	LocationHome       Location = "Home"
	LocationField      Location = "Field"
	LocationClientSite Location = "Client Site"
)

var LocationValues = []string{
	string(LocationOffice),
	string(LocationHome),
	string(LocationField),
	string(LocationClientSite),
}

type WorkType string

const (
	WorkTypeRegular            WorkType = "Regular"
	WorkTypeOvertime           WorkType = "Overtime"
	WorkTypeWeekendOvertime    WorkType = "Weekend overtime"
	WorkTypeClientSideOvertime WorkType = "Client-side overtime"
)

var WorkTypeValues = []string{
	string(WorkTypeRegular),
	string(WorkTypeOvertime),
	string(WorkTypeWeekendOvertime),
	string(WorkTypeClientSideOvertime),
}

type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "Pending"
	SwapStatusApproved SwapStatus = "Approved"
	SwapStatusRejected SwapStatus = "Rejected"
)

// SwapRequest is the pending/resolved request to hand a shift to another
// employee.
type SwapRequest struct {
	RequestedBy   string
	RequestedWith string
	Status        SwapStatus
	Reason        *string
	RequestedAt   time.Time
	ResolvedAt    *time.Time
}
