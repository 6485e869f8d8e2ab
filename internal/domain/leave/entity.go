package leave

import "time"

// LeaveRecord is an employee absence request covering an inclusive date
// range. Only approved records affect attendance classification.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	Reason     *string
	ResolvedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Covers reports whether the record's range includes the given date. The
// comparison uses the date's wall-clock day so non-UTC timestamps near
// midnight fall on the calendar day the caller sees.
func (l *LeaveRecord) Covers(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(l.StartDate) && !d.After(l.EndDate)
}

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeUnpaid    Type = "unpaid"
	TypeParental  Type = "parental"
	TypeBereaved  Type = "bereavement"
	TypeOtherType Type = "other"
)

var TypeValues = []string{
	string(TypeAnnual),
	string(TypeSick),
	string(TypeUnpaid),
	string(TypeParental),
	string(TypeBereaved),
	string(TypeOtherType),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}
