package timeentry

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/config"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/leave"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/timeentry"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/timeutil"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type timeEntryServiceImpl struct {
	entryRepo timeentry.TimeEntryRepository
	shiftRepo shift.ShiftAssignmentRepository
	leaveRepo leave.LeaveRecordRepository
	sync      *shiftSynchronizer
	cfg       config.AttendanceConfig
	now       func() time.Time
}

func NewTimeEntryService(
	entryRepo timeentry.TimeEntryRepository,
	shiftRepo shift.ShiftAssignmentRepository,
	leaveRepo leave.LeaveRecordRepository,
	cfg config.AttendanceConfig,
) timeentry.TimeEntryService {
	return &timeEntryServiceImpl{
		entryRepo: entryRepo,
		shiftRepo: shiftRepo,
		leaveRepo: leaveRepo,
		sync:      &shiftSynchronizer{shiftRepo: shiftRepo},
		cfg:       cfg,
		now:       time.Now,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// ClockIn implements timeentry.TimeEntryService. The entry is the source of
// truth and is written first; the linked shift's status follows best-effort.
func (s *timeEntryServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	now := s.now()
	clockIn := req.ClockIn
	if clockIn == "" {
		clockIn = now.Format(clockLayout)
	}
	// Wall-clock date, not a UTC truncation: near local midnight the two
	// disagree and the entry would land on the wrong calendar day.
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		date, err = time.Parse(dateLayout, req.Date)
		if err != nil {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}

	candidates, err := s.shiftRepo.GetActiveByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	nowMinutes, err := timeutil.ToMinutes(clockIn)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	matched := shift.MatchCurrent(candidates, nowMinutes)

	status, message, err := timeentry.ClassifyClockIn(clockIn, matched, s.cfg.LateGraceMinutes, s.cfg.EarlyWindowMinutes)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	// Approved leave overrides the unscheduled fallback: showing up while on
	// leave is recorded, but flagged as on_leave instead of unscheduled.
	if status == timeentry.AttendanceUnscheduled {
		record, err := s.leaveRepo.FindApprovedLeave(ctx, employeeID, date)
		if err != nil {
			return timeentry.TimeEntryResponse{}, err
		}
		if record != nil {
			status = timeentry.AttendanceOnLeave
			message = "Clocked in during approved leave"
		}
	}

	entry := timeentry.TimeEntry{
		EmployeeID:       employeeID,
		Date:             date,
		ClockIn:          clockIn,
		Breaks:           []timeentry.Break{},
		Status:           timeentry.StatusClockedIn,
		AttendanceStatus: status,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
	}
	if matched != nil {
		entry.ShiftID = &matched.ID
		entry.ScheduledHours = shift.ScheduledHours(*matched)
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	s.sync.onClockIn(ctx, created)

	resp := toTimeEntryResponse(created)
	resp.Message = message
	return resp, nil
}

// ClockOut implements timeentry.TimeEntryService.
func (s *timeEntryServiceImpl) ClockOut(ctx context.Context, req timeentry.ClockOutRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.entryRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if entry == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrNoActiveEntry
	}
	if entry.OpenBreak() != -1 {
		return timeentry.TimeEntryResponse{}, timeentry.ErrStillOnBreak
	}

	clockOut := req.ClockOut
	if clockOut == "" {
		clockOut = s.now().Format(clockLayout)
	}

	worked, err := timeentry.HoursWorked(entry.ClockIn, clockOut, entry.Breaks)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry.ClockOut = &clockOut
	entry.HoursWorked = &worked
	entry.Variance = timeentry.Variance(worked, entry.ScheduledHours)
	entry.Status = timeentry.StatusClockedOut
	entry.ClockOutLatitude = req.Latitude
	entry.ClockOutLongitude = req.Longitude

	if err := s.entryRepo.Update(ctx, *entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	s.sync.onClockOut(ctx, *entry)

	return toTimeEntryResponse(*entry), nil
}

// StartBreak implements timeentry.TimeEntryService.
func (s *timeEntryServiceImpl) StartBreak(ctx context.Context, req timeentry.BreakRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.entryRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if entry == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrNoActiveEntry
	}
	if entry.Status == timeentry.StatusOnBreak {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyOnBreak
	}

	breakType := req.Type
	if breakType == "" {
		breakType = string(timeentry.BreakTypeRest)
	}

	entry.Breaks = append(entry.Breaks, timeentry.Break{
		StartTime: s.now().Format(clockLayout),
		Type:      breakType,
	})
	entry.Status = timeentry.StatusOnBreak

	if err := s.entryRepo.Update(ctx, *entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	s.sync.onBreakStart(ctx, *entry)

	return toTimeEntryResponse(*entry), nil
}

// EndBreak implements timeentry.TimeEntryService.
func (s *timeEntryServiceImpl) EndBreak(ctx context.Context) (timeentry.TimeEntryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.entryRepo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if entry == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrNoActiveEntry
	}

	open := entry.OpenBreak()
	if open == -1 {
		return timeentry.TimeEntryResponse{}, timeentry.ErrNotOnBreak
	}

	endTime := s.now().Format(clockLayout)
	duration, err := timeutil.Duration(entry.Breaks[open].StartTime, endTime)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	// Same-minute wrap policy, see timeentry.HoursWorked: a same-minute end
	// is a zero-length break, not a full day.
	if duration == timeutil.MinutesPerDay {
		duration = 0
	}

	entry.Breaks[open].EndTime = &endTime
	entry.Breaks[open].Duration = duration
	entry.Status = timeentry.StatusClockedIn

	if err := s.entryRepo.Update(ctx, *entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	s.sync.onBreakEnd(ctx, *entry)

	return toTimeEntryResponse(*entry), nil
}

// GetMyEntries implements timeentry.TimeEntryService.
func (s *timeEntryServiceImpl) GetMyEntries(ctx context.Context, filter timeentry.MyTimeEntryFilter) (timeentry.ListTimeEntryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}

	full := timeentry.TimeEntryFilter{
		EmployeeID: &employeeID,
		Date:       filter.Date,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Status:     filter.Status,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	return s.ListEntries(ctx, full)
}

// ListEntries implements timeentry.TimeEntryService.
func (s *timeEntryServiceImpl) ListEntries(ctx context.Context, filter timeentry.TimeEntryFilter) (timeentry.ListTimeEntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}

	entries, total, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimeEntryResponse(entry))
	}

	return timeentry.ListTimeEntryResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Entries:    responses,
	}, nil
}

// GetEntry implements timeentry.TimeEntryService.
func (s *timeEntryServiceImpl) GetEntry(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(entry), nil
}

// UpdateEntry implements timeentry.TimeEntryService. Corrected times
// recompute worked hours and variance so the stored figures never drift from
// their inputs.
func (s *timeEntryServiceImpl) UpdateEntry(ctx context.Context, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		entry.Date = date
	}
	if req.ClockIn != nil {
		entry.ClockIn = *req.ClockIn
	}
	if req.ClockOut != nil {
		entry.ClockOut = req.ClockOut
	}

	if entry.ClockOut != nil {
		worked, err := timeentry.HoursWorked(entry.ClockIn, *entry.ClockOut, entry.Breaks)
		if err != nil {
			return timeentry.TimeEntryResponse{}, err
		}
		entry.HoursWorked = &worked
		entry.Variance = timeentry.Variance(worked, entry.ScheduledHours)
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return toTimeEntryResponse(entry), nil
}

// DeleteEntry implements timeentry.TimeEntryService. The linked shift, if
// any, goes back to Scheduled as though the clock-in never happened.
func (s *timeEntryServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.sync.onDelete(ctx, entry)
	return nil
}

func toTimeEntryResponse(entry timeentry.TimeEntry) timeentry.TimeEntryResponse {
	breaks := make([]timeentry.BreakResponse, 0, len(entry.Breaks))
	for _, b := range entry.Breaks {
		breaks = append(breaks, timeentry.BreakResponse{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Duration:  b.Duration,
			Type:      b.Type,
		})
	}

	return timeentry.TimeEntryResponse{
		ID:               entry.ID,
		EmployeeID:       entry.EmployeeID,
		EmployeeName:     entry.EmployeeName,
		Date:             entry.Date.Format(dateLayout),
		ClockIn:          entry.ClockIn,
		ClockOut:         entry.ClockOut,
		Breaks:           breaks,
		HoursWorked:      entry.HoursWorked,
		Status:           string(entry.Status),
		ShiftID:          entry.ShiftID,
		AttendanceStatus: string(entry.AttendanceStatus),
		ScheduledHours:   entry.ScheduledHours,
		Variance:         entry.Variance,
		CreatedAt:        entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        entry.UpdatedAt.Format(time.RFC3339),
	}
}
