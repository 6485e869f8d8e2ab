package timeentry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/config"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/leave"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/timeentry"
)

type fakeEntryRepo struct {
	store  map[string]timeentry.TimeEntry
	nextID int
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{store: map[string]timeentry.TimeEntry{}}
}

func (f *fakeEntryRepo) Create(_ context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	for _, existing := range f.store {
		if existing.EmployeeID == entry.EmployeeID && existing.Status.Active() {
			return timeentry.TimeEntry{}, timeentry.ErrActiveEntryExists
		}
	}
	f.nextID++
	entry.ID = fmt.Sprintf("entry-%d", f.nextID)
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	f.store[entry.ID] = entry
	return entry, nil
}

func (f *fakeEntryRepo) GetByID(_ context.Context, id string) (timeentry.TimeEntry, error) {
	entry, ok := f.store[id]
	if !ok {
		return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeEntryRepo) GetActiveByEmployee(_ context.Context, employeeID string) (*timeentry.TimeEntry, error) {
	for _, entry := range f.store {
		if entry.EmployeeID == employeeID && entry.Status.Active() {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepo) List(_ context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	var out []timeentry.TimeEntry
	for _, entry := range f.store {
		if filter.EmployeeID != nil && entry.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, entry)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEntryRepo) Update(_ context.Context, entry timeentry.TimeEntry) error {
	if _, ok := f.store[entry.ID]; !ok {
		return timeentry.ErrEntryNotFound
	}
	f.store[entry.ID] = entry
	return nil
}

func (f *fakeEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.store[id]; !ok {
		return timeentry.ErrEntryNotFound
	}
	delete(f.store, id)
	return nil
}

type fakeShiftRepo struct {
	store  map[string]shift.ShiftAssignment
	nextID int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{store: map[string]shift.ShiftAssignment{}}
}

func (f *fakeShiftRepo) add(employeeID, date, start, end string) string {
	f.nextID++
	id := fmt.Sprintf("shift-%d", f.nextID)
	d, _ := time.Parse(dateLayout, date)
	f.store[id] = shift.ShiftAssignment{
		ID:         id,
		EmployeeID: employeeID,
		Date:       d,
		StartTime:  start,
		EndTime:    end,
		Status:     shift.StatusScheduled,
	}
	return id
}

func (f *fakeShiftRepo) Create(_ context.Context, a shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	f.nextID++
	a.ID = fmt.Sprintf("shift-%d", f.nextID)
	f.store[a.ID] = a
	return a, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.ShiftAssignment, error) {
	a, ok := f.store[id]
	if !ok {
		return shift.ShiftAssignment{}, shift.ErrShiftNotFound
	}
	return a, nil
}

func (f *fakeShiftRepo) GetActiveByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]shift.ShiftAssignment, error) {
	var out []shift.ShiftAssignment
	for _, a := range f.store {
		if a.EmployeeID == employeeID && a.Date.Equal(date) && a.Status.Active() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) List(_ context.Context, _ shift.ShiftFilter) ([]shift.ShiftAssignment, int64, error) {
	return nil, 0, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, a shift.ShiftAssignment) error {
	if _, ok := f.store[a.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.store[a.ID] = a
	return nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}

func (f *fakeShiftRepo) MarkMissedBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeLeaveRepo struct {
	approved []leave.LeaveRecord
}

func (f *fakeLeaveRepo) Create(_ context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	return record, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.LeaveRecord, error) {
	return leave.LeaveRecord{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) FindApprovedLeave(_ context.Context, employeeID string, date time.Time) (*leave.LeaveRecord, error) {
	for _, record := range f.approved {
		if record.EmployeeID == employeeID && record.Covers(date) {
			r := record
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveFilter) ([]leave.LeaveRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, _ leave.LeaveRecord) error {
	return nil
}

const testDate = "2026-03-02"

type fixture struct {
	svc       *timeEntryServiceImpl
	entryRepo *fakeEntryRepo
	shiftRepo *fakeShiftRepo
	leaveRepo *fakeLeaveRepo
}

func newFixture() *fixture {
	entryRepo := newFakeEntryRepo()
	shiftRepo := newFakeShiftRepo()
	leaveRepo := &fakeLeaveRepo{}
	svc := &timeEntryServiceImpl{
		entryRepo: entryRepo,
		shiftRepo: shiftRepo,
		leaveRepo: leaveRepo,
		sync:      &shiftSynchronizer{shiftRepo: shiftRepo},
		cfg:       config.AttendanceConfig{LateGraceMinutes: 10, EarlyWindowMinutes: 30},
		now: func() time.Time {
			return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
		},
	}
	return &fixture{svc: svc, entryRepo: entryRepo, shiftRepo: shiftRepo, leaveRepo: leaveRepo}
}

func authCtx(t *testing.T, employeeID string) context.Context {
	t.Helper()
	token, err := jwt.NewBuilder().Claim("employee_id", employeeID).Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestClockInOnTimeSyncsShift(t *testing.T) {
	fx := newFixture()
	shiftID := fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")

	resp, err := fx.svc.ClockIn(authCtx(t, "emp-1"), timeentry.ClockInRequest{
		Date:    testDate,
		ClockIn: "09:10",
	})
	require.NoError(t, err)

	assert.Equal(t, string(timeentry.AttendanceOnTime), resp.AttendanceStatus)
	assert.Equal(t, string(timeentry.StatusClockedIn), resp.Status)
	require.NotNil(t, resp.ShiftID)
	assert.Equal(t, shiftID, *resp.ShiftID)
	assert.InDelta(t, 8.0, resp.ScheduledHours, 0.001)

	synced := fx.shiftRepo.store[shiftID]
	assert.Equal(t, shift.StatusInProgress, synced.Status)
	require.NotNil(t, synced.ActualStartTime)
	assert.Equal(t, "09:10", *synced.ActualStartTime)
	require.NotNil(t, synced.TimeEntryID)
	assert.Equal(t, resp.ID, *synced.TimeEntryID)
}

func TestClockInLate(t *testing.T) {
	fx := newFixture()
	fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")

	resp, err := fx.svc.ClockIn(authCtx(t, "emp-1"), timeentry.ClockInRequest{
		Date:    testDate,
		ClockIn: "09:20",
	})
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.AttendanceLate), resp.AttendanceStatus)
	assert.Contains(t, resp.Message, "20 minutes")
}

func TestClockInUnscheduled(t *testing.T) {
	fx := newFixture()

	resp, err := fx.svc.ClockIn(authCtx(t, "emp-1"), timeentry.ClockInRequest{
		Date:    testDate,
		ClockIn: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.AttendanceUnscheduled), resp.AttendanceStatus)
	assert.Nil(t, resp.ShiftID)
	assert.Zero(t, resp.ScheduledHours)
}

func TestClockInDuringApprovedLeave(t *testing.T) {
	fx := newFixture()
	start, _ := time.Parse(dateLayout, "2026-03-01")
	end, _ := time.Parse(dateLayout, "2026-03-05")
	fx.leaveRepo.approved = []leave.LeaveRecord{{
		EmployeeID: "emp-1",
		StartDate:  start,
		EndDate:    end,
		Status:     leave.StatusApproved,
	}}

	resp, err := fx.svc.ClockIn(authCtx(t, "emp-1"), timeentry.ClockInRequest{
		Date:    testDate,
		ClockIn: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.AttendanceOnLeave), resp.AttendanceStatus)
}

func TestClockInTwiceRejected(t *testing.T) {
	fx := newFixture()
	ctx := authCtx(t, "emp-1")

	_, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)

	_, err = fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:05"})
	assert.ErrorIs(t, err, timeentry.ErrActiveEntryExists)
}

func TestClockRoundTripCompletesShift(t *testing.T) {
	fx := newFixture()
	shiftID := fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")
	ctx := authCtx(t, "emp-1")

	_, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)

	resp, err := fx.svc.ClockOut(ctx, timeentry.ClockOutRequest{ClockOut: "17:00"})
	require.NoError(t, err)

	assert.Equal(t, string(timeentry.StatusClockedOut), resp.Status)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 8.0, *resp.HoursWorked, 0.001)
	require.NotNil(t, resp.Variance)
	assert.InDelta(t, 0.0, *resp.Variance, 0.001)

	synced := fx.shiftRepo.store[shiftID]
	assert.Equal(t, shift.StatusCompleted, synced.Status)
	require.NotNil(t, synced.ActualEndTime)
	assert.Equal(t, "17:00", *synced.ActualEndTime)
}

func TestClockOutUnscheduledHasNilVariance(t *testing.T) {
	fx := newFixture()
	ctx := authCtx(t, "emp-1")

	_, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)

	resp, err := fx.svc.ClockOut(ctx, timeentry.ClockOutRequest{ClockOut: "13:00"})
	require.NoError(t, err)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 4.0, *resp.HoursWorked, 0.001)
	assert.Nil(t, resp.Variance)
}

func TestClockOutWithoutActiveEntry(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.ClockOut(authCtx(t, "emp-1"), timeentry.ClockOutRequest{})
	assert.ErrorIs(t, err, timeentry.ErrNoActiveEntry)
}

func TestBreakLifecycleSyncsShift(t *testing.T) {
	fx := newFixture()
	shiftID := fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")
	ctx := authCtx(t, "emp-1")

	_, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)

	resp, err := fx.svc.StartBreak(ctx, timeentry.BreakRequest{Type: "lunch"})
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.StatusOnBreak), resp.Status)
	require.Len(t, resp.Breaks, 1)
	assert.Equal(t, "lunch", resp.Breaks[0].Type)
	assert.Nil(t, resp.Breaks[0].EndTime)
	assert.Equal(t, shift.StatusOnBreak, fx.shiftRepo.store[shiftID].Status)

	// Clocking out mid-break is rejected.
	_, err = fx.svc.ClockOut(ctx, timeentry.ClockOutRequest{ClockOut: "17:00"})
	assert.ErrorIs(t, err, timeentry.ErrStillOnBreak)

	// A second break cannot start while one is open.
	_, err = fx.svc.StartBreak(ctx, timeentry.BreakRequest{})
	assert.ErrorIs(t, err, timeentry.ErrAlreadyOnBreak)

	resp, err = fx.svc.EndBreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.StatusClockedIn), resp.Status)
	require.Len(t, resp.Breaks, 1)
	assert.NotNil(t, resp.Breaks[0].EndTime)
	assert.Equal(t, shift.StatusInProgress, fx.shiftRepo.store[shiftID].Status)

	_, err = fx.svc.EndBreak(ctx)
	assert.ErrorIs(t, err, timeentry.ErrNotOnBreak)
}

func TestDeleteEntryRevertsShift(t *testing.T) {
	fx := newFixture()
	shiftID := fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")
	ctx := authCtx(t, "emp-1")

	created, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)
	_, err = fx.svc.ClockOut(ctx, timeentry.ClockOutRequest{ClockOut: "17:00"})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteEntry(ctx, created.ID))

	reverted := fx.shiftRepo.store[shiftID]
	assert.Equal(t, shift.StatusScheduled, reverted.Status)
	assert.Nil(t, reverted.ActualStartTime)
	assert.Nil(t, reverted.ActualEndTime)
	assert.Nil(t, reverted.TimeEntryID)
	assert.Empty(t, fx.entryRepo.store)
}

func TestDeleteEntryWithMissingShiftStillDeletes(t *testing.T) {
	fx := newFixture()
	shiftID := fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")
	ctx := authCtx(t, "emp-1")

	created, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)

	// The shift vanished out from under the entry; delete logs and carries on.
	delete(fx.shiftRepo.store, shiftID)

	require.NoError(t, fx.svc.DeleteEntry(ctx, created.ID))
	assert.Empty(t, fx.entryRepo.store)
}

func TestUpdateEntryRecomputesHours(t *testing.T) {
	fx := newFixture()
	fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")
	ctx := authCtx(t, "emp-1")

	created, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)
	_, err = fx.svc.ClockOut(ctx, timeentry.ClockOutRequest{ClockOut: "17:00"})
	require.NoError(t, err)

	fixedOut := "18:00"
	resp, err := fx.svc.UpdateEntry(ctx, timeentry.UpdateTimeEntryRequest{
		ID:       created.ID,
		ClockOut: &fixedOut,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 9.0, *resp.HoursWorked, 0.001)
	require.NotNil(t, resp.Variance)
	assert.InDelta(t, 1.0, *resp.Variance, 0.001)
}

func TestClockInPicksNearestShift(t *testing.T) {
	fx := newFixture()
	fx.shiftRepo.add("emp-1", testDate, "06:00", "10:00")
	eveningID := fx.shiftRepo.add("emp-1", testDate, "14:00", "22:00")

	resp, err := fx.svc.ClockIn(authCtx(t, "emp-1"), timeentry.ClockInRequest{
		Date:    testDate,
		ClockIn: "13:50",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ShiftID)
	assert.Equal(t, eveningID, *resp.ShiftID)
	assert.Equal(t, string(timeentry.AttendanceOnTime), resp.AttendanceStatus)
}

func TestSecondClockInLeavesCompletedShiftAlone(t *testing.T) {
	fx := newFixture()
	shiftID := fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")
	ctx := authCtx(t, "emp-1")

	first, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)
	_, err = fx.svc.ClockOut(ctx, timeentry.ClockOutRequest{ClockOut: "12:00"})
	require.NoError(t, err)

	// Clocking back in matches the same shift, but the shift already ran.
	second, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "13:00"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	require.NotNil(t, second.ShiftID)
	assert.Equal(t, shiftID, *second.ShiftID)

	synced := fx.shiftRepo.store[shiftID]
	assert.Equal(t, shift.StatusCompleted, synced.Status)
	require.NotNil(t, synced.ActualStartTime)
	assert.Equal(t, "09:00", *synced.ActualStartTime)
	require.NotNil(t, synced.ActualEndTime)
	assert.Equal(t, "12:00", *synced.ActualEndTime)
	require.NotNil(t, synced.TimeEntryID)
	assert.Equal(t, first.ID, *synced.TimeEntryID)
}

func TestDeleteUnlinkedEntryLeavesShiftAlone(t *testing.T) {
	fx := newFixture()
	shiftID := fx.shiftRepo.add("emp-1", testDate, "09:00", "17:00")
	ctx := authCtx(t, "emp-1")

	first, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "09:00"})
	require.NoError(t, err)
	_, err = fx.svc.ClockOut(ctx, timeentry.ClockOutRequest{ClockOut: "12:00"})
	require.NoError(t, err)
	second, err := fx.svc.ClockIn(ctx, timeentry.ClockInRequest{Date: testDate, ClockIn: "13:00"})
	require.NoError(t, err)

	// The shift's back-reference points at the first entry; deleting the
	// second must not revert it.
	require.NoError(t, fx.svc.DeleteEntry(ctx, second.ID))

	synced := fx.shiftRepo.store[shiftID]
	assert.Equal(t, shift.StatusCompleted, synced.Status)
	require.NotNil(t, synced.TimeEntryID)
	assert.Equal(t, first.ID, *synced.TimeEntryID)

	// Deleting the linked entry still reverts.
	require.NoError(t, fx.svc.DeleteEntry(ctx, first.ID))
	reverted := fx.shiftRepo.store[shiftID]
	assert.Equal(t, shift.StatusScheduled, reverted.Status)
	assert.Nil(t, reverted.TimeEntryID)
}

func TestClockInDateFollowsWallClock(t *testing.T) {
	fx := newFixture()
	// Half past eleven at night, five hours behind UTC: the calendar day the
	// employee sees is still March 2nd even though UTC has rolled over.
	fx.svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	}
	shiftID := fx.shiftRepo.add("emp-1", testDate, "22:00", "06:00")

	resp, err := fx.svc.ClockIn(authCtx(t, "emp-1"), timeentry.ClockInRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.ShiftID)
	assert.Equal(t, shiftID, *resp.ShiftID)
	assert.Equal(t, testDate, resp.Date)
	assert.Equal(t, string(timeentry.AttendanceLate), resp.AttendanceStatus)
}
