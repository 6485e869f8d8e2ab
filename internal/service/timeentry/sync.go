package timeentry

import (
	"context"
	"log/slog"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/timeentry"
)

// shiftSynchronizer keeps the linked shift assignment's status in lockstep
// with clock events. It is the only writer of shift status on this path. All
// methods are best-effort: the time entry is already persisted when they
// run, so a missing or stale shift is logged and skipped rather than failing
// the clock event. Each transition carries a precondition on the loaded
// shift; a shift that has moved on (completed, or linked to a different
// entry) is left untouched.
type shiftSynchronizer struct {
	shiftRepo shift.ShiftAssignmentRepository
}

func (s *shiftSynchronizer) onClockIn(ctx context.Context, entry timeentry.TimeEntry) {
	// Only a Scheduled shift picks up a new entry. A second entry matched to
	// an already worked shift (split-shift re-clock-in) must not overwrite
	// the actuals or steal the link.
	s.transition(ctx, entry, func(a shift.ShiftAssignment) bool {
		return a.Status == shift.StatusScheduled
	}, func(a *shift.ShiftAssignment) {
		a.Status = shift.StatusInProgress
		a.ActualStartTime = &entry.ClockIn
		a.TimeEntryID = &entry.ID
	})
}

func (s *shiftSynchronizer) onClockOut(ctx context.Context, entry timeentry.TimeEntry) {
	s.transition(ctx, entry, linkedTo(entry), func(a *shift.ShiftAssignment) {
		a.Status = shift.StatusCompleted
		a.ActualEndTime = entry.ClockOut
	})
}

func (s *shiftSynchronizer) onBreakStart(ctx context.Context, entry timeentry.TimeEntry) {
	s.transition(ctx, entry, linkedTo(entry), func(a *shift.ShiftAssignment) {
		a.Status = shift.StatusOnBreak
	})
}

func (s *shiftSynchronizer) onBreakEnd(ctx context.Context, entry timeentry.TimeEntry) {
	s.transition(ctx, entry, linkedTo(entry), func(a *shift.ShiftAssignment) {
		a.Status = shift.StatusInProgress
	})
}

// linkedTo guards the transitions that act on an existing link: they only
// apply while the shift's back-reference still points at this entry.
func linkedTo(entry timeentry.TimeEntry) func(shift.ShiftAssignment) bool {
	return func(a shift.ShiftAssignment) bool {
		return a.TimeEntryID != nil && *a.TimeEntryID == entry.ID
	}
}

// onDelete reverts the shift to its pre-clock-in state when the entry is
// removed, clearing everything the other transitions set. The revert only
// applies while the shift is still linked to the deleted entry.
func (s *shiftSynchronizer) onDelete(ctx context.Context, entry timeentry.TimeEntry) {
	s.transition(ctx, entry, linkedTo(entry), func(a *shift.ShiftAssignment) {
		a.Status = shift.StatusScheduled
		a.ActualStartTime = nil
		a.ActualEndTime = nil
		a.TimeEntryID = nil
	})
}

func (s *shiftSynchronizer) transition(ctx context.Context, entry timeentry.TimeEntry, ok func(shift.ShiftAssignment) bool, apply func(*shift.ShiftAssignment)) {
	if entry.ShiftID == nil {
		return
	}

	assignment, err := s.shiftRepo.GetByID(ctx, *entry.ShiftID)
	if err != nil {
		slog.Error("Failed to load shift for status sync",
			"shift_id", *entry.ShiftID, "time_entry_id", entry.ID, "error", err)
		return
	}

	if !ok(assignment) {
		slog.Warn("Skipped shift status sync, shift has moved on",
			"shift_id", assignment.ID, "time_entry_id", entry.ID,
			"status", assignment.Status)
		return
	}

	apply(&assignment)

	if err := s.shiftRepo.Update(ctx, assignment); err != nil {
		slog.Error("Failed to sync shift status",
			"shift_id", assignment.ID, "time_entry_id", entry.ID,
			"status", assignment.Status, "error", err)
	}
}
