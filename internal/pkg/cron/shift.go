package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
)

// MarkMissedShiftsJob flips Scheduled shifts dated before today with no
// linked time entry to Missed. Run daily (or more often; the update is
// idempotent).
func MarkMissedShiftsJob(shiftRepo shift.ShiftAssignmentRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		now := time.Now()
		cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		marked, err := shiftRepo.MarkMissedBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("failed to mark missed shifts: %w", err)
		}
		if marked > 0 {
			slog.Info("Marked missed shifts", "count", marked, "cutoff", cutoff.Format("2006-01-02"))
		}
		return nil
	}
}
