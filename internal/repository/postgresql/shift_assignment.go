package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/shift"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/database"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.ShiftAssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.date, s.start_time, s.end_time,
	s.location, s.work_type, s.break_duration, s.status, s.assigned_by, s.notes,
	s.swap_requested_by, s.swap_requested_with, s.swap_status, s.swap_reason,
	s.swap_requested_at, s.swap_resolved_at,
	s.actual_start_time, s.actual_end_time, s.time_entry_id,
	s.created_at, s.updated_at
`

func scanShift(row pgx.Row) (shift.ShiftAssignment, error) {
	var s shift.ShiftAssignment
	var swapRequestedBy, swapRequestedWith, swapStatus, swapReason *string
	var swapRequestedAt, swapResolvedAt *time.Time

	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime,
		&s.Location, &s.WorkType, &s.BreakDuration, &s.Status, &s.AssignedBy, &s.Notes,
		&swapRequestedBy, &swapRequestedWith, &swapStatus, &swapReason,
		&swapRequestedAt, &swapResolvedAt,
		&s.ActualStartTime, &s.ActualEndTime, &s.TimeEntryID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftAssignment{}, err
	}

	if swapRequestedBy != nil && swapRequestedWith != nil && swapStatus != nil && swapRequestedAt != nil {
		s.SwapRequest = &shift.SwapRequest{
			RequestedBy:   *swapRequestedBy,
			RequestedWith: *swapRequestedWith,
			Status:        shift.SwapStatus(*swapStatus),
			Reason:        swapReason,
			RequestedAt:   *swapRequestedAt,
			ResolvedAt:    swapResolvedAt,
		}
	}

	return s, nil
}

func swapColumns(s shift.ShiftAssignment) (by, with, status, reason *string, requestedAt, resolvedAt *time.Time) {
	if s.SwapRequest == nil {
		return nil, nil, nil, nil, nil, nil
	}
	st := string(s.SwapRequest.Status)
	return &s.SwapRequest.RequestedBy, &s.SwapRequest.RequestedWith, &st,
		s.SwapRequest.Reason, &s.SwapRequest.RequestedAt, s.SwapRequest.ResolvedAt
}

// Create implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) Create(ctx context.Context, assignment shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (
			id, employee_id, date, start_time, end_time,
			location, work_type, break_duration, status, assigned_by, notes
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.EmployeeID, assignment.Date, assignment.StartTime, assignment.EndTime,
		assignment.Location, assignment.WorkType, assignment.BreakDuration,
		assignment.Status, assignment.AssignedBy, assignment.Notes,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return shift.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return assignment, nil
}

// GetByID implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) GetByID(ctx context.Context, id string) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments s
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftAssignment{}, shift.ErrShiftNotFound
		}
		return shift.ShiftAssignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return s, nil
}

// GetActiveByEmployeeAndDate implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_assignments s
		WHERE s.employee_id = $1
		  AND s.date = $2::date
		  AND s.status NOT IN ('Cancelled', 'Swapped')
		ORDER BY s.start_time
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.ShiftAssignment
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift assignments: %w", err)
	}

	return assignments, nil
}

// List implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftAssignment, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND s.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND s.date >= $%d::date", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND s.date <= $%d::date", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND s.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Location != nil {
		where += fmt.Sprintf(" AND s.location = $%d", argPos)
		args = append(args, *filter.Location)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM shift_assignments s " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shift assignments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+shiftColumns+`, e.first_name || ' ' || e.last_name AS employee_name
		FROM shift_assignments s
		JOIN employees e ON e.id = s.employee_id
		%s
		ORDER BY s.date DESC, s.start_time
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.ShiftAssignment
	for rows.Next() {
		var s shift.ShiftAssignment
		var swapRequestedBy, swapRequestedWith, swapStatus, swapReason *string
		var swapRequestedAt, swapResolvedAt *time.Time

		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime,
			&s.Location, &s.WorkType, &s.BreakDuration, &s.Status, &s.AssignedBy, &s.Notes,
			&swapRequestedBy, &swapRequestedWith, &swapStatus, &swapReason,
			&swapRequestedAt, &swapResolvedAt,
			&s.ActualStartTime, &s.ActualEndTime, &s.TimeEntryID,
			&s.CreatedAt, &s.UpdatedAt,
			&s.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		if swapRequestedBy != nil && swapRequestedWith != nil && swapStatus != nil && swapRequestedAt != nil {
			s.SwapRequest = &shift.SwapRequest{
				RequestedBy:   *swapRequestedBy,
				RequestedWith: *swapRequestedWith,
				Status:        shift.SwapStatus(*swapStatus),
				Reason:        swapReason,
				RequestedAt:   *swapRequestedAt,
				ResolvedAt:    swapResolvedAt,
			}
		}
		assignments = append(assignments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate shift assignments: %w", err)
	}

	return assignments, total, nil
}

// Update implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) Update(ctx context.Context, assignment shift.ShiftAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET employee_id = $2, date = $3, start_time = $4, end_time = $5,
		    location = $6, work_type = $7, break_duration = $8, status = $9,
		    notes = $10,
		    swap_requested_by = $11, swap_requested_with = $12, swap_status = $13,
		    swap_reason = $14, swap_requested_at = $15, swap_resolved_at = $16,
		    actual_start_time = $17, actual_end_time = $18, time_entry_id = $19,
		    updated_at = NOW()
		WHERE id = $1
	`

	swapBy, swapWith, swapStatus, swapReason, swapRequestedAt, swapResolvedAt := swapColumns(assignment)

	tag, err := q.Exec(ctx, query,
		assignment.ID, assignment.EmployeeID, assignment.Date,
		assignment.StartTime, assignment.EndTime,
		assignment.Location, assignment.WorkType, assignment.BreakDuration,
		assignment.Status, assignment.Notes,
		swapBy, swapWith, swapStatus, swapReason, swapRequestedAt, swapResolvedAt,
		assignment.ActualStartTime, assignment.ActualEndTime, assignment.TimeEntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// MarkMissedBefore implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) MarkMissedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET status = 'Missed', updated_at = NOW()
		WHERE status = 'Scheduled'
		  AND date < $1::date
		  AND time_entry_id IS NULL
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to mark missed shifts: %w", err)
	}

	return tag.RowsAffected(), nil
}
