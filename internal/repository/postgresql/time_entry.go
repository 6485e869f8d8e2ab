package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/timeentry"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	t.id, t.employee_id, t.date, t.clock_in, t.clock_out, t.breaks,
	t.hours_worked, t.status, t.shift_id, t.attendance_status,
	t.scheduled_hours, t.variance,
	t.clock_in_latitude, t.clock_in_longitude,
	t.clock_out_latitude, t.clock_out_longitude,
	t.created_at, t.updated_at
`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var t timeentry.TimeEntry
	var breaksJSON []byte

	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Date, &t.ClockIn, &t.ClockOut, &breaksJSON,
		&t.HoursWorked, &t.Status, &t.ShiftID, &t.AttendanceStatus,
		&t.ScheduledHours, &t.Variance,
		&t.ClockInLatitude, &t.ClockInLongitude,
		&t.ClockOutLatitude, &t.ClockOutLongitude,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	if len(breaksJSON) > 0 {
		if err := json.Unmarshal(breaksJSON, &t.Breaks); err != nil {
			return timeentry.TimeEntry{}, fmt.Errorf("failed to decode breaks: %w", err)
		}
	}

	return t, nil
}

func marshalBreaks(breaks []timeentry.Break) ([]byte, error) {
	if breaks == nil {
		breaks = []timeentry.Break{}
	}
	data, err := json.Marshal(breaks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode breaks: %w", err)
	}
	return data, nil
}

// Create implements timeentry.TimeEntryRepository. A unique partial index on
// (employee_id) WHERE status IN ('clocked_in', 'on_break') guarantees at most
// one active session per employee; concurrent clock-ins lose the race here
// instead of producing duplicates.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	breaksJSON, err := marshalBreaks(entry.Breaks)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	query := `
		INSERT INTO time_entries (
			id, employee_id, date, clock_in, clock_out, breaks,
			hours_worked, status, shift_id, attendance_status,
			scheduled_hours, variance,
			clock_in_latitude, clock_in_longitude
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Date, entry.ClockIn, entry.ClockOut, breaksJSON,
		entry.HoursWorked, entry.Status, entry.ShiftID, entry.AttendanceStatus,
		entry.ScheduledHours, entry.Variance,
		entry.ClockInLatitude, entry.ClockInLongitude,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timeentry.TimeEntry{}, timeentry.ErrActiveEntryExists
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.id = $1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

// GetActiveByEmployee implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetActiveByEmployee(ctx context.Context, employeeID string) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.employee_id = $1
		  AND t.status IN ('clocked_in', 'on_break')
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active time entry: %w", err)
	}

	return &entry, nil
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND t.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Date != nil && *filter.Date != "" {
		where += fmt.Sprintf(" AND t.date = $%d::date", argPos)
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND t.date >= $%d::date", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND t.date <= $%d::date", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND t.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.AttendanceStatus != nil {
		where += fmt.Sprintf(" AND t.attendance_status = $%d", argPos)
		args = append(args, *filter.AttendanceStatus)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM time_entries t " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+timeEntryColumns+`, e.first_name || ' ' || e.last_name AS employee_name
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id
		%s
		ORDER BY t.date DESC, t.clock_in DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var t timeentry.TimeEntry
		var breaksJSON []byte

		err := rows.Scan(
			&t.ID, &t.EmployeeID, &t.Date, &t.ClockIn, &t.ClockOut, &breaksJSON,
			&t.HoursWorked, &t.Status, &t.ShiftID, &t.AttendanceStatus,
			&t.ScheduledHours, &t.Variance,
			&t.ClockInLatitude, &t.ClockInLongitude,
			&t.ClockOutLatitude, &t.ClockOutLongitude,
			&t.CreatedAt, &t.UpdatedAt,
			&t.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		if len(breaksJSON) > 0 {
			if err := json.Unmarshal(breaksJSON, &t.Breaks); err != nil {
				return nil, 0, fmt.Errorf("failed to decode breaks: %w", err)
			}
		}
		entries = append(entries, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	return entries, total, nil
}

// Update implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	breaksJSON, err := marshalBreaks(entry.Breaks)
	if err != nil {
		return err
	}

	query := `
		UPDATE time_entries
		SET date = $2, clock_in = $3, clock_out = $4, breaks = $5,
		    hours_worked = $6, status = $7, shift_id = $8,
		    attendance_status = $9, scheduled_hours = $10, variance = $11,
		    clock_out_latitude = $12, clock_out_longitude = $13,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID, entry.Date, entry.ClockIn, entry.ClockOut, breaksJSON,
		entry.HoursWorked, entry.Status, entry.ShiftID,
		entry.AttendanceStatus, entry.ScheduledHours, entry.Variance,
		entry.ClockOutLatitude, entry.ClockOutLongitude,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

// Delete implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}
