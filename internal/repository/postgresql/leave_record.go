package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/domain/leave"
	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/database"
)

type leaveRecordRepository struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.LeaveRecordRepository {
	return &leaveRecordRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.type, l.start_date, l.end_date,
	l.status, l.reason, l.resolved_by, l.created_at, l.updated_at
`

func scanLeave(row pgx.Row) (leave.LeaveRecord, error) {
	var l leave.LeaveRecord
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate,
		&l.Status, &l.Reason, &l.ResolvedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRecordRepository.
func (r *leaveRecordRepository) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_records (id, employee_id, type, start_date, end_date, status, reason)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Type, record.StartDate, record.EndDate,
		record.Status, record.Reason,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return record, nil
}

// GetByID implements leave.LeaveRecordRepository.
func (r *leaveRecordRepository) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records l
		WHERE l.id = $1
	`

	record, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRecord{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRecord{}, fmt.Errorf("failed to get leave record: %w", err)
	}

	return record, nil
}

// FindApprovedLeave implements leave.LeaveRecordRepository.
func (r *leaveRecordRepository) FindApprovedLeave(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records l
		WHERE l.employee_id = $1
		  AND l.status = 'approved'
		  AND $2::date BETWEEN l.start_date AND l.end_date
		LIMIT 1
	`

	record, err := scanLeave(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find approved leave: %w", err)
	}

	return &record, nil
}

// List implements leave.LeaveRecordRepository.
func (r *leaveRecordRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND l.end_date >= $%d::date", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND l.start_date <= $%d::date", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_records l " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+leaveColumns+`, e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_records l
		JOIN employees e ON e.id = l.employee_id
		%s
		ORDER BY l.start_date DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var l leave.LeaveRecord
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate,
			&l.Status, &l.Reason, &l.ResolvedBy, &l.CreatedAt, &l.UpdatedAt,
			&l.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave records: %w", err)
	}

	return records, total, nil
}

// Update implements leave.LeaveRecordRepository.
func (r *leaveRecordRepository) Update(ctx context.Context, record leave.LeaveRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_records
		SET type = $2, start_date = $3, end_date = $4, status = $5,
		    reason = $6, resolved_by = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.Type, record.StartDate, record.EndDate,
		record.Status, record.Reason, record.ResolvedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
