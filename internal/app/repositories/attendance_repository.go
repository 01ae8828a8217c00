package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/pkg/logger"
)

// attendancePercentageExpr rounds attended/total to two decimals and
// yields 0 for subjects where no class has been held yet.
const attendancePercentageExpr = "COALESCE(ROUND(a.attended_classes::numeric * 100 / NULLIF(a.total_classes, 0), 2), 0)"

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListForStudent retrieves the per-subject attendance report for a
// student, highest percentage first.
func (r *AttendanceRepository) ListForStudent(ctx context.Context, studentID int64) ([]dto.SubjectAttendance, error) {
	sql, args, err := r.sb.Select(
		"s.name", "s.code", "a.total_classes", "a.attended_classes",
		attendancePercentageExpr+" AS percentage").
		From("attendance a").
		Join("subjects s ON a.subject_id = s.id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("percentage DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building attendance report SQL")
		return nil, fmt.Errorf("failed to build attendance report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing attendance report query")
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var report []dto.SubjectAttendance
	for rows.Next() {
		var row dto.SubjectAttendance
		if err := rows.Scan(&row.SubjectName, &row.SubjectCode, &row.TotalClasses, &row.AttendedClasses, &row.Percentage); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		report = append(report, row)
	}

	return report, rows.Err()
}

// SummaryForStudent aggregates subject count and average percentage for
// a student. Students with no attendance rows get a zeroed summary.
func (r *AttendanceRepository) SummaryForStudent(ctx context.Context, studentID int64) (*dto.AttendanceSummary, error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COALESCE(ROUND(AVG("+attendancePercentageExpr+"), 2), 0)").
		From("attendance a").
		Where(squirrel.Eq{"a.student_id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building attendance summary SQL")
		return nil, fmt.Errorf("failed to build attendance summary query: %w", err)
	}

	var summary dto.AttendanceSummary
	err = r.db.QueryRow(ctx, sql, args...).Scan(&summary.TotalSubjects, &summary.AverageAttendance)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error scanning attendance summary")
		return nil, fmt.Errorf("error summarizing attendance: %w", err)
	}

	return &summary, nil
}

// GetRoster lists every student together with their current counters
// for one subject. Students without an attendance row yet appear with
// zeroed counters.
func (r *AttendanceRepository) GetRoster(ctx context.Context, subjectID int64) ([]*dto.RosterEntry, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.student_no", "u.full_name", "s.program", "s.semester",
		"COALESCE(a.total_classes, 0)", "COALESCE(a.attended_classes, 0)").
		From("students s").
		Join("users u ON s.user_id = u.id").
		LeftJoin("attendance a ON s.id = a.student_id AND a.subject_id = ?", subjectID).
		OrderBy("u.full_name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building roster SQL")
		return nil, fmt.Errorf("failed to build roster query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing roster query")
		return nil, fmt.Errorf("error listing roster: %w", err)
	}
	defer rows.Close()

	var roster []*dto.RosterEntry
	for rows.Next() {
		var entry dto.RosterEntry
		if err := rows.Scan(&entry.StudentID, &entry.StudentNo, &entry.FullName, &entry.Program, &entry.Semester,
			&entry.TotalClasses, &entry.AttendedClasses); err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}
		roster = append(roster, &entry)
	}

	return roster, rows.Err()
}

// MarkDeltas returns the counter increments one held class applies to a
// student row: the class total always advances by one, the attended
// count only when the student was present.
func MarkDeltas(present bool) (totalDelta, attendedDelta int) {
	if present {
		return 1, 1
	}
	return 1, 0
}

// IncrementTx bumps the counters of an existing attendance row inside
// an open transaction. Returns false when no row exists for the pair.
func (r *AttendanceRepository) IncrementTx(ctx context.Context, tx pgx.Tx, studentID, subjectID int64, present bool) (bool, error) {
	totalDelta, attendedDelta := MarkDeltas(present)

	sql, args, err := r.sb.Update("attendance").
		Set("total_classes", squirrel.Expr("total_classes + ?", totalDelta)).
		Set("attended_classes", squirrel.Expr("attended_classes + ?", attendedDelta)).
		Where(squirrel.Eq{"student_id": studentID, "subject_id": subjectID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building attendance increment SQL")
		return false, fmt.Errorf("failed to build increment query: %w", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).
			Int64("studentID", studentID).
			Int64("subjectID", subjectID).
			Msg("Error incrementing attendance")
		return false, fmt.Errorf("error incrementing attendance: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// InsertTx creates the first attendance row for a student/subject pair
// inside an open transaction, counting the class being marked.
func (r *AttendanceRepository) InsertTx(ctx context.Context, tx pgx.Tx, studentID, subjectID int64, present bool) error {
	totalDelta, attendedDelta := MarkDeltas(present)

	sql, args, err := r.sb.Insert("attendance").
		Columns("student_id", "subject_id", "total_classes", "attended_classes").
		Values(studentID, subjectID, totalDelta, attendedDelta).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building attendance insert SQL")
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).
			Int64("studentID", studentID).
			Int64("subjectID", subjectID).
			Msg("Error inserting attendance row")
		return fmt.Errorf("error inserting attendance row: %w", err)
	}

	return nil
}
