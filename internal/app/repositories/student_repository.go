package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/dberrors"
	"github.com/emre/uniportal/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent creates a new student detail row.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "student_no", "program", "semester", "cgpa").
		Values(student.UserID, student.StudentNo, student.Program, student.Semester, student.CGPA).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_no_key") {
			logger.Warn().Str("studentNo", student.StudentNo).Msg("Attempted to create student with duplicate student number")
			return apperrors.ErrStudentNoExists
		}
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("userID", student.UserID).Str("studentNo", student.StudentNo).Msg("Student created successfully")
	return nil
}

// GetByUserID retrieves a student by the owning user id.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.getWhere(ctx, squirrel.Eq{"user_id": userID})
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id})
}

func (r *StudentRepository) getWhere(ctx context.Context, pred squirrel.Eq) (*models.Student, error) {
	var student models.Student
	sql, args, err := r.sb.Select("id", "user_id", "student_no", "program", "semester", "cgpa").
		From("students").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.UserID, &student.StudentNo, &student.Program, &student.Semester, &student.CGPA)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetInfoByID retrieves the student card (joined with the user row).
func (r *StudentRepository) GetInfoByID(ctx context.Context, id int64) (*dto.StudentInfo, error) {
	var info dto.StudentInfo
	sql, args, err := r.sb.Select("s.id", "s.student_no", "u.full_name", "u.email", "s.program", "s.semester", "s.cgpa").
		From("students s").
		Join("users u ON s.user_id = u.id").
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student info SQL")
		return nil, fmt.Errorf("failed to build get student info query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&info.ID, &info.StudentNo, &info.FullName, &info.Email, &info.Program, &info.Semester, &info.CGPA)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student info row")
		return nil, fmt.Errorf("error retrieving student info: %w", err)
	}

	return &info, nil
}

// ListStudents lists student cards ordered by full name, paginated.
func (r *StudentRepository) ListStudents(ctx context.Context, offset uint64, limit int) ([]*dto.StudentInfo, error) {
	sql, args, err := r.sb.Select("s.id", "s.student_no", "u.full_name", "u.email", "s.program", "s.semester", "s.cgpa").
		From("students s").
		Join("users u ON s.user_id = u.id").
		OrderBy("u.full_name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*dto.StudentInfo
	for rows.Next() {
		var info dto.StudentInfo
		if err := rows.Scan(&info.ID, &info.StudentNo, &info.FullName, &info.Email, &info.Program, &info.Semester, &info.CGPA); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &info)
	}

	return students, rows.Err()
}

// CountStudents returns the total number of students.
func (r *StudentRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM students").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
