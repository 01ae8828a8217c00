package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/dberrors"
	"github.com/emre/uniportal/internal/pkg/logger"
)

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateFaculty creates a new faculty detail row.
func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Insert("faculty").
		Columns("user_id", "faculty_no", "department", "designation").
		Values(faculty.UserID, faculty.FacultyNo, faculty.Department, faculty.Designation).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_faculty_no_key") {
			logger.Warn().Str("facultyNo", faculty.FacultyNo).Msg("Attempted to create faculty with duplicate faculty number")
			return apperrors.ErrFacultyNoExists
		}
		logger.Error().Err(err).Int64("userID", faculty.UserID).Msg("Error executing create faculty query")
		return fmt.Errorf("error creating faculty: %w", err)
	}

	logger.Info().Int64("userID", faculty.UserID).Str("facultyNo", faculty.FacultyNo).Msg("Faculty created successfully")
	return nil
}

// GetByUserID retrieves a faculty member by the owning user id.
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID int64) (*models.Faculty, error) {
	var faculty models.Faculty
	sql, args, err := r.sb.Select("id", "user_id", "faculty_no", "department", "designation").
		From("faculty").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&faculty.ID, &faculty.UserID, &faculty.FacultyNo, &faculty.Department, &faculty.Designation)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return &faculty, nil
}
