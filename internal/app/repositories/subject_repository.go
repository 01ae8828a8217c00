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
	"github.com/emre/uniportal/internal/pkg/logger"
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves a subject by id.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	var subject models.Subject
	sql, args, err := r.sb.Select("id", "code", "name", "credits").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get subject SQL")
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.Code, &subject.Name, &subject.Credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// ListAll lists all subjects ordered by code.
func (r *SubjectRepository) ListAll(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "credits").
		From("subjects").
		OrderBy("code ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list subjects SQL")
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list subjects query")
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Credits); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, &s)
	}

	return subjects, rows.Err()
}

// ListWithEnrollment lists subjects with the count of students holding
// an attendance row for them.
func (r *SubjectRepository) ListWithEnrollment(ctx context.Context) ([]*dto.ClassInfo, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.code", "s.name", "s.credits",
		"COUNT(DISTINCT a.student_id) AS student_count").
		From("subjects s").
		LeftJoin("attendance a ON s.id = a.subject_id").
		GroupBy("s.id", "s.code", "s.name", "s.credits").
		OrderBy("s.code ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list classes SQL")
		return nil, fmt.Errorf("failed to build list classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list classes query")
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	var classes []*dto.ClassInfo
	for rows.Next() {
		var c dto.ClassInfo
		if err := rows.Scan(&c.ID, &c.SubjectCode, &c.SubjectName, &c.Credits, &c.StudentCount); err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, &c)
	}

	return classes, rows.Err()
}
