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
	"github.com/emre/uniportal/internal/pkg/logger"
)

// AssignmentRepository handles assignment database operations
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *AssignmentRepository) selectWithSubject() squirrel.SelectBuilder {
	return r.sb.Select(
		"a.id", "a.subject_id", "a.title", "a.description", "a.due_date", "a.status",
		"s.name", "s.code").
		From("assignments a").
		Join("subjects s ON a.subject_id = s.id")
}

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var a models.Assignment
	err := row.Scan(&a.ID, &a.SubjectID, &a.Title, &a.Description, &a.DueDate, &a.Status,
		&a.SubjectName, &a.SubjectCode)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new assignment and returns it with its id set.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	sql, args, err := r.sb.Insert("assignments").
		Columns("subject_id", "title", "description", "due_date", "status").
		Values(assignment.SubjectID, assignment.Title, assignment.Description, assignment.DueDate, assignment.Status).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create assignment SQL")
		return fmt.Errorf("failed to build create assignment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&assignment.ID); err != nil {
		logger.Error().Err(err).Int64("subjectID", assignment.SubjectID).Msg("Error creating assignment")
		return fmt.Errorf("error creating assignment: %w", err)
	}

	logger.Info().Int64("assignmentID", assignment.ID).Str("title", assignment.Title).Msg("Assignment created")
	return nil
}

// GetByID retrieves one assignment with its subject name and code.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	sql, args, err := r.selectWithSubject().
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get assignment SQL")
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	assignment, err := scanAssignment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error scanning assignment row")
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return assignment, nil
}

// ListAll lists every assignment, newest due date first.
func (r *AssignmentRepository) ListAll(ctx context.Context) ([]*models.Assignment, error) {
	sql, args, err := r.selectWithSubject().
		OrderBy("a.due_date DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list assignments SQL")
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	return r.queryAssignments(ctx, sql, args)
}

// ListActive lists pending and upcoming assignments ordered by due
// date, soonest first. This is the student-facing view.
func (r *AssignmentRepository) ListActive(ctx context.Context) ([]*models.Assignment, error) {
	sql, args, err := r.selectWithSubject().
		Where(squirrel.Eq{"a.status": []string{
			string(models.AssignmentStatusPending),
			string(models.AssignmentStatusUpcoming),
		}}).
		OrderBy("a.due_date ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list active assignments SQL")
		return nil, fmt.Errorf("failed to build list active assignments query: %w", err)
	}

	return r.queryAssignments(ctx, sql, args)
}

// CountPending counts assignments still in pending status.
func (r *AssignmentRepository) CountPending(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("assignments").
		Where(squirrel.Eq{"status": string(models.AssignmentStatusPending)}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count pending assignments SQL")
		return 0, fmt.Errorf("failed to build count pending query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting pending assignments")
		return 0, fmt.Errorf("error counting pending assignments: %w", err)
	}

	return count, nil
}

// Update edits an assignment's title, description, due date and status.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	sql, args, err := r.sb.Update("assignments").
		Set("title", assignment.Title).
		Set("description", assignment.Description).
		Set("due_date", assignment.DueDate).
		Set("status", assignment.Status).
		Where(squirrel.Eq{"id": assignment.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update assignment SQL")
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", assignment.ID).Msg("Error updating assignment")
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	logger.Info().Int64("assignmentID", assignment.ID).Msg("Assignment updated")
	return nil
}

// Delete removes an assignment.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete assignment SQL")
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error deleting assignment")
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	logger.Info().Int64("assignmentID", id).Msg("Assignment deleted")
	return nil
}

func (r *AssignmentRepository) queryAssignments(ctx context.Context, sql string, args []interface{}) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing assignments query")
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}
