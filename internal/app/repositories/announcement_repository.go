package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/logger"
)

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List lists announcements, newest first, capped at limit.
func (r *AnnouncementRepository) List(ctx context.Context, limit uint64) ([]*models.Announcement, error) {
	query := r.sb.Select("id", "title", "content", "created_at").
		From("announcements").
		OrderBy("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list announcements SQL")
		return nil, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, &a)
	}

	return announcements, rows.Err()
}

// Create inserts an announcement and fills in its id and timestamp.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "content").
		Values(announcement.Title, announcement.Content).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create announcement SQL")
		return fmt.Errorf("failed to build create announcement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&announcement.ID, &announcement.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error creating announcement")
		return fmt.Errorf("error creating announcement: %w", err)
	}

	logger.Info().Int64("announcementID", announcement.ID).Str("title", announcement.Title).Msg("Announcement created")
	return nil
}

// Delete removes an announcement.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete announcement SQL")
		return fmt.Errorf("failed to build delete announcement query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error deleting announcement")
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	logger.Info().Int64("announcementID", id).Msg("Announcement deleted")
	return nil
}
