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

var eventColumns = []string{
	"id", "event_name", "event_type", "event_date",
	"location", "description", "organizer",
}

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.Date, &e.Location, &e.Description, &e.Organizer)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByID retrieves an event by id.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get event SQL")
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// ListUpcoming lists events dated today or later, soonest first.
func (r *EventRepository) ListUpcoming(ctx context.Context, limit uint64) ([]*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where("event_date >= CURRENT_DATE").
		OrderBy("event_date ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building upcoming events SQL")
		return nil, fmt.Errorf("failed to build upcoming events query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// ListPast lists events already held, most recent first.
func (r *EventRepository) ListPast(ctx context.Context, limit uint64) ([]*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where("event_date < CURRENT_DATE").
		OrderBy("event_date DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building past events SQL")
		return nil, fmt.Errorf("failed to build past events query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// CountUpcoming counts events dated today or later.
func (r *EventRepository) CountUpcoming(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("events").
		Where("event_date >= CURRENT_DATE").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count upcoming events SQL")
		return 0, fmt.Errorf("failed to build count upcoming query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting upcoming events")
		return 0, fmt.Errorf("error counting upcoming events: %w", err)
	}

	return count, nil
}

// ListRegistered lists the events a user signed up for.
func (r *EventRepository) ListRegistered(ctx context.Context, userID int64) ([]*dto.RegisteredEvent, error) {
	cols := append(prefixColumns("e", eventColumns), "er.registered_at")
	sql, args, err := r.sb.Select(cols...).
		From("events e").
		Join("event_registrations er ON e.id = er.event_id").
		Where(squirrel.Eq{"er.user_id": userID}).
		OrderBy("e.event_date ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building registered events SQL")
		return nil, fmt.Errorf("failed to build registered events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing registered events query")
		return nil, fmt.Errorf("error listing registered events: %w", err)
	}
	defer rows.Close()

	var registered []*dto.RegisteredEvent
	for rows.Next() {
		var re dto.RegisteredEvent
		err := rows.Scan(&re.ID, &re.Name, &re.Type, &re.Date, &re.Location, &re.Description, &re.Organizer,
			&re.RegisteredAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning registered event row: %w", err)
		}
		registered = append(registered, &re)
	}

	return registered, rows.Err()
}

// CreateRegistration inserts an event registration. The unique pair
// constraint turns a concurrent double-submit into ErrAlreadyRegistered.
func (r *EventRepository) CreateRegistration(ctx context.Context, userID, eventID int64) error {
	sql, args, err := r.sb.Insert("event_registrations").
		Columns("user_id", "event_id", "status").
		Values(userID, eventID, models.RegistrationStatusRegistered).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create event registration SQL")
		return fmt.Errorf("failed to build create registration query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_registrations_user_id_event_id_key") {
			return apperrors.ErrAlreadyRegistered
		}
		logger.Error().Err(err).
			Int64("userID", userID).
			Int64("eventID", eventID).
			Msg("Error creating event registration")
		return fmt.Errorf("error creating event registration: %w", err)
	}

	logger.Info().Int64("userID", userID).Int64("eventID", eventID).Msg("Event registration created")
	return nil
}

func (r *EventRepository) queryEvents(ctx context.Context, sql string, args []interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing events query")
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
