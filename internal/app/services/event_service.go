package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
)

const eventListLimit = 5

// EventService builds the events page and handles registration. Events
// are open to every role.
type EventService struct {
	eventRepo *repositories.EventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository, logger zerolog.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Events returns upcoming and past events plus the caller's
// registrations.
func (s *EventService) Events(ctx context.Context, userID int64) (*dto.EventsResponse, error) {
	upcoming, err := s.eventRepo.ListUpcoming(ctx, eventListLimit)
	if err != nil {
		return nil, err
	}

	past, err := s.eventRepo.ListPast(ctx, eventListLimit)
	if err != nil {
		return nil, err
	}

	registered, err := s.eventRepo.ListRegistered(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.EventsResponse{
		Upcoming:   upcoming,
		Past:       past,
		Registered: registered,
	}, nil
}

// Register signs the caller up for an event.
func (s *EventService) Register(ctx context.Context, userID, eventID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.CreateRegistration(ctx, userID, eventID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("userID", userID).
		Int64("eventID", eventID).
		Str("event", event.Name).
		Msg("User registered for event")
	return nil
}
