package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
)

const announcementListLimit = 20

// AnnouncementService handles administrative broadcasts.
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

// List lists recent announcements, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.List(ctx, announcementListLimit)
}

// Create stores a new announcement.
func (s *AnnouncementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.announcementRepo.Delete(ctx, id)
}
