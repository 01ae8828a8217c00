package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/helpers"
)

// AssignmentService handles faculty assignment management.
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	subjectRepo    *repositories.SubjectRepository
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	subjectRepo *repositories.SubjectRepository,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		subjectRepo:    subjectRepo,
		logger:         logger,
	}
}

// List lists every assignment with its subject, newest due date first.
func (s *AssignmentService) List(ctx context.Context) ([]*models.Assignment, error) {
	return s.assignmentRepo.ListAll(ctx)
}

// Create validates the subject and due date and stores a new
// assignment in pending status.
func (s *AssignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if _, err := s.subjectRepo.GetByID(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("due date must be in YYYY-MM-DD format")
	}

	assignment := &models.Assignment{
		SubjectID:   req.SubjectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      models.AssignmentStatusPending,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return s.assignmentRepo.GetByID(ctx, assignment.ID)
}

// Update edits an assignment's title, description, due date and status.
func (s *AssignmentService) Update(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("due date must be in YYYY-MM-DD format")
	}

	switch req.Status {
	case models.AssignmentStatusPending, models.AssignmentStatusUpcoming, models.AssignmentStatusCompleted:
	default:
		return nil, apperrors.NewValidationError("status must be pending, upcoming or completed")
	}

	assignment.Title = req.Title
	assignment.Description = req.Description
	assignment.DueDate = dueDate
	assignment.Status = req.Status
	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return s.assignmentRepo.GetByID(ctx, id)
}

// Delete removes an assignment.
func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}
