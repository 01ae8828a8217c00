package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
)

// AcademicsService builds the student academics page.
type AcademicsService struct {
	studentRepo    *repositories.StudentRepository
	attendanceRepo *repositories.AttendanceRepository
	assignmentRepo *repositories.AssignmentRepository
	logger         zerolog.Logger
}

// NewAcademicsService creates a new AcademicsService
func NewAcademicsService(
	studentRepo *repositories.StudentRepository,
	attendanceRepo *repositories.AttendanceRepository,
	assignmentRepo *repositories.AssignmentRepository,
	logger zerolog.Logger,
) *AcademicsService {
	return &AcademicsService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Academics returns the per-subject attendance report, highest
// percentage first, plus active assignments.
func (s *AcademicsService) Academics(ctx context.Context, userID int64) (*dto.AcademicsResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info, err := s.studentRepo.GetInfoByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.attendanceRepo.ListForStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AcademicsResponse{
		Student:     info,
		Attendance:  attendance,
		Assignments: assignments,
	}, nil
}
