package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
	"github.com/emre/uniportal/internal/pkg/helpers"
)

// ReportService builds the faculty report views.
type ReportService struct {
	studentRepo    *repositories.StudentRepository
	attendanceRepo *repositories.AttendanceRepository
	assignmentRepo *repositories.AssignmentRepository
	logger         zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	studentRepo *repositories.StudentRepository,
	attendanceRepo *repositories.AttendanceRepository,
	assignmentRepo *repositories.AssignmentRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// ListStudents pages through all students, alphabetically by name.
func (s *ReportService) ListStudents(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.ListStudents(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.studentRepo.CountStudents(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      students,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// StudentReport builds the drill-down view for one student: their
// card, per-subject attendance and the active assignments.
func (s *ReportService) StudentReport(ctx context.Context, studentID int64) (*dto.StudentReport, error) {
	info, err := s.studentRepo.GetInfoByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.attendanceRepo.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StudentReport{
		Student:     info,
		Attendance:  attendance,
		Assignments: assignments,
	}, nil
}
