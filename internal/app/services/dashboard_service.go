package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
)

// DashboardService assembles the role-specific landing summaries.
type DashboardService struct {
	studentRepo    *repositories.StudentRepository
	facultyRepo    *repositories.FacultyRepository
	attendanceRepo *repositories.AttendanceRepository
	assignmentRepo *repositories.AssignmentRepository
	driveRepo      *repositories.DriveRepository
	eventRepo      *repositories.EventRepository
	logger         zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	attendanceRepo *repositories.AttendanceRepository,
	assignmentRepo *repositories.AssignmentRepository,
	driveRepo *repositories.DriveRepository,
	eventRepo *repositories.EventRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		studentRepo:    studentRepo,
		facultyRepo:    facultyRepo,
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
		driveRepo:      driveRepo,
		eventRepo:      eventRepo,
		logger:         logger,
	}
}

// StudentDashboard builds the student summary card counts.
func (s *DashboardService) StudentDashboard(ctx context.Context, userID int64) (*dto.StudentDashboard, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info, err := s.studentRepo.GetInfoByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	summary, err := s.attendanceRepo.SummaryForStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	pending, err := s.assignmentRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	eligible, err := s.driveRepo.CountEligible(ctx, student.ID, student.CGPA)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.eventRepo.CountUpcoming(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboard{
		Student:            info,
		TotalSubjects:      summary.TotalSubjects,
		AverageAttendance:  summary.AverageAttendance,
		PendingAssignments: pending,
		EligibleDrives:     eligible,
		UpcomingEvents:     upcoming,
	}, nil
}

// FacultyDashboard builds the faculty landing card.
func (s *DashboardService) FacultyDashboard(ctx context.Context, userID int64, fullName string) (*dto.FacultyDashboard, error) {
	faculty, err := s.facultyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.FacultyDashboard{
		FacultyNo:   faculty.FacultyNo,
		Department:  faculty.Department,
		Designation: faculty.Designation,
		FullName:    fullName,
	}, nil
}
