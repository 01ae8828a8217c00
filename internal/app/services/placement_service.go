package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
	"github.com/emre/uniportal/internal/pkg/apperrors"
)

const recentCompanyLimit = 10

// PlacementService builds the student placement portal and handles
// drive registration.
type PlacementService struct {
	studentRepo *repositories.StudentRepository
	companyRepo *repositories.CompanyRepository
	driveRepo   *repositories.DriveRepository
	logger      zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(
	studentRepo *repositories.StudentRepository,
	companyRepo *repositories.CompanyRepository,
	driveRepo *repositories.DriveRepository,
	logger zerolog.Logger,
) *PlacementService {
	return &PlacementService{
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		driveRepo:   driveRepo,
		logger:      logger,
	}
}

// EligibleFor reports whether a student with the given CGPA may
// register for the drive: it must be open and the CGPA floor cleared.
func EligibleFor(drive *models.PlacementDrive, cgpa float64) bool {
	return drive.Status == models.DriveStatusOpen && drive.MinCGPA <= cgpa
}

// Overview assembles the placement portal: recent company visits,
// drives the student can register for, drives already registered, and
// all open or upcoming drives.
func (s *PlacementService) Overview(ctx context.Context, userID int64) (*dto.PlacementsResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info, err := s.studentRepo.GetInfoByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.ListRecent(ctx, recentCompanyLimit)
	if err != nil {
		return nil, err
	}

	eligible, err := s.driveRepo.ListEligible(ctx, student.ID, student.CGPA)
	if err != nil {
		return nil, err
	}

	registered, err := s.driveRepo.ListRegistered(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	all, err := s.driveRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PlacementsResponse{
		Student:          info,
		Companies:        companies,
		EligibleDrives:   eligible,
		RegisteredDrives: registered,
		AllDrives:        all,
	}, nil
}

// RegisterForDrive registers a student for a drive after re-checking
// eligibility. The unique pair constraint is the final word on
// concurrent double-submission.
func (s *PlacementService) RegisterForDrive(ctx context.Context, userID, driveID int64) error {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return err
	}

	if !EligibleFor(drive, student.CGPA) {
		return apperrors.ErrNotEligible
	}

	registered, err := s.driveRepo.IsRegistered(ctx, student.ID, driveID)
	if err != nil {
		return err
	}
	if registered {
		return apperrors.ErrAlreadyRegistered
	}

	if err := s.driveRepo.CreateRegistration(ctx, student.ID, driveID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Int64("driveID", driveID).
		Str("company", drive.CompanyName).
		Msg("Student registered for drive")
	return nil
}
