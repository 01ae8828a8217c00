package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
	"github.com/emre/uniportal/internal/db"
	"github.com/emre/uniportal/internal/pkg/apperrors"
)

// AttendanceService handles the faculty class list, roster and the
// attendance-marking workflow.
type AttendanceService struct {
	pool           *pgxpool.Pool
	subjectRepo    *repositories.SubjectRepository
	attendanceRepo *repositories.AttendanceRepository
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	pool *pgxpool.Pool,
	subjectRepo *repositories.SubjectRepository,
	attendanceRepo *repositories.AttendanceRepository,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		pool:           pool,
		subjectRepo:    subjectRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Classes lists subjects with enrolled-student counts.
func (s *AttendanceService) Classes(ctx context.Context) ([]*dto.ClassInfo, error) {
	return s.subjectRepo.ListWithEnrollment(ctx)
}

// Roster returns the marking form for one subject: every student with
// their current counters.
func (s *AttendanceService) Roster(ctx context.Context, subjectID int64) ([]*dto.RosterEntry, error) {
	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetRoster(ctx, subjectID)
}

// BuildMarkingPlan decides presence for every roster student from the
// submitted present list. A present ID not on the roster is a
// validation error so typos cannot invent attendance rows.
func BuildMarkingPlan(roster []*dto.RosterEntry, presentIDs []int64) (map[int64]bool, error) {
	onRoster := make(map[int64]bool, len(roster))
	plan := make(map[int64]bool, len(roster))
	for _, entry := range roster {
		onRoster[entry.StudentID] = true
		plan[entry.StudentID] = false
	}

	for _, id := range presentIDs {
		if !onRoster[id] {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("student %d is not on the roster", id))
		}
		plan[id] = true
	}

	return plan, nil
}

// MarkClass records one held class for a subject: every roster student
// gets total+1, present students additionally get attended+1. All
// updates commit or roll back together.
func (s *AttendanceService) MarkClass(ctx context.Context, req *dto.MarkAttendanceRequest) (int, error) {
	if _, err := s.subjectRepo.GetByID(ctx, req.SubjectID); err != nil {
		return 0, err
	}

	roster, err := s.attendanceRepo.GetRoster(ctx, req.SubjectID)
	if err != nil {
		return 0, err
	}
	if len(roster) == 0 {
		return 0, apperrors.NewValidationError("no students on the roster")
	}

	plan, err := BuildMarkingPlan(roster, req.PresentStudentIDs)
	if err != nil {
		return 0, err
	}

	err = db.WithTransaction(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		for _, entry := range roster {
			present := plan[entry.StudentID]
			updated, err := s.attendanceRepo.IncrementTx(txCtx, tx, entry.StudentID, req.SubjectID, present)
			if err != nil {
				return err
			}
			if !updated {
				if err := s.attendanceRepo.InsertTx(txCtx, tx, entry.StudentID, req.SubjectID, present); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("subjectID", req.SubjectID).
		Int("rosterSize", len(roster)).
		Int("present", len(req.PresentStudentIDs)).
		Msg("Attendance marked")
	return len(roster), nil
}
