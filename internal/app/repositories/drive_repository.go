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

var driveColumns = []string{
	"id", "company_name", "position", "eligibility_criteria",
	"drive_date", "status", "min_cgpa", "description",
}

// DriveRepository handles placement drive database operations
type DriveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDriveRepository creates a new DriveRepository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDrive(row pgx.Row) (*models.PlacementDrive, error) {
	var d models.PlacementDrive
	err := row.Scan(&d.ID, &d.CompanyName, &d.Position, &d.EligibilityCriteria,
		&d.DriveDate, &d.Status, &d.MinCGPA, &d.Description)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID retrieves a drive by id.
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	sql, args, err := r.sb.Select(driveColumns...).
		From("placement_drives").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get drive SQL")
		return nil, fmt.Errorf("failed to build get drive query: %w", err)
	}

	drive, err := scanDrive(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		logger.Error().Err(err).Int64("driveID", id).Msg("Error scanning drive row")
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	return drive, nil
}

// ListEligible lists open drives whose CGPA floor the student clears
// and which they have not registered for yet.
func (r *DriveRepository) ListEligible(ctx context.Context, studentID int64, cgpa float64) ([]*models.PlacementDrive, error) {
	sql, args, err := r.sb.Select(prefixColumns("pd", driveColumns)...).
		From("placement_drives pd").
		Where(squirrel.Eq{"pd.status": models.DriveStatusOpen}).
		Where(squirrel.LtOrEq{"pd.min_cgpa": cgpa}).
		Where("pd.id NOT IN (SELECT drive_id FROM drive_registrations WHERE student_id = ?)", studentID).
		OrderBy("pd.drive_date ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building eligible drives SQL")
		return nil, fmt.Errorf("failed to build eligible drives query: %w", err)
	}

	return r.queryDrives(ctx, sql, args)
}

// CountEligible counts open drives the student clears and has not
// registered for, for the dashboard card.
func (r *DriveRepository) CountEligible(ctx context.Context, studentID int64, cgpa float64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("placement_drives pd").
		Where(squirrel.Eq{"pd.status": models.DriveStatusOpen}).
		Where(squirrel.LtOrEq{"pd.min_cgpa": cgpa}).
		Where("pd.id NOT IN (SELECT drive_id FROM drive_registrations WHERE student_id = ?)", studentID).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count eligible drives SQL")
		return 0, fmt.Errorf("failed to build count eligible query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error counting eligible drives")
		return 0, fmt.Errorf("error counting eligible drives: %w", err)
	}

	return count, nil
}

// ListRegistered lists the drives a student signed up for, with the
// registration timestamp and status.
func (r *DriveRepository) ListRegistered(ctx context.Context, studentID int64) ([]*dto.RegisteredDrive, error) {
	cols := append(prefixColumns("pd", driveColumns), "dr.registered_at", "dr.status")
	sql, args, err := r.sb.Select(cols...).
		From("placement_drives pd").
		Join("drive_registrations dr ON pd.id = dr.drive_id").
		Where(squirrel.Eq{"dr.student_id": studentID}).
		OrderBy("dr.registered_at DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building registered drives SQL")
		return nil, fmt.Errorf("failed to build registered drives query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing registered drives query")
		return nil, fmt.Errorf("error listing registered drives: %w", err)
	}
	defer rows.Close()

	var registered []*dto.RegisteredDrive
	for rows.Next() {
		var rd dto.RegisteredDrive
		err := rows.Scan(&rd.ID, &rd.CompanyName, &rd.Position, &rd.EligibilityCriteria,
			&rd.DriveDate, &rd.Status, &rd.MinCGPA, &rd.Description,
			&rd.RegisteredAt, &rd.RegistrationStatus)
		if err != nil {
			return nil, fmt.Errorf("error scanning registered drive row: %w", err)
		}
		registered = append(registered, &rd)
	}

	return registered, rows.Err()
}

// ListActive lists drives that are open or upcoming, soonest first.
func (r *DriveRepository) ListActive(ctx context.Context) ([]*models.PlacementDrive, error) {
	sql, args, err := r.sb.Select(driveColumns...).
		From("placement_drives").
		Where(squirrel.Eq{"status": []string{models.DriveStatusOpen, models.DriveStatusUpcoming}}).
		OrderBy("drive_date ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building active drives SQL")
		return nil, fmt.Errorf("failed to build active drives query: %w", err)
	}

	return r.queryDrives(ctx, sql, args)
}

// IsRegistered reports whether the student already has a registration
// row for the drive.
func (r *DriveRepository) IsRegistered(ctx context.Context, studentID, driveID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("drive_registrations").
		Where(squirrel.Eq{"student_id": studentID, "drive_id": driveID}).
		Suffix(")").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building drive registration exists SQL")
		return false, fmt.Errorf("failed to build registration exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking drive registration existence")
		return false, fmt.Errorf("error checking drive registration: %w", err)
	}

	return exists, nil
}

// CreateRegistration inserts a registration row. The unique pair
// constraint turns a concurrent double-submit into ErrAlreadyRegistered.
func (r *DriveRepository) CreateRegistration(ctx context.Context, studentID, driveID int64) error {
	sql, args, err := r.sb.Insert("drive_registrations").
		Columns("student_id", "drive_id", "status").
		Values(studentID, driveID, models.RegistrationStatusRegistered).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create drive registration SQL")
		return fmt.Errorf("failed to build create registration query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "drive_registrations_student_id_drive_id_key") {
			return apperrors.ErrAlreadyRegistered
		}
		logger.Error().Err(err).
			Int64("studentID", studentID).
			Int64("driveID", driveID).
			Msg("Error creating drive registration")
		return fmt.Errorf("error creating drive registration: %w", err)
	}

	logger.Info().Int64("studentID", studentID).Int64("driveID", driveID).Msg("Drive registration created")
	return nil
}

func (r *DriveRepository) queryDrives(ctx context.Context, sql string, args []interface{}) ([]*models.PlacementDrive, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing drives query")
		return nil, fmt.Errorf("error listing drives: %w", err)
	}
	defer rows.Close()

	var drives []*models.PlacementDrive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning drive row: %w", err)
		}
		drives = append(drives, drive)
	}

	return drives, rows.Err()
}

func prefixColumns(alias string, cols []string) []string {
	prefixed := make([]string, len(cols))
	for i, c := range cols {
		prefixed[i] = alias + "." + c
	}
	return prefixed
}
