package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/repositories"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/auth"
	"github.com/emre/uniportal/internal/pkg/validation"
)

// AdminService provisions accounts. There is no self-registration;
// every account is created here or by the seeder.
type AdminService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

func validateProvisionRequest(req *dto.ProvisionUserRequest) error {
	role := models.RoleType(req.Role)
	if !role.Valid() {
		return apperrors.NewValidationError("role must be student, faculty or admin")
	}
	if req.Email != "" && !validation.ValidEmail(req.Email) {
		return apperrors.NewValidationError("invalid email format")
	}

	switch role {
	case models.RoleStudent:
		if !validation.ValidStudentNo(req.StudentNo) {
			return apperrors.NewValidationError("student number must be 7 digits")
		}
		if strings.TrimSpace(req.Program) == "" {
			return apperrors.NewValidationError("program is required for students")
		}
		if req.Semester < 1 {
			return apperrors.NewValidationError("semester is required for students")
		}
	case models.RoleFaculty:
		if !validation.ValidFacultyNo(req.FacultyNo) {
			return apperrors.NewValidationError("faculty number must look like FAC2024001")
		}
		if strings.TrimSpace(req.Department) == "" {
			return apperrors.NewValidationError("department is required for faculty")
		}
	}
	return nil
}

// ProvisionUser creates an account plus its role detail row. The
// username and role-number unique constraints decide races.
func (s *AdminService) ProvisionUser(ctx context.Context, req *dto.ProvisionUserRequest) (*models.User, error) {
	if err := validateProvisionRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.RoleType(req.Role),
		FullName:     req.FullName,
		Email:        req.Email,
	}
	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	switch user.Role {
	case models.RoleStudent:
		student := &models.Student{
			UserID:    userID,
			StudentNo: req.StudentNo,
			Program:   req.Program,
			Semester:  req.Semester,
			CGPA:      req.CGPA,
		}
		if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
			return nil, err
		}
	case models.RoleFaculty:
		faculty := &models.Faculty{
			UserID:      userID,
			FacultyNo:   req.FacultyNo,
			Department:  req.Department,
			Designation: req.Designation,
		}
		if err := s.facultyRepo.CreateFaculty(ctx, faculty); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Int64("userID", userID).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("User provisioned")
	return user, nil
}
