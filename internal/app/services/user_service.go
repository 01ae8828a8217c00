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

// UserService handles profile viewing and self-service updates.
type UserService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	facultyRepo *repositories.FacultyRepository
	tokenRepo   *repositories.TokenRepository
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	facultyRepo *repositories.FacultyRepository,
	tokenRepo *repositories.TokenRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		tokenRepo:   tokenRepo,
		logger:      logger,
	}
}

// GetProfile assembles the profile view, joining in the role-specific
// detail row for students and faculty.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		FullName: user.FullName,
		Email:    user.Email,
	}

	switch user.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("student detail lookup failed: %w", err)
		}
		profile.StudentNo = &student.StudentNo
		profile.Program = &student.Program
		profile.Semester = &student.Semester
		profile.CGPA = &student.CGPA
	case models.RoleFaculty:
		faculty, err := s.facultyRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("faculty detail lookup failed: %w", err)
		}
		profile.FacultyNo = &faculty.FacultyNo
		profile.Department = &faculty.Department
		profile.Designation = &faculty.Designation
	}

	return profile, nil
}

// UpdateProfile changes full name and/or email. Empty fields are left
// untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)

	if fullName == "" && email == "" {
		return nil, apperrors.NewValidationError("nothing to update")
	}
	if email != "" && !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, fullName, email); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Msg("Profile updated")
	return s.GetProfile(ctx, userID)
}

// ValidatePasswordChange checks a change-password request against the
// stored hash without touching storage.
func ValidatePasswordChange(req *dto.ChangePasswordRequest, currentHash string) error {
	if !auth.CheckPassword(currentHash, req.CurrentPassword) {
		return apperrors.ErrWrongCurrentPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordConfirmation
	}
	if len(req.NewPassword) < validation.PasswordMinLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}
	return nil
}

// ChangePassword verifies the current password, stores the new hash
// and revokes the user's refresh tokens so stolen sessions die with
// the old password.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := ValidatePasswordChange(req, user.PasswordHash); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens after password change")
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return nil
}
