package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Every
// controller funnels its service errors through here so status codes
// and envelopes stay uniform.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid username or password")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrNotEligible):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Not eligible for this drive")

	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respondError(c, http.StatusConflict, dto.ErrorCodeDuplicateRegistration, "Already registered")
	case errors.Is(err, apperrors.ErrUsernameExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already exists")
	case errors.Is(err, apperrors.ErrStudentNoExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student number already exists")
	case errors.Is(err, apperrors.ErrFacultyNoExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Faculty number already exists")

	case errors.Is(err, apperrors.ErrWrongCurrentPassword):
		respondError(c, http.StatusBadRequest, dto.ErrorCodePasswordMismatch, "Current password is incorrect")
	case errors.Is(err, apperrors.ErrPasswordConfirmation):
		respondError(c, http.StatusBadRequest, dto.ErrorCodePasswordMismatch, "New passwords do not match")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrAssignmentNotFound),
		errors.Is(err, apperrors.ErrDriveNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
