package services_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/pkg/apperrors"
	"github.com/emre/uniportal/internal/pkg/auth"
)

func TestValidatePasswordChange(t *testing.T) {
	c := qt.New(t)

	hash, err := auth.HashPassword("oldsecret1")
	c.Assert(err, qt.IsNil)

	tests := []struct {
		name    string
		req     dto.ChangePasswordRequest
		wantErr error
	}{
		{
			name: "valid change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "oldsecret1",
				NewPassword:     "newsecret1",
				ConfirmPassword: "newsecret1",
			},
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "not-the-password",
				NewPassword:     "newsecret1",
				ConfirmPassword: "newsecret1",
			},
			wantErr: apperrors.ErrWrongCurrentPassword,
		},
		{
			name: "confirmation mismatch",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "oldsecret1",
				NewPassword:     "newsecret1",
				ConfirmPassword: "different1",
			},
			wantErr: apperrors.ErrPasswordConfirmation,
		},
		{
			name: "new password too short",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "oldsecret1",
				NewPassword:     "short",
				ConfirmPassword: "short",
			},
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			err := services.ValidatePasswordChange(&tt.req, hash)
			if tt.wantErr == nil {
				c.Assert(err, qt.IsNil)
			} else {
				c.Assert(err, qt.ErrorIs, tt.wantErr)
			}
		})
	}
}
