package auth_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/pkg/auth"
)

func newTestService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "uniportal-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "2024001",
		Role:     models.RoleStudent,
		FullName: "Alex Johnson",
	}
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	c := qt.New(t)

	svc := newTestService(time.Hour)
	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	c.Assert(err, qt.IsNil)
	c.Assert(access, qt.Not(qt.Equals), "")
	c.Assert(refresh, qt.Not(qt.Equals), "")
	c.Assert(expiresIn, qt.Equals, 3600)
	c.Assert(refreshExpiresIn, qt.Equals, int((24 * time.Hour).Seconds()))

	claims, err := svc.ValidateAndExtractClaims(access)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, int64(42))
	c.Assert(claims.Username, qt.Equals, "2024001")
	c.Assert(claims.Role, qt.Equals, string(models.RoleStudent))
	c.Assert(claims.FullName, qt.Equals, "Alex Johnson")
	c.Assert(claims.Issuer, qt.Equals, "uniportal-test")
}

func TestValidateTokenExpired(t *testing.T) {
	c := qt.New(t)

	svc := newTestService(-time.Minute)
	access, _, _, _, err := svc.GenerateTokenPair(testUser())
	c.Assert(err, qt.IsNil)

	_, err = svc.ValidateToken(access)
	c.Assert(err, qt.ErrorIs, auth.ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	c := qt.New(t)

	access, _, _, _, err := newTestService(time.Hour).GenerateTokenPair(testUser())
	c.Assert(err, qt.IsNil)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
	})
	_, err = other.ValidateToken(access)
	c.Assert(err, qt.IsNotNil)
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	c := qt.New(t)

	_, err := newTestService(time.Hour).ValidateAndExtractClaims("")
	c.Assert(err, qt.ErrorIs, auth.ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: auth.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			got, err := auth.ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				c.Assert(err, qt.ErrorIs, tt.wantErr)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, tt.want)
		})
	}
}
