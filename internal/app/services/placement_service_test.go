package services_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/app/services"
)

func TestEligibleFor(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		minCGPA  float64
		cgpa     float64
		eligible bool
	}{
		{"open drive, cgpa above floor", models.DriveStatusOpen, 7.5, 8.7, true},
		{"open drive, cgpa exactly at floor", models.DriveStatusOpen, 8.0, 8.0, true},
		{"open drive, cgpa below floor", models.DriveStatusOpen, 8.0, 7.9, false},
		{"upcoming drive never eligible", models.DriveStatusUpcoming, 0, 9.9, false},
		{"closed drive never eligible", models.DriveStatusClosed, 0, 9.9, false},
		{"zero floor admits everyone on open drives", models.DriveStatusOpen, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			drive := &models.PlacementDrive{Status: tt.status, MinCGPA: tt.minCGPA}
			c.Assert(services.EligibleFor(drive, tt.cgpa), qt.Equals, tt.eligible)
		})
	}
}
