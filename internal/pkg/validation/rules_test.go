package validation_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/pkg/validation"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alex.johnson@university.edu", true},
		{"faculty1@dept.university.edu", true},
		{"no-at-sign.university.edu", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(validation.ValidEmail(tt.email), qt.Equals, tt.want)
		})
	}
}

func TestValidStudentNo(t *testing.T) {
	tests := []struct {
		no   string
		want bool
	}{
		{"2024001", true},
		{"0000001", true},
		{"202400", false},
		{"20240011", false},
		{"2024A01", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.no, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(validation.ValidStudentNo(tt.no), qt.Equals, tt.want)
		})
	}
}

func TestValidFacultyNo(t *testing.T) {
	tests := []struct {
		no   string
		want bool
	}{
		{"FAC2024001", true},
		{"fac2024001", false},
		{"FAC202400", false},
		{"2024001", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.no, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(validation.ValidFacultyNo(tt.no), qt.Equals, tt.want)
		})
	}
}
