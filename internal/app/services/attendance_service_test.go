package services_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/pkg/apperrors"
)

func roster(ids ...int64) []*dto.RosterEntry {
	entries := make([]*dto.RosterEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, &dto.RosterEntry{StudentID: id})
	}
	return entries
}

func TestBuildMarkingPlan(t *testing.T) {
	tests := []struct {
		name     string
		roster   []*dto.RosterEntry
		present  []int64
		expected map[int64]bool
	}{
		{
			name:     "some present",
			roster:   roster(1, 2, 3),
			present:  []int64{1, 3},
			expected: map[int64]bool{1: true, 2: false, 3: true},
		},
		{
			name:     "nobody present",
			roster:   roster(1, 2),
			present:  nil,
			expected: map[int64]bool{1: false, 2: false},
		},
		{
			name:     "everyone present",
			roster:   roster(5, 6),
			present:  []int64{5, 6},
			expected: map[int64]bool{5: true, 6: true},
		},
		{
			name:     "duplicate present ids collapse",
			roster:   roster(1, 2),
			present:  []int64{1, 1},
			expected: map[int64]bool{1: true, 2: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			plan, err := services.BuildMarkingPlan(tt.roster, tt.present)
			c.Assert(err, qt.IsNil)
			c.Assert(plan, qt.DeepEquals, tt.expected)
		})
	}
}

func TestBuildMarkingPlanRejectsUnknownStudent(t *testing.T) {
	c := qt.New(t)

	_, err := services.BuildMarkingPlan(roster(1, 2), []int64{99})
	c.Assert(err, qt.ErrorIs, apperrors.ErrValidationFailed)
}

func TestBuildMarkingPlanEmptyRoster(t *testing.T) {
	c := qt.New(t)

	plan, err := services.BuildMarkingPlan(nil, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(plan, qt.HasLen, 0)

	_, err = services.BuildMarkingPlan(nil, []int64{1})
	c.Assert(err, qt.ErrorIs, apperrors.ErrValidationFailed)
}
