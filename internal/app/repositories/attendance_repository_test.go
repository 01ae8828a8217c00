package repositories_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/app/repositories"
)

func TestMarkDeltas(t *testing.T) {
	c := qt.New(t)

	total, attended := repositories.MarkDeltas(true)
	c.Assert(total, qt.Equals, 1)
	c.Assert(attended, qt.Equals, 1)

	total, attended = repositories.MarkDeltas(false)
	c.Assert(total, qt.Equals, 1)
	c.Assert(attended, qt.Equals, 0)
}

func TestMarkDeltasAccumulation(t *testing.T) {
	tests := []struct {
		name         string
		marks        []bool
		wantTotal    int
		wantAttended int
	}{
		{name: "always present", marks: []bool{true, true, true}, wantTotal: 3, wantAttended: 3},
		{name: "never present", marks: []bool{false, false}, wantTotal: 2, wantAttended: 0},
		{name: "mixed attendance", marks: []bool{true, false, true, false, false}, wantTotal: 5, wantAttended: 2},
		{name: "no classes held", marks: nil, wantTotal: 0, wantAttended: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			total, attended := 0, 0
			for _, present := range tt.marks {
				totalDelta, attendedDelta := repositories.MarkDeltas(present)
				total += totalDelta
				attended += attendedDelta
				// Counters never cross after any prefix of marks.
				c.Assert(attended <= total, qt.IsTrue)
			}

			c.Assert(total, qt.Equals, tt.wantTotal)
			c.Assert(attended, qt.Equals, tt.wantAttended)
		})
	}
}
