package helpers_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/pkg/helpers"
)

func TestParseDate(t *testing.T) {
	c := qt.New(t)

	got, err := helpers.ParseDate("2026-03-15")
	c.Assert(err, qt.IsNil)
	c.Assert(got.Year(), qt.Equals, 2026)
	c.Assert(got.Month(), qt.Equals, time.March)
	c.Assert(got.Day(), qt.Equals, 15)

	_, err = helpers.ParseDate("15/03/2026")
	c.Assert(err, qt.IsNotNil)

	_, err = helpers.ParseDate("")
	c.Assert(err, qt.IsNotNil)
}

func TestParseDuration(t *testing.T) {
	c := qt.New(t)

	c.Assert(helpers.ParseDuration("90m", time.Hour), qt.Equals, 90*time.Minute)
	c.Assert(helpers.ParseDuration("not-a-duration", time.Hour), qt.Equals, time.Hour)
	c.Assert(helpers.ParseDuration("", 30*time.Minute), qt.Equals, 30*time.Minute)
}
