package auth_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/pkg/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	c := qt.New(t)

	hash, err := auth.HashPassword("secret123")
	c.Assert(err, qt.IsNil)
	c.Assert(hash, qt.Not(qt.Equals), "secret123")

	c.Assert(auth.CheckPassword(hash, "secret123"), qt.IsTrue)
	c.Assert(auth.CheckPassword(hash, "wrongpass"), qt.IsFalse)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	c := qt.New(t)

	first, err := auth.HashPassword("secret123")
	c.Assert(err, qt.IsNil)
	second, err := auth.HashPassword("secret123")
	c.Assert(err, qt.IsNil)

	c.Assert(first, qt.Not(qt.Equals), second)
}
