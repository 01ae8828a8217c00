package dberrors_test

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/emre/uniportal/internal/pkg/dberrors"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	c := qt.New(t)

	c.Assert(dberrors.IsUniqueViolation(uniqueViolation("refresh_tokens_token_key")), qt.IsTrue)
	c.Assert(dberrors.IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueViolation("users_username_key"))), qt.IsTrue)

	c.Assert(dberrors.IsUniqueViolation(&pgconn.PgError{Code: "23503"}), qt.IsFalse)
	c.Assert(dberrors.IsUniqueViolation(errors.New("connection refused")), qt.IsFalse)
	c.Assert(dberrors.IsUniqueViolation(nil), qt.IsFalse)
}

func TestIsDuplicateConstraintError(t *testing.T) {
	c := qt.New(t)

	err := uniqueViolation("drive_registrations_student_id_drive_id_key")
	c.Assert(dberrors.IsDuplicateConstraintError(err, "drive_registrations_student_id_drive_id_key"), qt.IsTrue)
	c.Assert(dberrors.IsDuplicateConstraintError(err, "event_registrations_user_id_event_id_key"), qt.IsFalse)

	wrapped := fmt.Errorf("registration failed: %w", err)
	c.Assert(dberrors.IsDuplicateConstraintError(wrapped, "drive_registrations_student_id_drive_id_key"), qt.IsTrue)

	c.Assert(dberrors.IsDuplicateConstraintError(errors.New("timeout"), "any"), qt.IsFalse)
}
