package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleFaculty RoleType = "faculty"
	RoleAdmin   RoleType = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Placement drive status values. Stored as free text, these are the
// values the application itself writes.
const (
	DriveStatusOpen     = "Open"
	DriveStatusUpcoming = "Upcoming"
	DriveStatusClosed   = "Closed"
)

// Registration status written on new drive/event registrations.
const RegistrationStatusRegistered = "Registered"

// Assignment status values written by the application. The column is
// free text, so reads must tolerate other values.
const (
	AssignmentStatusPending   = "pending"
	AssignmentStatusUpcoming  = "upcoming"
	AssignmentStatusCompleted = "completed"
)
