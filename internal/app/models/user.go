package models

import (
	"time"
)

// User defines the user model based on the 'users' table. One row per
// portal account; students and faculty members carry an extra detail row
// in their respective tables.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // bcrypt hash, excluded from JSON
	Role         RoleType  `json:"role" db:"role"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Student defines the student model based on the 'students' table.
// 1:1 with a User row via UserID.
type Student struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"userId" db:"user_id"`
	StudentNo string  `json:"studentNo" db:"student_no"`
	Program   string  `json:"program" db:"program"`
	Semester  int     `json:"semester" db:"semester"`
	CGPA      float64 `json:"cgpa" db:"cgpa"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}

// Faculty defines the faculty model based on the 'faculty' table.
type Faculty struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	FacultyNo   string `json:"facultyNo" db:"faculty_no"`
	Department  string `json:"department" db:"department"`
	Designation string `json:"designation" db:"designation"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
