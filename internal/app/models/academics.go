package models

import "time"

// Subject defines static subject reference data ('subjects' table).
type Subject struct {
	ID      int64  `json:"id" db:"id"`
	Code    string `json:"code" db:"code"`
	Name    string `json:"name" db:"name"`
	Credits int    `json:"credits" db:"credits"`
}

// Attendance holds the running class counters for one (student, subject)
// pair. The pair is unique at the storage level; attended can never
// exceed total.
type Attendance struct {
	ID              int64 `json:"id" db:"id"`
	StudentID       int64 `json:"studentId" db:"student_id"`
	SubjectID       int64 `json:"subjectId" db:"subject_id"`
	TotalClasses    int   `json:"totalClasses" db:"total_classes"`
	AttendedClasses int   `json:"attendedClasses" db:"attended_classes"`
}

// Assignment defines the assignment model ('assignments' table).
type Assignment struct {
	ID          int64     `json:"id" db:"id"`
	SubjectID   int64     `json:"subjectId" db:"subject_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
	Status      string    `json:"status" db:"status"`

	SubjectName string `json:"subjectName,omitempty"` // joined in, no db tag
	SubjectCode string `json:"subjectCode,omitempty"` // joined in, no db tag
}
