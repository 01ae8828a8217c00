package dto

import "github.com/emre/uniportal/internal/app/models"

// SubjectAttendance is one row of the per-subject attendance report.
// Percentage is 0 when no classes have been held yet.
type SubjectAttendance struct {
	SubjectName     string  `json:"subjectName"`
	SubjectCode     string  `json:"subjectCode"`
	TotalClasses    int     `json:"totalClasses"`
	AttendedClasses int     `json:"attendedClasses"`
	Percentage      float64 `json:"percentage"`
}

// AttendanceSummary aggregates attendance across a student's subjects.
type AttendanceSummary struct {
	TotalSubjects     int     `json:"totalSubjects"`
	AverageAttendance float64 `json:"averageAttendance"`
}

// AcademicsResponse is the student academics page payload.
type AcademicsResponse struct {
	Student     *StudentInfo         `json:"student"`
	Attendance  []SubjectAttendance  `json:"attendance"`
	Assignments []*models.Assignment `json:"assignments"`
}

// CreateAssignmentRequest creates an assignment for a subject.
type CreateAssignmentRequest struct {
	SubjectID   int64  `json:"subjectId" binding:"required,gt=0"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required" example:"2026-03-01"`
}

// UpdateAssignmentRequest edits an existing assignment.
type UpdateAssignmentRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required" example:"2026-03-01"`
	Status      string `json:"status" binding:"required"`
}
