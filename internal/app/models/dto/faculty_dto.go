package dto

import "github.com/emre/uniportal/internal/app/models"

// ClassInfo is a subject with its enrolled-student count, shown on the
// faculty classes screen.
type ClassInfo struct {
	ID           int64  `json:"id"`
	SubjectCode  string `json:"subjectCode"`
	SubjectName  string `json:"subjectName"`
	Credits      int    `json:"credits"`
	StudentCount int    `json:"studentCount"`
}

// RosterEntry is one student on a subject's attendance-marking form,
// with the current counters (zero when no attendance row exists yet).
type RosterEntry struct {
	StudentID       int64  `json:"studentId"`
	StudentNo       string `json:"studentNo"`
	FullName        string `json:"fullName"`
	Program         string `json:"program"`
	Semester        int    `json:"semester"`
	TotalClasses    int    `json:"totalClasses"`
	AttendedClasses int    `json:"attendedClasses"`
}

// MarkAttendanceRequest records one held class for a subject. Students
// listed as present get attended+1; every other roster student is
// implicitly absent and only gets total+1.
type MarkAttendanceRequest struct {
	SubjectID         int64   `json:"subjectId" binding:"required,gt=0"`
	PresentStudentIDs []int64 `json:"presentStudentIds"`
}

// StudentReport is the faculty drill-down view for one student.
type StudentReport struct {
	Student     *StudentInfo         `json:"student"`
	Attendance  []SubjectAttendance  `json:"attendance"`
	Assignments []*models.Assignment `json:"assignments"`
}
