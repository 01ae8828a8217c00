package dto

// UserProfile is the self-view of an account, with role-specific detail
// joined in when present.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role" enums:"student,faculty,admin"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`

	// Student fields
	StudentNo *string  `json:"studentNo,omitempty"`
	Program   *string  `json:"program,omitempty"`
	Semester  *int     `json:"semester,omitempty"`
	CGPA      *float64 `json:"cgpa,omitempty"`

	// Faculty fields
	FacultyNo   *string `json:"facultyNo,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

// UpdateProfileRequest updates the mutable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"omitempty,min=2,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// ChangePasswordRequest changes the account password. The current
// password must match and the new password must be confirmed.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// StudentDashboard is the student landing summary.
type StudentDashboard struct {
	Student            *StudentInfo `json:"student"`
	TotalSubjects      int          `json:"totalSubjects"`
	AverageAttendance  float64      `json:"averageAttendance"`
	PendingAssignments int          `json:"pendingAssignments"`
	EligibleDrives     int          `json:"eligibleDrives"`
	UpcomingEvents     int          `json:"upcomingEvents"`
}

// FacultyDashboard is the faculty landing summary.
type FacultyDashboard struct {
	FacultyNo   string `json:"facultyNo"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	FullName    string `json:"fullName"`
}

// StudentInfo is the student card embedded in reports and dashboards.
type StudentInfo struct {
	ID        int64   `json:"id"`
	StudentNo string  `json:"studentNo"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email,omitempty"`
	Program   string  `json:"program"`
	Semester  int     `json:"semester"`
	CGPA      float64 `json:"cgpa"`
}
