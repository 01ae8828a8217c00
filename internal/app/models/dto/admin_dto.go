package dto

// ProvisionUserRequest creates an account, optionally with its
// role-specific detail row. Student fields are required when role is
// student, faculty fields when role is faculty.
type ProvisionUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=student faculty admin"`
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`

	// Student detail
	StudentNo string  `json:"studentNo"`
	Program   string  `json:"program"`
	Semester  int     `json:"semester" binding:"omitempty,gte=1,lte=12"`
	CGPA      float64 `json:"cgpa" binding:"omitempty,gte=0,lte=10"`

	// Faculty detail
	FacultyNo   string `json:"facultyNo"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}
