package models

import "time"

// Company is a past campus visit record, display only.
type Company struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"company_name"`
	VisitDate   time.Time `json:"visitDate" db:"visit_date"`
	Position    string    `json:"position" db:"position"`
	Package     string    `json:"package" db:"package"`
	Description string    `json:"description" db:"description"`
}

// PlacementDrive is a scheduled recruitment drive with a CGPA floor.
type PlacementDrive struct {
	ID                  int64     `json:"id" db:"id"`
	CompanyName         string    `json:"companyName" db:"company_name"`
	Position            string    `json:"position" db:"position"`
	EligibilityCriteria string    `json:"eligibilityCriteria" db:"eligibility_criteria"`
	DriveDate           time.Time `json:"driveDate" db:"drive_date"`
	Status              string    `json:"status" db:"status"`
	MinCGPA             float64   `json:"minCgpa" db:"min_cgpa"`
	Description         string    `json:"description" db:"description"`
}

// DriveRegistration joins a student to a placement drive. The
// (student_id, drive_id) pair is unique at the storage level; that
// constraint is what makes concurrent double-submission safe.
type DriveRegistration struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	DriveID      int64     `json:"driveId" db:"drive_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
	Status       string    `json:"status" db:"status"`
}
