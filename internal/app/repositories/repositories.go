package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	FacultyRepository      *FacultyRepository
	SubjectRepository      *SubjectRepository
	AttendanceRepository   *AttendanceRepository
	AssignmentRepository   *AssignmentRepository
	CompanyRepository      *CompanyRepository
	DriveRepository        *DriveRepository
	EventRepository        *EventRepository
	AnnouncementRepository *AnnouncementRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		FacultyRepository:      NewFacultyRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		AssignmentRepository:   NewAssignmentRepository(db),
		CompanyRepository:      NewCompanyRepository(db),
		DriveRepository:        NewDriveRepository(db),
		EventRepository:        NewEventRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		TokenRepository:        NewTokenRepository(db),
	}
}
