package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/emre/uniportal/internal/app/models"
	appRepos "github.com/emre/uniportal/internal/app/repositories"
	"github.com/emre/uniportal/internal/pkg/auth"
)

// Sample accounts all share this password.
const samplePassword = "pass123"

// CreateDefaultData seeds sample portal data into an empty database.
// A non-empty users table means the database is live, so nothing is
// touched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	count, err := repos.UserRepository.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Msg("Users exist, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample data...")

	hash, err := auth.HashPassword(samplePassword)
	if err != nil {
		return err
	}

	users := []struct {
		user      appModels.User
		student   *appModels.Student
		facultyRow *appModels.Faculty
	}{
		{
			user: appModels.User{Username: "2024001", Role: appModels.RoleStudent, FullName: "Alex Johnson", Email: "alex.j@university.edu"},
			student: &appModels.Student{
				StudentNo: "2024001", Program: "Computer Science", Semester: 6, CGPA: 8.7,
			},
		},
		{
			user: appModels.User{Username: "2024002", Role: appModels.RoleStudent, FullName: "Sarah Williams", Email: "sarah.w@university.edu"},
			student: &appModels.Student{
				StudentNo: "2024002", Program: "Information Technology", Semester: 6, CGPA: 8.3,
			},
		},
		{
			user: appModels.User{Username: "faculty1", Role: appModels.RoleFaculty, FullName: "Dr. Robert Smith", Email: "robert.s@university.edu"},
			facultyRow: &appModels.Faculty{
				FacultyNo: "FAC2024001", Department: "Computer Science", Designation: "Professor",
			},
		},
		{
			user: appModels.User{Username: "admin", Role: appModels.RoleAdmin, FullName: "Portal Administrator", Email: "admin@university.edu"},
		},
	}

	var firstStudentID int64
	for _, entry := range users {
		entry.user.PasswordHash = hash
		userID, err := repos.UserRepository.CreateUser(ctx, &entry.user)
		if err != nil {
			return err
		}
		if entry.student != nil {
			entry.student.UserID = userID
			if err := repos.StudentRepository.CreateStudent(ctx, entry.student); err != nil {
				return err
			}
			if firstStudentID == 0 {
				firstStudentID = entry.student.ID
			}
		}
		if entry.facultyRow != nil {
			entry.facultyRow.UserID = userID
			if err := repos.FacultyRepository.CreateFaculty(ctx, entry.facultyRow); err != nil {
				return err
			}
		}
	}

	subjects := []appModels.Subject{
		{Code: "CS301", Name: "Data Structures", Credits: 4},
		{Code: "CS302", Name: "Database Management Systems", Credits: 4},
		{Code: "CS303", Name: "Operating Systems", Credits: 4},
		{Code: "CS304", Name: "Computer Networks", Credits: 3},
		{Code: "CS305", Name: "Software Engineering", Credits: 3},
	}
	subjectIDs := make([]int64, 0, len(subjects))
	for _, s := range subjects {
		var id int64
		err := dbPool.QueryRow(ctx,
			`INSERT INTO subjects (code, name, credits) VALUES ($1, $2, $3) RETURNING id`,
			s.Code, s.Name, s.Credits).Scan(&id)
		if err != nil {
			return err
		}
		subjectIDs = append(subjectIDs, id)
	}

	counters := []struct{ total, attended int }{
		{45, 41}, {40, 35}, {38, 32}, {42, 33}, {40, 38},
	}
	for i, c := range counters {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO attendance (student_id, subject_id, total_classes, attended_classes) VALUES ($1, $2, $3, $4)`,
			firstStudentID, subjectIDs[i], c.total, c.attended)
		if err != nil {
			return err
		}
	}

	now := time.Now()
	assignments := []struct {
		subjectIdx  int
		title       string
		description string
		dueInDays   int
		status      string
	}{
		{1, "Database Project", "Design and implement a library management system", 9, appModels.AssignmentStatusPending},
		{2, "OS Case Study", "Analyze process scheduling algorithms", 12, appModels.AssignmentStatusPending},
		{3, "Network Design", "Design a campus network topology", 17, appModels.AssignmentStatusUpcoming},
	}
	for _, a := range assignments {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO assignments (subject_id, title, description, due_date, status) VALUES ($1, $2, $3, $4, $5)`,
			subjectIDs[a.subjectIdx], a.title, a.description, now.AddDate(0, 0, a.dueInDays), a.status)
		if err != nil {
			return err
		}
	}

	companies := [][]interface{}{
		{"TechCorp", "2026-02-10", "Software Engineer", "$95,000", "Leading technology company"},
		{"DataSystems Inc", "2026-02-12", "Data Analyst", "$80,000", "Data analytics firm"},
		{"CloudNine", "2026-02-14", "Cloud Engineer", "$105,000", "Cloud computing solutions"},
		{"AI Solutions", "2026-02-15", "ML Engineer", "$110,000", "Artificial Intelligence startup"},
	}
	for _, c := range companies {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO companies (company_name, visit_date, position, package, description) VALUES ($1, $2, $3, $4, $5)`,
			c...)
		if err != nil {
			return err
		}
	}

	drives := [][]interface{}{
		{"MegaTech", "Full Stack Developer", "CGPA > 7.5, No backlogs", "2026-02-20", appModels.DriveStatusOpen, 7.5,
			"We are looking for a skilled Full Stack Developer to join our dynamic team."},
		{"FinanceHub", "Software Developer", "CGPA > 8.0, Strong coding skills", "2026-02-22", appModels.DriveStatusOpen, 8.0,
			"Join our fintech revolution! We need software developers with strong algorithmic skills."},
		{"StartupX", "Backend Engineer", "CGPA > 7.0, Python/Java", "2026-02-25", appModels.DriveStatusOpen, 7.0,
			"Fast-paced startup environment. Looking for backend engineers to build robust APIs."},
		{"GlobalTech", "DevOps Engineer", "CGPA > 7.8, Cloud experience", "2026-03-01", appModels.DriveStatusUpcoming, 7.8,
			"Seeking a DevOps Engineer to manage our cloud infrastructure and CI/CD pipelines."},
	}
	for _, d := range drives {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO placement_drives (company_name, position, eligibility_criteria, drive_date, status, min_cgpa, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			d...)
		if err != nil {
			return err
		}
	}

	events := [][]interface{}{
		{"Tech Fest 2026", "Technical", "2026-03-15", "Main Auditorium", "Annual technical festival", "CSE Department"},
		{"Career Fair", "Placement", "2026-02-28", "Sports Complex", "Meet recruiters from top companies", "Placement Cell"},
		{"Hackathon", "Competition", "2026-03-05", "Computer Lab", "24-hour coding competition", "Tech Club"},
		{"Cultural Night", "Cultural", "2026-03-20", "Open Theater", "Music, dance, and drama performances", "Cultural Committee"},
		{"Workshop: Machine Learning", "Workshop", "2026-02-25", "Seminar Hall", "Hands-on ML workshop", "AI Club"},
		{"Sports Day", "Sports", "2026-03-10", "Sports Ground", "Inter-department sports competition", "Sports Committee"},
	}
	for _, e := range events {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO events (event_name, event_type, event_date, location, description, organizer)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			e...)
		if err != nil {
			return err
		}
	}

	lgr.Info().Msg("Sample data seeded")
	return nil
}
