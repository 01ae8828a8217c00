package services

// Services defined in this package:
// - AuthService: login, refresh token rotation and logout
// - UserService: profile viewing and self-service updates
// - DashboardService: role-specific landing summaries
// - AcademicsService: student attendance and assignment views
// - AttendanceService: faculty classes, rosters and marking
// - AssignmentService: faculty assignment management
// - PlacementService: placement portal and drive registration
// - EventService: events pages and registration
// - AnnouncementService: administrative broadcasts
// - ReportService: faculty student reports
// - AdminService: account provisioning
