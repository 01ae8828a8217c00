package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/controllers"
	"github.com/emre/uniportal/internal/app/models"
	"github.com/emre/uniportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	dashboardController *controllers.DashboardController,
	academicsController *controllers.AcademicsController,
	placementController *controllers.PlacementController,
	eventController *controllers.EventController,
	facultyController *controllers.FacultyController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profile := authenticated.Group("/profile")
		{
			profile.GET("", userController.GetProfile)
			profile.PUT("", userController.UpdateProfile)
			profile.PUT("/password", userController.ChangePassword)
		}

		authenticated.GET("/dashboard", dashboardController.Dashboard)
		authenticated.GET("/announcements", eventController.Announcements)

		events := authenticated.Group("/events")
		{
			events.GET("", eventController.Events)
			events.POST("/:id/register", eventController.RegisterForEvent)
		}

		// Student-only routes
		student := authenticated.Group("")
		student.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			student.GET("/academics", academicsController.Academics)

			placements := student.Group("/placements")
			{
				placements.GET("", placementController.Placements)
				placements.POST("/drives/:id/register", placementController.RegisterForDrive)
			}
		}

		// Faculty-only routes
		faculty := authenticated.Group("/faculty")
		faculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
		{
			faculty.GET("/classes", facultyController.Classes)
			faculty.GET("/classes/:id/roster", facultyController.Roster)
			faculty.POST("/attendance", facultyController.MarkAttendance)

			faculty.GET("/assignments", facultyController.Assignments)
			faculty.POST("/assignments", facultyController.CreateAssignment)
			faculty.PUT("/assignments/:id", facultyController.UpdateAssignment)
			faculty.DELETE("/assignments/:id", facultyController.DeleteAssignment)

			faculty.GET("/reports", facultyController.Reports)
			faculty.GET("/reports/:studentId", facultyController.StudentReport)
		}

		// Admin-only routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.POST("/users", adminController.ProvisionUser)
			admin.POST("/announcements", adminController.CreateAnnouncement)
			admin.DELETE("/announcements/:id", adminController.DeleteAnnouncement)
		}
	}
}
